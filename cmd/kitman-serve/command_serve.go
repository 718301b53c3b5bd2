package main

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/krabicezpapundeklu/kitman/internal/httpserver"
)

type Serve struct {
	Config string `short:"c" name:"config" help:"Location of server config file" default:"kitman-serve.toml" type:"path"`
}

func (c *Serve) Run(globals *Globals) error {
	cfg, err := httpserver.NewConfig(c.Config, globals.ExpandEnv)
	if err != nil {
		logrus.Errorf("kitman-serve: load config error: %v", err)
		return err
	}
	srv, err := httpserver.NewServer(cfg)
	if err != nil {
		logrus.Errorf("kitman-serve: new server error: %v", err)
		return err
	}
	closer := newCloser()
	go closer.listenSignal(context.Background(), srv)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logrus.Errorf("kitman-serve: listen error: %v", err)
		return err
	}
	<-closer.ch
	logrus.Infof("kitman-serve exited")
	return nil
}
