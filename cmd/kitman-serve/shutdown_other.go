//go:build darwin || linux || freebsd || netbsd || openbsd || dragonfly

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

func (c *closer) listenSignal(ctx context.Context, srv Shutdowner) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	sig := <-quit
	logrus.Infof("kitman-serve received signal: %v, exiting ...", sig)
	newCtx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()
	_ = srv.Shutdown(newCtx)
	c.ch <- true
}
