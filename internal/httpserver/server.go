// Package httpserver exposes Kitman's streams/commits/tags/catalog
// operations over a gorilla/mux REST API.
package httpserver

import (
	"context"
	"net/http"
	"path"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/krabicezpapundeklu/kitman/internal/store"
)

// Server is the Kitman HTTP service: a router over a DB collaborator plus a
// response cache for rendered catalogs.
type Server struct {
	cfg   *Config
	srv   *http.Server
	r     *mux.Router
	db    store.DB
	cache *ristretto.Cache[string, []byte]
	genMu sync.Mutex
	gen   map[string]uint64
}

func (s *Server) initialize() error {
	r := mux.NewRouter().UseEncodedPath()
	s.routes(r)
	s.r = r
	s.srv.Handler = s

	if root := s.cfg.WebRoot; root != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(root)))
	} else {
		s.mountEmbeddedWebRoot(r)
	}

	return nil
}

// NewServer builds a Server from cfg, opening the MySQL connection pool and
// the catalog response cache.
func NewServer(cfg *Config) (*Server, error) {
	dsn := &mysql.Config{
		User:                 cfg.DB.User,
		Passwd:               cfg.DB.Passwd,
		Net:                  "tcp",
		Addr:                 cfg.DB.Host,
		DBName:               cfg.DB.Name,
		ParseTime:            true,
		AllowNativePasswords: true,
	}

	db, err := store.NewDB(dsn)
	if err != nil {
		return nil, err
	}

	cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: cfg.Cache.NumCounters,
		MaxCost:     cfg.Cache.MaxCost,
		BufferItems: cfg.Cache.BufferItems,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Server{
		cfg: cfg,
		srv: &http.Server{
			Addr:         cfg.Listen,
			ReadTimeout:  cfg.ReadTimeout.Duration,
			WriteTimeout: cfg.WriteTimeout.Duration,
			IdleTimeout:  cfg.IdleTimeout.Duration,
		},
		db:    db,
		cache: cache,
		gen:   map[string]uint64{},
	}

	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Server) ListenAndServe() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		logrus.Errorf("shutdown http server: %v", err)
	}

	s.cache.Close()

	if s.db != nil {
		_ = s.db.Close()
	}

	return nil
}

func logResponse(w *ResponseWriter, r *http.Request, spent time.Duration) {
	fields := logrus.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"status":      w.StatusCode(),
		"written":     w.Written(),
		"duration_ms": spent.Milliseconds(),
		"remote_addr": w.RemoteAddr(),
	}

	if w.StatusCode() >= http.StatusInternalServerError {
		logrus.WithFields(fields).Error("request failed")
	} else {
		logrus.WithFields(fields).Info("request")
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL != nil {
		r.URL.Path = path.Clean(r.URL.Path)
	}

	now := time.Now()
	hw := NewResponseWriter(w, r)
	s.r.ServeHTTP(hw, r)
	logResponse(hw, r, time.Since(now))
}

// bumpGeneration invalidates cached catalog entries for a stream by
// advancing its generation counter, folded into cache keys instead of
// scanning the cache on every mutation.
func (s *Server) bumpGeneration(stream string) {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	s.gen[stream]++
}

func (s *Server) generation(stream string) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gen[stream]
}
