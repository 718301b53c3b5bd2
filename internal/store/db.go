// Package store is the MySQL-backed implementation of catalog.CommitGraph,
// plus the write-side operations that build up the commit graph streams are
// made of.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
)

// DB is the storage collaborator: the stream, commit and tag operations the
// REST surface needs. Graph (see graph.go) adapts a DB to catalog.CommitGraph.
type DB interface {
	Database() *sql.DB
	Close() error

	CreateStream(name string, parent string) (*Stream, error)
	DeleteStream(name string) error
	FindStream(name string) (*Stream, error)
	ListStreams() ([]Stream, error)

	CreateCommit(streamName string, mergeFrom int64, comment string, files []FileInput) (*Commit, error)
	ListCommits(head int64) ([]Commit, error)

	CreateTag(name string, commitID int64) (*Tag, error)
	ListTags(head int64) ([]Tag, error)
}

type database struct {
	*sql.DB
}

func (d *database) Database() *sql.DB {
	return d.DB
}

func (d *database) Close() error {
	return d.DB.Close()
}

var _ DB = &database{}

// NewDB opens a connection pool against cfg, tuned the way a
// long-running service should be: bounded idle/open counts and a recycled
// connection lifetime.
func NewDB(cfg *mysql.Config) (DB, error) {
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("new connector: %w", err)
	}

	db := sql.OpenDB(connector)
	db.SetMaxIdleConns(25)
	db.SetMaxOpenConns(50)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &database{DB: db}, nil
}
