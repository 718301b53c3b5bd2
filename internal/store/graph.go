package store

import (
	"database/sql"
	"fmt"

	"github.com/krabicezpapundeklu/kitman/internal/catalog"
)

// Graph adapts a DB to catalog.CommitGraph. It holds no head of its own:
// the head is passed to each Commits call.
type Graph struct {
	db DB
}

// NewGraph builds a catalog.CommitGraph backed by db.
func NewGraph(db DB) *Graph {
	return &Graph{db: db}
}

var _ catalog.CommitGraph = (*Graph)(nil)

func (g *Graph) Commits(head int64) ([]catalog.Commit, error) {
	rows, err := g.db.Database().Query(recursiveGraphQuery, head)
	if err != nil {
		return nil, fmt.Errorf("query reachable commits: %w", err)
	}
	defer rows.Close()

	var out []catalog.Commit

	for rows.Next() {
		var (
			c         catalog.Commit
			parent    sql.NullInt64
			mergeFrom sql.NullInt64
		)

		if err := rows.Scan(&c.ID, &parent, &mergeFrom, &c.Comment, &c.Date); err != nil {
			return nil, fmt.Errorf("scan commit row: %w", err)
		}

		c.Parent = parent.Int64
		c.MergeFrom = mergeFrom.Int64

		out = append(out, c)
	}

	return out, rows.Err()
}

func (g *Graph) Files(commitID int64) ([]catalog.FileEvent, error) {
	rows, err := g.db.Database().Query(
		`SELECT path, is_delete FROM commit_files WHERE commit_id = ? ORDER BY seq`, commitID)
	if err != nil {
		return nil, fmt.Errorf("query commit files: %w", err)
	}
	defer rows.Close()

	var out []catalog.FileEvent

	for rows.Next() {
		var f catalog.FileEvent
		if err := rows.Scan(&f.Path, &f.IsDelete); err != nil {
			return nil, fmt.Errorf("scan file row: %w", err)
		}

		out = append(out, f)
	}

	return out, rows.Err()
}

// LastTag walks the Parent chain from commitID (inclusive), stopping at the
// first commit that carries a tag.
func (g *Graph) LastTag(commitID int64) (string, bool, error) {
	cur := commitID

	for cur != 0 {
		var name string

		err := g.db.Database().QueryRow(
			`SELECT name FROM tags WHERE commit_id = ? LIMIT 1`, cur).Scan(&name)

		switch {
		case err == nil:
			return name, true, nil
		case err != sql.ErrNoRows:
			return "", false, fmt.Errorf("query tag for commit %d: %w", cur, err)
		}

		var parent sql.NullInt64
		if err := g.db.Database().QueryRow(
			`SELECT parent FROM commits WHERE id = ?`, cur).Scan(&parent); err != nil {
			if err == sql.ErrNoRows {
				return "", false, &catalog.ErrGraphInconsistent{CommitID: commitID, Reference: cur}
			}

			return "", false, fmt.Errorf("query parent of commit %d: %w", cur, err)
		}

		cur = parent.Int64
	}

	return "", false, nil
}

func (g *Graph) CommitOf(tag string) (int64, error) {
	var id int64

	err := g.db.Database().QueryRow(
		`SELECT commit_id FROM tags WHERE name = ?`, tag).Scan(&id)

	switch {
	case err == nil:
		return id, nil
	case err == sql.ErrNoRows:
		return 0, &catalog.ErrUnknownTag{Tag: tag}
	default:
		return 0, fmt.Errorf("query commit for tag %q: %w", tag, err)
	}
}
