package store

import (
	"database/sql"
	"fmt"
	"time"
)

// CreateCommit appends a new commit to streamName's head: parent is the
// stream's current head (0 for the stream's first commit), mergeFrom is
// non-zero for a merge or stream-creation commit.
func (d *database) CreateCommit(streamName string, mergeFrom int64, comment string, files []FileInput) (*Commit, error) {
	stream, err := d.FindStream(streamName)
	if err != nil {
		return nil, err
	}

	tx, err := d.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO commits (parent, merge_from, comment, date) VALUES (?, ?, ?, ?)`,
		nullableID(stream.Head), nullableID(mergeFrom), comment, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("insert commit: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	for seq, f := range files {
		if _, err := tx.Exec(
			`INSERT INTO commit_files (commit_id, seq, path, is_delete) VALUES (?, ?, ?, ?)`,
			id, seq, f.Path, f.IsDelete); err != nil {
			return nil, fmt.Errorf("insert commit file %q: %w", f.Path, err)
		}
	}

	if _, err := tx.Exec(`UPDATE streams SET head = ? WHERE id = ?`, id, stream.ID); err != nil {
		return nil, fmt.Errorf("update stream head: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return &Commit{ID: id, Parent: stream.Head, MergeFrom: mergeFrom, Comment: comment}, nil
}

func (d *database) ListCommits(head int64) ([]Commit, error) {
	rows, err := d.DB.Query(recursiveGraphQuery+"\nORDER BY id DESC", head)
	if err != nil {
		return nil, fmt.Errorf("query reachable commits: %w", err)
	}
	defer rows.Close()

	var out []Commit

	for rows.Next() {
		var (
			c         Commit
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

func nullableID(id int64) any {
	if id == 0 {
		return nil
	}

	return id
}
