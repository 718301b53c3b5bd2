package store

import (
	"database/sql"
	"fmt"
)

func (d *database) CreateStream(name string, parent string) (*Stream, error) {
	var parentID sql.NullInt64

	if parent != "" {
		p, err := d.FindStream(parent)
		if err != nil {
			return nil, err
		}

		parentID.Int64, parentID.Valid = p.ID, true
	}

	res, err := d.DB.Exec(`INSERT INTO streams (name, parent, head) VALUES (?, ?, NULL)`, name, nullInt(parentID))
	if err != nil {
		if isDupEntry(err) {
			return nil, &ErrStreamExists{Name: name}
		}

		return nil, fmt.Errorf("insert stream: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return &Stream{ID: id, Name: name, Parent: parent}, nil
}

func (d *database) DeleteStream(name string) error {
	res, err := d.DB.Exec(`DELETE FROM streams WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete stream: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if n == 0 {
		return &ErrStreamNotFound{Name: name}
	}

	return nil
}

func (d *database) FindStream(name string) (*Stream, error) {
	var (
		s         Stream
		head      sql.NullInt64
		parentRow sql.NullString
	)

	err := d.DB.QueryRow(
		`SELECT s.id, s.name, p.name, s.head FROM streams s
		 LEFT JOIN streams p ON p.id = s.parent
		 WHERE s.name = ?`, name).Scan(&s.ID, &s.Name, &parentRow, &head)

	if err != nil {
		if isNotFound(err) {
			return nil, &ErrStreamNotFound{Name: name}
		}

		return nil, fmt.Errorf("query stream: %w", err)
	}

	s.Parent = parentRow.String
	s.Head = head.Int64

	return &s, nil
}

func (d *database) ListStreams() ([]Stream, error) {
	rows, err := d.DB.Query(
		`SELECT s.id, s.name, COALESCE(p.name, ''), COALESCE(s.head, 0) FROM streams s
		 LEFT JOIN streams p ON p.id = s.parent
		 ORDER BY s.name`)
	if err != nil {
		return nil, fmt.Errorf("query streams: %w", err)
	}
	defer rows.Close()

	var out []Stream

	for rows.Next() {
		var s Stream
		if err := rows.Scan(&s.ID, &s.Name, &s.Parent, &s.Head); err != nil {
			return nil, fmt.Errorf("scan stream row: %w", err)
		}

		out = append(out, s)
	}

	return out, rows.Err()
}

func nullInt(n sql.NullInt64) any {
	if !n.Valid {
		return nil
	}

	return n.Int64
}
