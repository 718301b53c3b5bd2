package store

import "fmt"

func (d *database) CreateTag(name string, commitID int64) (*Tag, error) {
	if _, err := d.DB.Exec(`INSERT INTO tags (name, commit_id) VALUES (?, ?)`, name, commitID); err != nil {
		if isDupEntry(err) {
			return nil, &ErrTagExists{Name: name}
		}

		return nil, fmt.Errorf("insert tag: %w", err)
	}

	return &Tag{Name: name, CommitID: commitID}, nil
}

// ListTags returns every tag on a commit reachable from head, in no
// particular order; callers sort with catalog.SortTags before use.
func (d *database) ListTags(head int64) ([]Tag, error) {
	rows, err := d.DB.Query(
		`SELECT t.name, t.commit_id FROM tags t
		 JOIN (`+recursiveGraphQuery+`) reachable ON reachable.id = t.commit_id`, head)
	if err != nil {
		return nil, fmt.Errorf("query tags: %w", err)
	}
	defer rows.Close()

	var out []Tag

	for rows.Next() {
		var t Tag
		if err := rows.Scan(&t.Name, &t.CommitID); err != nil {
			return nil, fmt.Errorf("scan tag row: %w", err)
		}

		out = append(out, t)
	}

	return out, rows.Err()
}
