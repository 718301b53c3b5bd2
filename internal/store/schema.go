package store

import "database/sql"

// schemaStatements mirrors the table layout of the original Kitman prototype
// (streams, commits, commit_files, tags, config), translated from SQLite to
// MySQL types.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS streams (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		parent BIGINT UNSIGNED NULL,
		head BIGINT UNSIGNED NULL
	)`,
	`CREATE TABLE IF NOT EXISTS commits (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		parent BIGINT UNSIGNED NULL,
		merge_from BIGINT UNSIGNED NULL,
		comment TEXT NOT NULL,
		date DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS commit_files (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		commit_id BIGINT UNSIGNED NOT NULL,
		seq INT UNSIGNED NOT NULL,
		path VARCHAR(1024) NOT NULL,
		is_delete BOOLEAN NOT NULL DEFAULT FALSE,
		UNIQUE KEY uniq_commit_seq (commit_id, seq),
		UNIQUE KEY uniq_commit_path (commit_id, path)
	)`,
	`CREATE TABLE IF NOT EXISTS tags (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		commit_id BIGINT UNSIGNED NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS config (
		name VARCHAR(255) NOT NULL PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}

func ensureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// recursiveGraphQuery walks both Parent and MergeFrom edges from a head
// commit, matching catalog.CommitGraph.Commits' "every commit reachable
// from head" contract without materializing the whole table.
const recursiveGraphQuery = `
WITH RECURSIVE reachable(id, parent, merge_from, comment, date) AS (
	SELECT id, parent, merge_from, comment, date FROM commits WHERE id = ?
	UNION
	SELECT c.id, c.parent, c.merge_from, c.comment, c.date
	FROM commits c
	JOIN reachable r ON c.id = r.parent OR c.id = r.merge_from
)
SELECT id, parent, merge_from, comment, date FROM reachable`
