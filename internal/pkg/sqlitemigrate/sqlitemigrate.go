// Package sqlitemigrate applies embedded .sql files to a SQLite database
// once each, in file name order.
package sqlitemigrate

import (
	"context"
	"database/sql"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/KirkDiggler/theta-arc/internal/errors"
)

const (
	appliedTable = "schema_migrations"
	upMarker     = "-- +migrate Up"
	downMarker   = "-- +migrate Down"
)

// Apply runs every not-yet-applied .sql file under dir.
func Apply(ctx context.Context, db *sql.DB, fsys fs.FS, dir string) error {
	if db == nil {
		return errors.InvalidArgument("sql db is required")
	}
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return errors.Wrap(err, "failed to read migrations dir")
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)

	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS `+appliedTable+` (
    name TEXT PRIMARY KEY,
    applied_at INTEGER NOT NULL
)`); err != nil {
		return errors.Wrap(err, "failed to ensure migration table")
	}

	for _, name := range files {
		if err := applyOne(ctx, db, fsys, path.Join(dir, name), name); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(ctx context.Context, db *sql.DB, fsys fs.FS, file, name string) error {
	var found int
	err := db.QueryRowContext(ctx, "SELECT 1 FROM "+appliedTable+" WHERE name = ?", name).Scan(&found)
	switch {
	case err == nil:
		return nil
	case err != sql.ErrNoRows:
		return errors.Wrapf(err, "failed to check migration %s", name)
	}

	content, err := fs.ReadFile(fsys, file)
	if err != nil {
		return errors.Wrapf(err, "failed to read migration %s", name)
	}
	up := UpSection(string(content))
	if strings.TrimSpace(up) == "" {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrapf(err, "failed to begin migration %s", name)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, up); err != nil && !alreadyApplied(err) {
		return errors.Wrapf(err, "failed to run migration %s", name)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO "+appliedTable+" (name, applied_at) VALUES (?, ?)",
		name, time.Now().UTC().UnixMilli(),
	); err != nil {
		return errors.Wrapf(err, "failed to record migration %s", name)
	}
	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "failed to commit migration %s", name)
	}
	return nil
}

// UpSection returns the statements between the Up and Down markers. A file
// without markers is returned whole.
func UpSection(content string) string {
	start := strings.Index(content, upMarker)
	if start == -1 {
		return content
	}
	content = content[start+len(upMarker):]
	if end := strings.Index(content, downMarker); end != -1 {
		content = content[:end]
	}
	return content
}

func alreadyApplied(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "already exists") || strings.Contains(msg, "duplicate column name")
}
