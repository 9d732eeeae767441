// Package sqlite provides SQLite-based persistent storage for Lingo: the
// key-value table that holds the progression blob and the notification
// inbox. Uses WAL mode for concurrent reads and crash-safe writes.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/globallingo/lingo/internal/domain"
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode, foreign keys, and 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	// modernc.org/sqlite applies connection settings via _pragma params.
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db, now: time.Now}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// State blobs keyed by name (one row per player).
		`CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		)`,

		// Notification inbox
		`CREATE TABLE IF NOT EXISTS notifications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			type       TEXT NOT NULL,
			message    TEXT NOT NULL,
			created_at INTEGER NOT NULL,
			shown      BOOLEAN DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_notif_shown ON notifications(shown, id)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── Key-Value ──────────────────────────────────────────────────────────────

// Get returns the blob stored under key. ok is false when the key is absent.
func (d *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := d.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return value, true, nil
}

// Set overwrites the blob stored under key.
func (d *DB) Set(ctx context.Context, key string, blob []byte) error {
	_, err := d.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at`,
		key, blob, d.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// ─── Notifications ──────────────────────────────────────────────────────────

// Notify stores n in the inbox as pending.
func (d *DB) Notify(ctx context.Context, n domain.Notification) error {
	_, err := d.InsertNotification(ctx, n)
	return err
}

// InsertNotification creates a new notification and returns its id.
// A zero CreatedAt is stamped with the current time.
func (d *DB) InsertNotification(ctx context.Context, n domain.Notification) (int64, error) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = d.now()
	}
	result, err := d.db.ExecContext(ctx,
		`INSERT INTO notifications (type, message, created_at, shown)
		 VALUES (?, ?, ?, ?)`,
		string(n.Type), n.Message, n.CreatedAt.Unix(), n.Shown,
	)
	if err != nil {
		return 0, fmt.Errorf("insert notification: %w", err)
	}
	return result.LastInsertId()
}

// ListPendingNotifications returns unshown notifications, oldest first.
func (d *DB) ListPendingNotifications(ctx context.Context, limit int) ([]domain.Notification, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, type, message, created_at, shown
		 FROM notifications WHERE shown = 0 ORDER BY id ASC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifs []domain.Notification
	for rows.Next() {
		n, err := scanNotifRows(rows)
		if err != nil {
			return nil, err
		}
		notifs = append(notifs, *n)
	}
	return notifs, rows.Err()
}

// MarkNotificationShown marks a notification as shown. Returns
// domain.ErrNotFound for an unknown id.
func (d *DB) MarkNotificationShown(ctx context.Context, id int64) error {
	result, err := d.db.ExecContext(ctx, `UPDATE notifications SET shown = 1 WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return fmt.Errorf("notification %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ─── Helpers ────────────────────────────────────────────────────────────────

func scanNotifRows(rows *sql.Rows) (*domain.Notification, error) {
	var n domain.Notification
	var createdAt int64
	err := rows.Scan(&n.ID, &n.Type, &n.Message, &createdAt, &n.Shown)
	if err != nil {
		return nil, err
	}
	n.CreatedAt = time.Unix(createdAt, 0)
	return &n, nil
}
