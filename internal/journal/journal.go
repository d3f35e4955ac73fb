package journal

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/abcmartin/scansorter/internal/common"
)

const schema = `
CREATE TABLE IF NOT EXISTS processing_history (
	id           TEXT PRIMARY KEY,
	source_path  TEXT NOT NULL,
	outcome      TEXT NOT NULL,
	target_path  TEXT NOT NULL DEFAULT '',
	error        TEXT NOT NULL DEFAULT '',
	subject      TEXT NOT NULL DEFAULT '',
	doc_date     TEXT NOT NULL DEFAULT '',
	reliable     INTEGER NOT NULL DEFAULT 0,
	processed_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_history_processed_at ON processing_history (processed_at);
`

// Entry is one recorded processing attempt.
type Entry struct {
	ID          string
	SourcePath  string
	Outcome     string
	TargetPath  string
	Error       string
	Subject     string
	DocDate     string // yyyy-mm-dd, empty when none
	Reliable    bool
	ProcessedAt time.Time
}

// Journal is the optional sqlite-backed history of processing outcomes.
type Journal struct {
	db  *sql.DB
	log *slog.Logger
}

func Open(ctx context.Context, path string, log *slog.Logger) (*Journal, error) {
	if log == nil {
		log = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, common.WrapError(err, "open journal")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, common.WrapError(err, "init journal schema")
	}
	return &Journal{db: db, log: log}, nil
}

func (j *Journal) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.ProcessedAt.IsZero() {
		e.ProcessedAt = time.Now().UTC()
	}
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO processing_history
			(id, source_path, outcome, target_path, error, subject, doc_date, reliable, processed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SourcePath, e.Outcome, e.TargetPath, e.Error, e.Subject, e.DocDate,
		boolToInt(e.Reliable), formatTime(e.ProcessedAt),
	)
	return common.WrapError(err, "record history entry")
}

// List returns entries inside the optional [from, to] window, oldest first.
func (j *Journal) List(ctx context.Context, from, to *time.Time) ([]Entry, error) {
	q := `SELECT id, source_path, outcome, target_path, error, subject, doc_date, reliable, processed_at
		FROM processing_history`
	var args []any
	switch {
	case from != nil && to != nil:
		q += ` WHERE processed_at >= ? AND processed_at <= ?`
		args = append(args, formatTime(*from), formatTime(*to))
	case from != nil:
		q += ` WHERE processed_at >= ?`
		args = append(args, formatTime(*from))
	case to != nil:
		q += ` WHERE processed_at <= ?`
		args = append(args, formatTime(*to))
	}
	q += ` ORDER BY processed_at ASC`

	rows, err := j.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, common.WrapError(err, "query history")
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var reliable int
		var processedAt string
		if err := rows.Scan(&e.ID, &e.SourcePath, &e.Outcome, &e.TargetPath, &e.Error,
			&e.Subject, &e.DocDate, &reliable, &processedAt); err != nil {
			return nil, common.WrapError(err, "scan history entry")
		}
		e.Reliable = reliable != 0
		if t, perr := time.Parse(time.RFC3339Nano, processedAt); perr == nil {
			e.ProcessedAt = t
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (j *Journal) Close() error {
	return j.db.Close()
}

// formatTime uses fixed-width fractional seconds so timestamps stay
// lexicographically ordered in sqlite.
func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000000000Z07:00")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
