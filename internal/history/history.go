package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"PokerCoach/internal/storage"
)

// Entry 一次评估记录
type Entry struct {
	ID        int64     `json:"id"`
	SessionID string    `json:"sessionId"`
	Player    string    `json:"player"`
	Round     int       `json:"round"`
	Score     int       `json:"score"`
	Category  string    `json:"category"`
	Visible   string    `json:"visible"` // "As Kd Qh ..."
	Best      string    `json:"best"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store 评估历史，postgres / sqlite 共用同一套 SQL
type Store struct {
	db      *sql.DB
	dialect storage.Dialect
}

func NewStore(db *sql.DB, dialect storage.Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// Migrate 建表（幂等）
func (s *Store) Migrate(ctx context.Context) error {
	id := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if s.dialect == storage.Postgres {
		id = "BIGSERIAL PRIMARY KEY"
	}
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS evaluations (
			id ` + id + `,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL,
			round INTEGER NOT NULL,
			score INTEGER NOT NULL,
			category TEXT NOT NULL,
			visible TEXT NOT NULL,
			best TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_session ON evaluations(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_evaluations_player ON evaluations(player)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate evaluations: %w", err)
		}
	}
	return nil
}

func (s *Store) Record(ctx context.Context, e *Entry) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	q := `INSERT INTO evaluations (session_id, player, round, score, category, visible, best, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	args := []any{e.SessionID, e.Player, e.Round, e.Score, e.Category, e.Visible, e.Best, e.CreatedAt}

	if s.dialect == storage.Postgres {
		if err := s.db.QueryRowContext(ctx, s.rebind(q)+" RETURNING id", args...).Scan(&e.ID); err != nil {
			return fmt.Errorf("record evaluation: %w", err)
		}
		return nil
	}
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("record evaluation: %w", err)
	}
	if e.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("record evaluation: %w", err)
	}
	return nil
}

// ListBySession 按时间顺序
func (s *Store) ListBySession(ctx context.Context, sessionID string) ([]Entry, error) {
	return s.list(ctx, `SELECT id, session_id, player, round, score, category, visible, best, created_at
		FROM evaluations WHERE session_id = ? ORDER BY id ASC`, sessionID)
}

// ListByPlayer 最近的 limit 条，新的在前
func (s *Store) ListByPlayer(ctx context.Context, player string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.list(ctx, `SELECT id, session_id, player, round, score, category, visible, best, created_at
		FROM evaluations WHERE player = ? ORDER BY id DESC LIMIT ?`, player, limit)
}

func (s *Store) list(ctx context.Context, q string, args ...any) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, s.rebind(q), args...)
	if err != nil {
		return nil, fmt.Errorf("list evaluations: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Player, &e.Round, &e.Score,
			&e.Category, &e.Visible, &e.Best, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// rebind 将 ? 换成 postgres 的 $1, $2 ...
func (s *Store) rebind(q string) string {
	if s.dialect != storage.Postgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
