package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/relaybot/internal/core"
)

// TranscriptRepo appends handled exchanges to the exchanges table.
// Nothing reads them back into a session.
type TranscriptRepo struct {
	db  *sql.DB
	now func() time.Time
}

func NewTranscriptRepo(db *sql.DB) *TranscriptRepo {
	return &TranscriptRepo{db: db, now: time.Now}
}

func (r *TranscriptRepo) Record(ctx context.Context, ex core.Exchange) error {
	if ex.ID == "" {
		ex.ID = uuid.NewString()
	}
	if ex.CreatedAt.IsZero() {
		ex.CreatedAt = r.now()
	}

	query := `INSERT INTO exchanges (id, user_id, user_message, bot_reply, source, category, reason, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		ex.ID, ex.UserID, ex.UserMessage, ex.BotReply, ex.Source, ex.Category, ex.Reason, ex.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert exchange: %w", err)
	}
	return nil
}

func (r *TranscriptRepo) Count(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM exchanges WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count exchanges: %w", err)
	}
	return n, nil
}

// Recent returns up to limit exchanges of a user, oldest first.
func (r *TranscriptRepo) Recent(ctx context.Context, userID string, limit int) ([]core.Exchange, error) {
	query := `SELECT id, user_id, user_message, bot_reply, source, category, reason, created_at
		FROM exchanges WHERE user_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchanges: %w", err)
	}
	defer rows.Close()

	var res []core.Exchange
	for rows.Next() {
		var ex core.Exchange
		if err := rows.Scan(
			&ex.ID, &ex.UserID, &ex.UserMessage, &ex.BotReply,
			&ex.Source, &ex.Category, &ex.Reason, &ex.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange: %w", err)
		}
		res = append(res, ex)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res, nil
}
