package repository

import (
	"context"
	"database/sql"
	"fmt"

	"community_survey/internal/models"
)

type AnswerSQLite struct {
	db *sql.DB
}

func NewAnswerSQLite(db *sql.DB) *AnswerSQLite {
	return &AnswerSQLite{db: db}
}

var _ AnswerRepo = (*AnswerSQLite)(nil)

const (
	upsertAnswerSQL = `
		INSERT INTO answers (user_id, question_id, answer)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, question_id) DO UPDATE SET
			answer=excluded.answer,
			created_at=CURRENT_TIMESTAMP
	`

	selectAnswersForUserSQL = `SELECT question_id, answer FROM answers WHERE user_id = ? ORDER BY id ASC`
	deleteAnswersForUserSQL = `DELETE FROM answers WHERE user_id = ?`

	selectAnswerStatsSQL = `
		SELECT q.id, q.prompt,
		       COUNT(a.id),
		       COALESCE(SUM(CASE WHEN a.answer = 1 THEN 1 ELSE 0 END), 0)
		FROM questions q
		LEFT JOIN answers a ON a.question_id = q.id
		GROUP BY q.id
		ORDER BY q.id ASC
	`
)

// Upsert stores the answer, replacing the boolean and timestamp of an
// existing (user, question) row.
func (r *AnswerSQLite) Upsert(ctx context.Context, a models.Answer) error {
	_, err := r.db.ExecContext(ctx, upsertAnswerSQL, a.UserID, a.QuestionID, boolToInt(a.Answer))
	if err != nil {
		return fmt.Errorf("upsert answer (%q, %d): %w", a.UserID, a.QuestionID, err)
	}
	return nil
}

// ListForUser returns the user's answers in insertion order.
func (r *AnswerSQLite) ListForUser(ctx context.Context, userID string) ([]models.UserAnswer, error) {
	rows, err := r.db.QueryContext(ctx, selectAnswersForUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("select answers for %q: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.UserAnswer, 0, 16)
	for rows.Next() {
		var (
			ua  models.UserAnswer
			val int64
		)
		if err := rows.Scan(&ua.QuestionID, &val); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		ua.Answer = val != 0
		out = append(out, ua)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteForUser removes every answer of the user and returns how many went.
func (r *AnswerSQLite) DeleteForUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteAnswersForUserSQL, userID)
	if err != nil {
		return 0, fmt.Errorf("delete answers for %q: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete answers rows affected: %w", err)
	}
	return n, nil
}

// Stats aggregates answers per question, including unanswered questions.
func (r *AnswerSQLite) Stats(ctx context.Context) ([]models.AnswerStat, error) {
	rows, err := r.db.QueryContext(ctx, selectAnswerStatsSQL)
	if err != nil {
		return nil, fmt.Errorf("select answer stats: %w", err)
	}
	defer rows.Close()

	out := make([]models.AnswerStat, 0, 16)
	for rows.Next() {
		var s models.AnswerStat
		if err := rows.Scan(&s.QuestionID, &s.Prompt, &s.Total, &s.TrueCount); err != nil {
			return nil, fmt.Errorf("scan answer stat: %w", err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
