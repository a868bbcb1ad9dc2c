package repository

import (
	"context"
	"database/sql"
	"fmt"

	"community_survey/internal/models"
)

type QuestionSQLite struct {
	db *sql.DB
}

func NewQuestionSQLite(db *sql.DB) *QuestionSQLite {
	return &QuestionSQLite{db: db}
}

var _ QuestionRepo = (*QuestionSQLite)(nil)

const (
	selectQuestionsSQL   = `SELECT id, prompt, image_url, additional_info FROM questions ORDER BY id ASC`
	selectQuestionIDsSQL = `SELECT id FROM questions ORDER BY id ASC`
	insertQuestionSQL    = `INSERT INTO questions (prompt, image_url, additional_info) VALUES (?, ?, ?)`
	updateQuestionSQL    = `UPDATE questions SET prompt = ?, image_url = ?, additional_info = ? WHERE id = ?`
	deleteQuestionSQL    = `DELETE FROM questions WHERE id = ?`
)

// List returns every question in ascending id order.
func (r *QuestionSQLite) List(ctx context.Context) ([]models.Question, error) {
	rows, err := r.db.QueryContext(ctx, selectQuestionsSQL)
	if err != nil {
		return nil, fmt.Errorf("select questions: %w", err)
	}
	defer rows.Close()

	out := make([]models.Question, 0, 16)
	for rows.Next() {
		var (
			q             models.Question
			imageURL, add sql.NullString
		)
		if err := rows.Scan(&q.ID, &q.Prompt, &imageURL, &add); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		q.ImageURL = fromNullString(imageURL)
		q.AdditionalInfo = fromNullString(add)
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts a question and returns its id.
func (r *QuestionSQLite) Create(ctx context.Context, q models.Question) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertQuestionSQL, q.Prompt, toNullString(q.ImageURL), toNullString(q.AdditionalInfo))
	if err != nil {
		return 0, fmt.Errorf("insert question: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for question: %w", err)
	}
	return id, nil
}

// Update overwrites a question. Reports false when the id does not exist.
func (r *QuestionSQLite) Update(ctx context.Context, q models.Question) (bool, error) {
	res, err := r.db.ExecContext(ctx, updateQuestionSQL, q.Prompt, toNullString(q.ImageURL), toNullString(q.AdditionalInfo), q.ID)
	if err != nil {
		return false, fmt.Errorf("update question %d: %w", q.ID, err)
	}
	return affected(res, "update question")
}

// Delete removes a question; its answers go with it through the FK cascade.
func (r *QuestionSQLite) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteQuestionSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete question %d: %w", id, err)
	}
	return affected(res, "delete question")
}

func (r *QuestionSQLite) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.QueryContext(ctx, selectQuestionIDsSQL)
	if err != nil {
		return nil, fmt.Errorf("select question ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func affected(res sql.Result, op string) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%s rows affected: %w", op, err)
	}
	return n > 0, nil
}
