package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"community_survey/internal/models"
)

type UserSQLite struct {
	db *sql.DB
}

func NewUserSQLite(db *sql.DB) *UserSQLite {
	return &UserSQLite{db: db}
}

var _ UserRepo = (*UserSQLite)(nil)

const (
	selectUserSQL = `
		SELECT user_id, name, email, address, date_of_birth
		FROM users WHERE user_id = ?
	`

	upsertUserSQL = `
		INSERT INTO users (user_id, name, email, address, date_of_birth)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			name=excluded.name,
			email=excluded.email,
			address=excluded.address,
			date_of_birth=excluded.date_of_birth
	`

	selectUserIDsByPrefixSQL = `SELECT user_id FROM users WHERE user_id LIKE ? ORDER BY user_id ASC`
)

// Get fetches a user by id. Returns (nil, nil) if not found.
func (r *UserSQLite) Get(ctx context.Context, userID string) (*models.User, error) {
	var (
		u                         models.User
		name, email, address, dob sql.NullString
	)
	err := r.db.QueryRowContext(ctx, selectUserSQL, userID).Scan(&u.UserID, &name, &email, &address, &dob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %q: %w", userID, err)
	}
	u.Name = fromNullString(name)
	u.Email = fromNullString(email)
	u.Address = fromNullString(address)
	u.DateOfBirth = fromNullString(dob)
	return &u, nil
}

// Upsert inserts the user or overwrites every profile column.
func (r *UserSQLite) Upsert(ctx context.Context, u models.User) error {
	_, err := r.db.ExecContext(ctx, upsertUserSQL,
		u.UserID,
		toNullString(u.Name),
		toNullString(u.Email),
		toNullString(u.Address),
		toNullString(u.DateOfBirth),
	)
	if err != nil {
		return fmt.Errorf("upsert user %q: %w", u.UserID, err)
	}
	return nil
}

// ListIDsWithPrefix returns the ids of users whose id starts with prefix.
func (r *UserSQLite) ListIDsWithPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectUserIDsByPrefixSQL, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("select user ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
