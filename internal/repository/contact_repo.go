package repository

import (
	"context"
	"database/sql"
	"fmt"

	"community_survey/internal/models"
)

type ContactSQLite struct {
	db *sql.DB
}

func NewContactSQLite(db *sql.DB) *ContactSQLite {
	return &ContactSQLite{db: db}
}

var _ ContactRepo = (*ContactSQLite)(nil)

const (
	selectContactsSQL = `SELECT id, name, phone FROM contacts ORDER BY id ASC`
	insertContactSQL  = `INSERT INTO contacts (name, phone) VALUES (?, ?)`
	deleteContactSQL  = `DELETE FROM contacts WHERE id = ?`
)

func (r *ContactSQLite) List(ctx context.Context) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, selectContactsSQL)
	if err != nil {
		return nil, fmt.Errorf("select contacts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Contact, 0, 8)
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ContactSQLite) Create(ctx context.Context, name, phone string) (int64, error) {
	res, err := r.db.ExecContext(ctx, insertContactSQL, name, phone)
	if err != nil {
		return 0, fmt.Errorf("insert contact %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for contact %q: %w", name, err)
	}
	return id, nil
}

func (r *ContactSQLite) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteContactSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete contact %d: %w", id, err)
	}
	return affected(res, "delete contact")
}
