package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// SQLiteAssigneeRepo implements AssigneeRepo using a SQLite database.
type SQLiteAssigneeRepo struct {
	db *sql.DB
}

// NewSQLiteAssigneeRepo creates a new SQLiteAssigneeRepo.
func NewSQLiteAssigneeRepo(db *sql.DB) *SQLiteAssigneeRepo {
	return &SQLiteAssigneeRepo{db: db}
}

func (r *SQLiteAssigneeRepo) Create(ctx context.Context, a *domain.Assignee) error {
	// New assignees append to the canonical order.
	if a.Seq == 0 {
		row := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM assignees`)
		if err := row.Scan(&a.Seq); err != nil {
			return fmt.Errorf("allocating assignee seq: %w", err)
		}
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO assignees (id, name, seq, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Seq,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assignee: %w", err)
	}
	return nil
}

func (r *SQLiteAssigneeRepo) GetByID(ctx context.Context, id string) (*domain.Assignee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, seq, created_at, updated_at FROM assignees WHERE id = ?`, id)
	return scanAssignee(row)
}

func (r *SQLiteAssigneeRepo) List(ctx context.Context) ([]domain.Assignee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, seq, created_at, updated_at FROM assignees ORDER BY seq, name`)
	if err != nil {
		return nil, fmt.Errorf("listing assignees: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignee
	for rows.Next() {
		a, err := scanAssignee(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignees: %w", err)
	}
	return out, nil
}

func (r *SQLiteAssigneeRepo) Update(ctx context.Context, a *domain.Assignee) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE assignees SET name = ?, seq = ?, updated_at = ? WHERE id = ?`,
		a.Name, a.Seq, time.Now().UTC().Format(time.RFC3339), a.ID)
	if err != nil {
		return fmt.Errorf("updating assignee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assignee %s not found", a.ID)
	}
	return nil
}

func (r *SQLiteAssigneeRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM assignees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting assignee: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("assignee %s not found", id)
	}
	return nil
}

func scanAssignee(row rowScanner) (*domain.Assignee, error) {
	var a domain.Assignee
	var createdAt, updatedAt string
	err := row.Scan(&a.ID, &a.Name, &a.Seq, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("assignee not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning assignee: %w", err)
	}
	if a.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing assignee created_at: %w", err)
	}
	if a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing assignee updated_at: %w", err)
	}
	return &a, nil
}
