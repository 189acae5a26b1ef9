package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/lanegrid/internal/domain"
)

// workItemColumns is the canonical SELECT column list for work_items.
const workItemColumns = `id, title, status, priority, start_date, due_date,
		estimate_min, assignee_id, project_id, created_at, updated_at`

// SQLiteWorkItemRepo implements WorkItemRepo using a SQLite database.
type SQLiteWorkItemRepo struct {
	db *sql.DB
}

// NewSQLiteWorkItemRepo creates a new SQLiteWorkItemRepo.
func NewSQLiteWorkItemRepo(db *sql.DB) *SQLiteWorkItemRepo {
	return &SQLiteWorkItemRepo{db: db}
}

func (r *SQLiteWorkItemRepo) Create(ctx context.Context, w *domain.WorkItem) error {
	query := `INSERT INTO work_items (` + workItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		w.ID,
		w.Title,
		string(w.Status),
		string(w.Priority),
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.DueDate, dateLayout),
		w.EstimateMin,
		nullableStr(w.AssigneeID),
		nullableStr(w.ProjectID),
		w.CreatedAt.Format(time.RFC3339),
		w.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting work item: %w", err)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) GetByID(ctx context.Context, id string) (*domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanWorkItem(row)
}

func (r *SQLiteWorkItemRepo) List(ctx context.Context) ([]domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items
		ORDER BY start_date IS NULL, start_date, due_date IS NULL, due_date, created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing work items: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

func (r *SQLiteWorkItemRepo) ListByProject(ctx context.Context, projectID string) ([]domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE project_id = ?
		ORDER BY start_date IS NULL, start_date, due_date IS NULL, due_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing work items by project: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

func (r *SQLiteWorkItemRepo) ListByAssignee(ctx context.Context, assigneeID string) ([]domain.WorkItem, error) {
	query := `SELECT ` + workItemColumns + ` FROM work_items WHERE assignee_id = ?
		ORDER BY start_date IS NULL, start_date, due_date IS NULL, due_date, created_at`
	rows, err := r.db.QueryContext(ctx, query, assigneeID)
	if err != nil {
		return nil, fmt.Errorf("listing work items by assignee: %w", err)
	}
	defer rows.Close()
	return r.scanWorkItems(rows)
}

// ListForTimeline loads everything one layout pass needs: all work items in
// their canonical time order plus the assignee and project reference lists.
func (r *SQLiteWorkItemRepo) ListForTimeline(ctx context.Context) (*TimelineSnapshot, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshot := &TimelineSnapshot{Items: items}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, seq, created_at, updated_at FROM assignees ORDER BY seq, name`)
	if err != nil {
		return nil, fmt.Errorf("listing assignees for timeline: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		a, err := scanAssignee(rows)
		if err != nil {
			return nil, err
		}
		snapshot.Assignees = append(snapshot.Assignees, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignees: %w", err)
	}

	projRows, err := r.db.QueryContext(ctx,
		`SELECT id, name, seq, status, archived_at, created_at, updated_at FROM projects
		 WHERE status = 'active' ORDER BY seq, name`)
	if err != nil {
		return nil, fmt.Errorf("listing projects for timeline: %w", err)
	}
	defer projRows.Close()
	for projRows.Next() {
		p, err := scanProjectRow(projRows)
		if err != nil {
			return nil, err
		}
		snapshot.Projects = append(snapshot.Projects, *p)
	}
	if err := projRows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}

	return snapshot, nil
}

func (r *SQLiteWorkItemRepo) Update(ctx context.Context, w *domain.WorkItem) error {
	query := `UPDATE work_items SET title = ?, status = ?, priority = ?,
		start_date = ?, due_date = ?, estimate_min = ?, assignee_id = ?, project_id = ?,
		updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		w.Title,
		string(w.Status),
		string(w.Priority),
		nullableTimeToString(w.StartDate, dateLayout),
		nullableTimeToString(w.DueDate, dateLayout),
		w.EstimateMin,
		nullableStr(w.AssigneeID),
		nullableStr(w.ProjectID),
		time.Now().UTC().Format(time.RFC3339),
		w.ID,
	)
	if err != nil {
		return fmt.Errorf("updating work item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work item %s not found", w.ID)
	}
	return nil
}

func (r *SQLiteWorkItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM work_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting work item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("work item %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *SQLiteWorkItemRepo) scanWorkItem(row rowScanner) (*domain.WorkItem, error) {
	var w domain.WorkItem
	var status, priority string
	var startDate, dueDate, assigneeID, projectID sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&w.ID, &w.Title, &status, &priority, &startDate, &dueDate,
		&w.EstimateMin, &assigneeID, &projectID, &createdAt, &updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("work item not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning work item: %w", err)
	}

	w.Status = domain.WorkItemStatus(status)
	w.Priority = domain.Priority(priority)
	w.StartDate = parseNullableTime(startDate, dateLayout)
	w.DueDate = parseNullableTime(dueDate, dateLayout)
	w.AssigneeID = assigneeID.String
	w.ProjectID = projectID.String
	if w.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing work item created_at: %w", err)
	}
	if w.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing work item updated_at: %w", err)
	}
	return &w, nil
}

func (r *SQLiteWorkItemRepo) scanWorkItems(rows *sql.Rows) ([]domain.WorkItem, error) {
	var items []domain.WorkItem
	for rows.Next() {
		w, err := r.scanWorkItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating work items: %w", err)
	}
	return items, nil
}
