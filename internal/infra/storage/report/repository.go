package report

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/pkg/dbmetrics"
	"github.com/quickcourt/quickcourt-backend/pkg/psqlbuilder"
)

var reportColumns = []string{
	"id",
	"reporter_id",
	"target_type",
	"target_id",
	"target_name",
	"reason",
	"description",
	"priority",
	"status",
	"admin_notes",
	"resolved_at",
	"created_at",
}

// Repository is the Postgres store for moderation reports
type Repository struct {
	db DBExecutor
}

// NewRepository creates a report repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a report. The id is a caller-generated uuid.
func (r *Repository) Create(ctx context.Context, rep *domain.Report) (*domain.Report, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reports").
		Columns(
			"id",
			"reporter_id",
			"target_type",
			"target_id",
			"target_name",
			"reason",
			"description",
			"priority",
			"status",
		).
		Values(
			rep.ID,
			rep.ReporterID,
			rep.TargetType,
			rep.TargetID,
			rep.TargetName,
			rep.Reason,
			rep.Description,
			rep.Priority,
			rep.Status,
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rep.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rep, nil
}

// GetByID fetches a report by its uuid
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reportColumns...).
		From("reports").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rep domain.Report
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rep.ID,
		&rep.ReporterID,
		&rep.TargetType,
		&rep.TargetID,
		&rep.TargetName,
		&rep.Reason,
		&rep.Description,
		&rep.Priority,
		&rep.Status,
		&rep.AdminNotes,
		&rep.ResolvedAt,
		&rep.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan report: %v", ErrScanRow, err)
	}

	return &rep, nil
}

// List returns reports matching the admin filter, newest first
func (r *Repository) List(ctx context.Context, filter domain.ReportsFilter) ([]*domain.Report, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reportColumns...).
		From("reports").
		OrderBy("created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Priority != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"priority": *filter.Priority})
	}

	limit := filter.Limit
	if limit <= 0 || limit > domain.MaxPageSize {
		limit = domain.DefaultPageSize
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	selectBuilder = selectBuilder.
		Limit(uint64(limit)).
		Offset(uint64((page - 1) * limit))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reports := make([]*domain.Report, 0)
	for rows.Next() {
		var rep domain.Report
		err := rows.Scan(
			&rep.ID,
			&rep.ReporterID,
			&rep.TargetType,
			&rep.TargetID,
			&rep.TargetName,
			&rep.Reason,
			&rep.Description,
			&rep.Priority,
			&rep.Status,
			&rep.AdminNotes,
			&rep.ResolvedAt,
			&rep.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reports = append(reports, &rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reports, nil
}

// UpdateStatus closes a report as resolved or dismissed, storing admin notes
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReportStatus, adminNotes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("reports").
		Set("status", status).
		Set("admin_notes", adminNotes).
		Where(squirrel.Eq{"id": id})

	if status == domain.ReportStatusResolved || status == domain.ReportStatusDismissed {
		updateBuilder = updateBuilder.Set("resolved_at", squirrel.Expr("NOW()"))
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReportNotFound
	}

	return nil
}
