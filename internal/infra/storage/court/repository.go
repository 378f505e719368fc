package court

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/pkg/dbmetrics"
	"github.com/quickcourt/quickcourt-backend/pkg/psqlbuilder"
)

var courtColumns = []string{
	"id",
	"venue_id",
	"name",
	"sport",
	"price_per_hour",
	"open_hour",
	"close_hour",
	"status",
	"created_at",
	"updated_at",
}

// Repository is the Postgres store for courts
type Repository struct {
	db DBExecutor
}

// NewRepository creates a court repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new court
func (r *Repository) Create(ctx context.Context, c *domain.Court) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("courts").
		Columns(
			"venue_id",
			"name",
			"sport",
			"price_per_hour",
			"open_hour",
			"close_hour",
			"status",
		).
		Values(
			c.VenueID,
			c.Name,
			c.Sport,
			c.PricePerHour,
			c.OpenHour,
			c.CloseHour,
			c.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return c, nil
}

// GetByID fetches a court by identifier
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanCourt(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByVenueID lists a venue's courts, inactive ones excluded unless asked for
func (r *Repository) GetByVenueID(ctx context.Context, venueID int64, includeInactive bool) ([]*domain.Court, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courtColumns...).
		From("courts").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("name ASC")

	if !includeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.CourtStatusInactive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByVenueID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanCourts(rows)
}

// Update overwrites the editable court fields
func (r *Repository) Update(ctx context.Context, c *domain.Court) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("name", c.Name).
		Set("sport", c.Sport).
		Set("price_per_hour", c.PricePerHour).
		Set("open_hour", c.OpenHour).
		Set("close_hour", c.CloseHour).
		Set("status", c.Status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "Update")
}

// Deactivate soft-deletes the court. Rows are never physically removed so
// existing bookings keep a valid reference.
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("courts").
		Set("status", domain.CourtStatusInactive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "Deactivate")
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrCourtNotFound
	}

	return nil
}

func (r *Repository) scanCourt(row *sql.Row, op string) (*domain.Court, error) {
	var c domain.Court
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&c.ID,
		&c.VenueID,
		&c.Name,
		&c.Sport,
		&c.PricePerHour,
		&c.OpenHour,
		&c.CloseHour,
		&c.Status,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan court: %v", ErrScanRow, op, err)
	}

	c.CreatedAt = createdAt.Time
	c.UpdatedAt = updatedAt.Time

	return &c, nil
}

func (r *Repository) scanCourts(rows *sql.Rows) ([]*domain.Court, error) {
	courts := make([]*domain.Court, 0)

	for rows.Next() {
		var c domain.Court
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&c.ID,
			&c.VenueID,
			&c.Name,
			&c.Sport,
			&c.PricePerHour,
			&c.OpenHour,
			&c.CloseHour,
			&c.Status,
			&createdAt,
			&updatedAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanCourts - scan row: %v", ErrScanRow, err)
		}

		c.CreatedAt = createdAt.Time
		c.UpdatedAt = updatedAt.Time

		courts = append(courts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCourts - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}
