package venue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/pkg/dbmetrics"
	"github.com/quickcourt/quickcourt-backend/pkg/psqlbuilder"
)

var venueColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"address",
	"sports",
	"amenities",
	"photos",
	"rating",
	"rating_count",
	"status",
	"admin_comments",
	"submitted_at",
	"created_at",
	"updated_at",
}

// courtAggregates is joined into listing queries to expose each venue's
// cheapest court price and court count without a per-venue roundtrip.
const courtAggregates = `LEFT JOIN (
		SELECT venue_id, MIN(price_per_hour) AS starting_price, COUNT(1) AS court_count
		FROM courts
		WHERE status <> 'inactive'
		GROUP BY venue_id
	) c ON c.venue_id = venues.id`

// Repository is the Postgres store for venues
type Repository struct {
	db DBExecutor
}

// NewRepository creates a venue repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new venue in pending status
func (r *Repository) Create(ctx context.Context, v *domain.Venue) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("venues").
		Columns(
			"owner_id",
			"name",
			"description",
			"address",
			"sports",
			"amenities",
			"photos",
			"status",
			"submitted_at",
		).
		Values(
			v.OwnerID,
			v.Name,
			v.Description,
			v.Address,
			pq.Array(v.Sports),
			pq.Array(v.Amenities),
			pq.Array(v.Photos),
			v.Status,
			squirrel.Expr("NOW()"),
		).
		Suffix("RETURNING id, submitted_at, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.SubmittedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByID fetches a venue by identifier
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(venueColumns...).
		From("venues").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanVenue(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List returns venue listings matching the filter, with the cheapest court
// price and court count joined in. Price filters apply to the cheapest court.
func (r *Repository) List(ctx context.Context, filter domain.VenuesFilter) ([]*domain.VenueListing, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := make([]string, 0, len(venueColumns)+2)
	for _, col := range venueColumns {
		columns = append(columns, "venues."+col)
	}
	columns = append(columns,
		"COALESCE(c.starting_price, 0) AS starting_price",
		"COALESCE(c.court_count, 0) AS court_count",
	)

	selectBuilder := psqlbuilder.Select(columns...).
		From("venues").
		JoinClause(courtAggregates)

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venues.status": *filter.Status})
	}
	if filter.OwnerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"venues.owner_id": *filter.OwnerID})
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := "%" + *filter.Search + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"venues.name": pattern},
			squirrel.ILike{"venues.address": pattern},
		})
	}
	if filter.Sport != nil && *filter.Sport != "" {
		selectBuilder = selectBuilder.Where(squirrel.Expr("? = ANY(venues.sports)", *filter.Sport))
	}
	if filter.PriceMin != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("COALESCE(c.starting_price, 0) >= ?", *filter.PriceMin))
	}
	if filter.PriceMax != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("COALESCE(c.starting_price, 0) <= ?", *filter.PriceMax))
	}

	switch filter.Sort {
	case domain.VenueSortPriceAsc:
		selectBuilder = selectBuilder.OrderBy("starting_price ASC, venues.name ASC")
	case domain.VenueSortPriceDesc:
		selectBuilder = selectBuilder.OrderBy("starting_price DESC, venues.name ASC")
	case domain.VenueSortName:
		selectBuilder = selectBuilder.OrderBy("venues.name ASC")
	default:
		selectBuilder = selectBuilder.OrderBy("venues.rating DESC, venues.rating_count DESC, venues.name ASC")
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

	return r.scanListings(rows)
}

// PopularVenues returns the top approved venues by rating for the home page
func (r *Repository) PopularVenues(ctx context.Context, limit int) ([]*domain.VenueListing, error) {
	status := domain.VenueStatusApproved
	return r.List(ctx, domain.VenuesFilter{
		Status: &status,
		Sort:   domain.VenueSortRating,
		Page:   1,
		Limit:  limit,
	})
}

// PopularSports aggregates how many approved venues offer each sport
func (r *Repository) PopularSports(ctx context.Context) ([]domain.SportPopularity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"unnest(sports) AS sport",
		"COUNT(1) AS venue_count",
	).
		From("venues").
		Where(squirrel.Eq{"status": domain.VenueStatusApproved}).
		GroupBy("sport").
		OrderBy("venue_count DESC, sport ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: PopularSports - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: PopularSports - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	sports := make([]domain.SportPopularity, 0)
	for rows.Next() {
		var s domain.SportPopularity
		if err := rows.Scan(&s.Sport, &s.VenueCount); err != nil {
			return nil, fmt.Errorf("%w: PopularSports - scan row: %v", ErrScanRow, err)
		}
		sports = append(sports, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: PopularSports - rows error: %v", ErrScanRow, err)
	}

	return sports, nil
}

// Update overwrites the editable venue fields. Editing an approved venue
// does not reset its status; the service decides whether re-review is needed.
func (r *Repository) Update(ctx context.Context, v *domain.Venue) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("venues").
		Set("name", v.Name).
		Set("description", v.Description).
		Set("address", v.Address).
		Set("sports", pq.Array(v.Sports)).
		Set("amenities", pq.Array(v.Amenities)).
		Set("photos", pq.Array(v.Photos)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": v.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "Update")
}

// UpdateStatus moves a venue through the approval lifecycle. Rejection and
// approval both may carry admin comments shown back to the owner.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.VenueStatus, adminComments *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("venues").
		Set("status", status).
		Set("admin_comments", adminComments).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, query, args, "UpdateStatus")
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
		return ErrVenueNotFound
	}

	return nil
}

func (r *Repository) scanVenue(row *sql.Row, op string) (*domain.Venue, error) {
	var v domain.Venue
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&v.ID,
		&v.OwnerID,
		&v.Name,
		&v.Description,
		&v.Address,
		pq.Array(&v.Sports),
		pq.Array(&v.Amenities),
		pq.Array(&v.Photos),
		&v.Rating,
		&v.RatingCount,
		&v.Status,
		&v.AdminComments,
		&v.SubmittedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrVenueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan venue: %v", ErrScanRow, op, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}

func (r *Repository) scanListings(rows *sql.Rows) ([]*domain.VenueListing, error) {
	listings := make([]*domain.VenueListing, 0)

	for rows.Next() {
		var l domain.VenueListing
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&l.ID,
			&l.OwnerID,
			&l.Name,
			&l.Description,
			&l.Address,
			pq.Array(&l.Sports),
			pq.Array(&l.Amenities),
			pq.Array(&l.Photos),
			&l.Rating,
			&l.RatingCount,
			&l.Status,
			&l.AdminComments,
			&l.SubmittedAt,
			&createdAt,
			&updatedAt,
			&l.StartingPrice,
			&l.CourtCount,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanListings - scan row: %v", ErrScanRow, err)
		}

		l.CreatedAt = createdAt.Time
		l.UpdatedAt = updatedAt.Time

		listings = append(listings, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanListings - rows error: %v", ErrScanRow, err)
	}

	return listings, nil
}
