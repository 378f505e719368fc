package block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	"github.com/quickcourt/quickcourt-backend/pkg/dbmetrics"
	"github.com/quickcourt/quickcourt-backend/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var blockColumns = []string{
	"id",
	"court_id",
	"block_date",
	"hour",
	"kind",
	"reason",
	"created_by",
	"created_at",
}

// Repository is the Postgres store for slot blocks
type Repository struct {
	db DBExecutor
}

// NewRepository creates a block repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a block on one slot. The (court_id, block_date, hour)
// unique index maps a duplicate to ErrBlockExists.
func (r *Repository) Create(ctx context.Context, b *domain.SlotBlock) (*domain.SlotBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_blocks").
		Columns(
			"court_id",
			"block_date",
			"hour",
			"kind",
			"reason",
			"created_by",
		).
		Values(
			b.CourtID,
			b.BlockDate,
			b.Hour,
			b.Kind,
			b.Reason,
			b.CreatedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrBlockExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID fetches a block by identifier
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SlotBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("slot_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.SlotBlock
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.CourtID,
		&b.BlockDate,
		&b.Hour,
		&b.Kind,
		&b.Reason,
		&b.CreatedBy,
		&b.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan block: %v", ErrScanRow, err)
	}

	return &b, nil
}

// GetByCourtAndDate lists one court's blocks on one date, ordered by hour
func (r *Repository) GetByCourtAndDate(ctx context.Context, filter domain.CourtDayFilter) ([]*domain.SlotBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(blockColumns...).
		From("slot_blocks").
		Where(squirrel.Eq{"court_id": filter.CourtID}).
		Where(squirrel.Eq{"block_date": filter.Date}).
		OrderBy("hour ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.SlotBlock, 0)
	for rows.Next() {
		var b domain.SlotBlock
		err := rows.Scan(
			&b.ID,
			&b.CourtID,
			&b.BlockDate,
			&b.Hour,
			&b.Kind,
			&b.Reason,
			&b.CreatedBy,
			&b.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByCourtAndDate - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByCourtAndDate - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Delete removes a block, reopening the slot
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockNotFound
	}

	return nil
}
