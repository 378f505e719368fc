package blocks

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
)

// BlockRepository is the slot block store interface
type BlockRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SlotBlock, error)
	Delete(ctx context.Context, id int64) error
}

// CourtRepository resolves the court behind a block
type CourtRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Court, error)
}

// VenueRepository resolves venue ownership for access checks
type VenueRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
}

// Logger is the logging interface used by the service
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
