package manage_blocks

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	createBlock "github.com/quickcourt/quickcourt-backend/internal/usecase/create_block"
)

// CreateBlockUseCase places an owner block on a slot
type CreateBlockUseCase interface {
	Execute(ctx context.Context, req *createBlock.Request) (*createBlock.Response, error)
}

// BlocksService removes blocks
type BlocksService interface {
	Delete(ctx context.Context, blockID int64, caller domain.AuthUser) error
}

// Logger is the logging interface used by the handler
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
