package create_block

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// Request places a block on one whole-hour slot
type Request struct {
	OwnerID   int64 // authenticated caller; must own the court's venue
	CourtID   int64
	Date      time.Time
	StartTime types.TimeString
	Kind      string  // blocked or maintenance
	Reason    *string // optional note shown on the grid
}

// Response is the created block
type Response struct {
	ID        int64
	CourtID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
	Kind      string
	Reason    *string
	CreatedAt time.Time
}
