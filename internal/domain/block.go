package domain

import "time"

// BlockKind distinguishes manual blocks from scheduled maintenance
type BlockKind string

const (
	BlockKindBlocked     BlockKind = "blocked"
	BlockKindMaintenance BlockKind = "maintenance"
)

// SlotBlock is an owner-placed unavailability marker on a single whole-hour
// slot, not caused by a booking. A block can never be placed over an hour
// covered by an active booking; the usecase rejects it with a conflict.
type SlotBlock struct {
	ID        int64
	CourtID   int64
	BlockDate time.Time
	Hour      int
	Kind      BlockKind
	Reason    *string
	CreatedBy int64
	CreatedAt time.Time
}

// SlotStatus returns the slot status this block projects onto the grid
func (b *SlotBlock) SlotStatus() SlotStatus {
	if b.Kind == BlockKindMaintenance {
		return SlotStatusMaintenance
	}
	return SlotStatusBlocked
}
