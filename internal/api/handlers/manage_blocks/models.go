package manage_blocks

import (
	"fmt"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	createBlock "github.com/quickcourt/quickcourt-backend/internal/usecase/create_block"
	"github.com/quickcourt/quickcourt-backend/pkg/types"
)

// CreateBlockRequest is the HTTP request body
type CreateBlockRequest struct {
	Date      string  `json:"date"`      // YYYY-MM-DD
	StartTime string  `json:"startTime"` // HH:00
	Kind      string  `json:"kind"`      // blocked or maintenance
	Reason    *string `json:"reason,omitempty"`
}

// ToUseCaseRequest converts the HTTP body into the use case request
func (r *CreateBlockRequest) ToUseCaseRequest(ownerID, courtID int64) (*createBlock.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date, expected YYYY-MM-DD: %v", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid startTime, expected HH:00: %v", err)
	}

	return &createBlock.Request{
		OwnerID:   ownerID,
		CourtID:   courtID,
		Date:      date,
		StartTime: startTime,
		Kind:      r.Kind,
		Reason:    r.Reason,
	}, nil
}

// BlockResponse is the HTTP response model
type BlockResponse struct {
	ID        int64   `json:"id"`
	CourtID   int64   `json:"courtId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Kind      string  `json:"kind"`
	Reason    *string `json:"reason,omitempty"`
	CreatedAt string  `json:"createdAt"`
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *createBlock.Response) *BlockResponse {
	return &BlockResponse{
		ID:        resp.ID,
		CourtID:   resp.CourtID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Kind:      resp.Kind,
		Reason:    resp.Reason,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
	}
}
