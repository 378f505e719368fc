package blocks

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/domain"
	blockRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/block"
	courtRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/court"
	venueRepo "github.com/quickcourt/quickcourt-backend/internal/infra/storage/venue"
)

// Fakes

type fakeBlockRepo struct {
	block   *domain.SlotBlock
	deleted bool
}

func (f *fakeBlockRepo) GetByID(_ context.Context, id int64) (*domain.SlotBlock, error) {
	if f.block == nil || f.block.ID != id {
		return nil, blockRepo.ErrBlockNotFound
	}
	return f.block, nil
}

func (f *fakeBlockRepo) Delete(_ context.Context, _ int64) error {
	f.deleted = true
	return nil
}

type fakeCourtRepo struct {
	court *domain.Court
}

func (f *fakeCourtRepo) GetByID(_ context.Context, id int64) (*domain.Court, error) {
	if f.court == nil || f.court.ID != id {
		return nil, courtRepo.ErrCourtNotFound
	}
	return f.court, nil
}

type fakeVenueRepo struct {
	venue *domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, id int64) (*domain.Venue, error) {
	if f.venue == nil || f.venue.ID != id {
		return nil, venueRepo.ErrVenueNotFound
	}
	return f.venue, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// Fixture

func newTestService(blocks *fakeBlockRepo) *Service {
	courts := &fakeCourtRepo{court: &domain.Court{ID: 10, VenueID: 5}}
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 5, OwnerID: 2}}
	return NewService(blocks, courts, venues, noopLogger{})
}

func testBlock() *domain.SlotBlock {
	return &domain.SlotBlock{ID: 1, CourtID: 10, Hour: 14, Kind: domain.BlockKindBlocked}
}

// Tests

func TestDeleteBlock_Owner(t *testing.T) {
	blocks := &fakeBlockRepo{block: testBlock()}
	svc := newTestService(blocks)

	err := svc.Delete(context.Background(), 1, domain.AuthUser{ID: 2, Role: domain.RoleOwner})
	require.NoError(t, err)
	assert.True(t, blocks.deleted)
}

func TestDeleteBlock_Admin(t *testing.T) {
	blocks := &fakeBlockRepo{block: testBlock()}
	svc := newTestService(blocks)

	err := svc.Delete(context.Background(), 1, domain.AuthUser{ID: 99, Role: domain.RoleAdmin})
	assert.NoError(t, err)
}

func TestDeleteBlock_OtherOwnerDenied(t *testing.T) {
	blocks := &fakeBlockRepo{block: testBlock()}
	svc := newTestService(blocks)

	err := svc.Delete(context.Background(), 1, domain.AuthUser{ID: 55, Role: domain.RoleOwner})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.False(t, blocks.deleted)
}

func TestDeleteBlock_NotFound(t *testing.T) {
	svc := newTestService(&fakeBlockRepo{})

	err := svc.Delete(context.Background(), 1, domain.AuthUser{ID: 2, Role: domain.RoleOwner})
	assert.ErrorIs(t, err, ErrBlockNotFound)
}
