package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adityasingal/vendordesk/internal/models"
	"github.com/adityasingal/vendordesk/internal/repository"
)

func newTestService(t *testing.T) (*DefaultService, *repository.MemoryRepository) {
	repo := repository.NewMemoryRepository()
	return &DefaultService{
		repo:          repo,
		jwtSecret:     []byte("test-secret-key"),
		tokenDuration: time.Hour,
	}, repo
}

func TestResolveVendorBusinessIDFirst(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	vendor := &models.Vendor{VendorID: "V-1218", UserID: "user-1", Name: "Nova"}
	assert.NoError(t, repo.CreateVendor(ctx, vendor))

	// By business id
	got, err := svc.resolveVendor(ctx, "V-1218")
	assert.NoError(t, err)
	assert.Equal(t, vendor.ID, got.ID)

	// By internal id, same record
	got, err = svc.resolveVendor(ctx, vendor.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, vendor.ID, got.ID)
}

func TestResolveVendorBusinessIDWinsOnCollision(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	// A business id that happens to look like a store id. Pathological but
	// not excluded by the schema; business-id lookup short-circuits.
	decoy := &models.Vendor{VendorID: "zzz", Name: "Decoy"}
	assert.NoError(t, repo.CreateVendor(ctx, decoy))

	collider := &models.Vendor{VendorID: decoy.ID.Hex(), Name: "Collider"}
	assert.NoError(t, repo.CreateVendor(ctx, collider))

	got, err := svc.resolveVendor(ctx, decoy.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, "Collider", got.Name)
}

func TestResolveVendorMisses(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	vendor := &models.Vendor{VendorID: "V-1", Name: "Only One"}
	assert.NoError(t, repo.CreateVendor(ctx, vendor))

	// Unknown business-id shape
	_, err := svc.resolveVendor(ctx, "V-9999")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// Unknown internal-id shape
	_, err = svc.resolveVendor(ctx, "64b7f1a2c3d4e5f60718293a")
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// Empty token short-circuits without touching the store
	_, err = svc.resolveVendor(ctx, "")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestResolveCampaign(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	campaign := &models.Campaign{CampaignID: "C-77", CampaignName: "Launch", VendorID: "V-1"}
	assert.NoError(t, repo.CreateCampaign(ctx, campaign))

	got, err := svc.resolveCampaign(ctx, "C-77")
	assert.NoError(t, err)
	assert.Equal(t, campaign.ID, got.ID)

	got, err = svc.resolveCampaign(ctx, campaign.ID.Hex())
	assert.NoError(t, err)
	assert.Equal(t, campaign.ID, got.ID)

	_, err = svc.resolveCampaign(ctx, "C-unknown")
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestUpdateVendorValidationLeavesStoreUntouched(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	vendor := &models.Vendor{VendorID: "V-5", Name: "Before", Status: models.StatusActive}
	assert.NoError(t, repo.CreateVendor(ctx, vendor))

	_, err := svc.UpdateVendor(ctx, "V-5", models.UpdateVendorRequest{
		Name:   strPtr("After"),
		Status: strPtr("NotAStatus"),
	})
	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)

	stored, err := repo.GetVendorByVendorID(ctx, "V-5")
	assert.NoError(t, err)
	assert.Equal(t, "Before", stored.Name)
	assert.Equal(t, models.StatusActive, stored.Status)
}
