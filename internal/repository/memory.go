package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adityasingal/vendordesk/internal/models"
)

// MemoryRepository is an in-process Repository used by the tests. It keeps
// the same contract as the Mongo implementation: nil on miss, ErrConflict on
// duplicate unique fields, ErrNotFound on writes against a missing id, and
// copy-on-read so callers never alias stored state.
type MemoryRepository struct {
	mu        sync.RWMutex
	users     map[primitive.ObjectID]models.User
	vendors   map[primitive.ObjectID]models.Vendor
	campaigns map[primitive.ObjectID]models.Campaign
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:     make(map[primitive.ObjectID]models.User),
		vendors:   make(map[primitive.ObjectID]models.Vendor),
		campaigns: make(map[primitive.ObjectID]models.Campaign),
	}
}

// User repository methods
func (r *MemoryRepository) CreateUser(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return models.ErrConflict
		}
	}
	now := time.Now().UTC()
	user.ID = primitive.NewObjectID()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if u, ok := r.users[id]; ok {
		user := u
		return &user, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt.After(users[j].CreatedAt)
	})
	return users, nil
}

// Vendor repository methods
func (r *MemoryRepository) CreateVendor(ctx context.Context, vendor *models.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, v := range r.vendors {
		if v.VendorID == vendor.VendorID {
			return models.ErrConflict
		}
	}
	now := time.Now().UTC()
	vendor.ID = primitive.NewObjectID()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now
	r.vendors[vendor.ID] = *vendor
	return nil
}

func (r *MemoryRepository) GetVendorByVendorID(ctx context.Context, vendorID string) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.vendors {
		if v.VendorID == vendorID {
			vendor := v
			return &vendor, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetVendorByID(ctx context.Context, id primitive.ObjectID) (*models.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if v, ok := r.vendors[id]; ok {
		vendor := v
		return &vendor, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	return r.filterVendors(func(models.Vendor) bool { return true }), nil
}

func (r *MemoryRepository) ListVendorsByUser(ctx context.Context, userID string) ([]models.Vendor, error) {
	return r.filterVendors(func(v models.Vendor) bool { return v.UserID == userID }), nil
}

func (r *MemoryRepository) filterVendors(keep func(models.Vendor) bool) []models.Vendor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendors := []models.Vendor{}
	for _, v := range r.vendors {
		if keep(v) {
			vendors = append(vendors, v)
		}
	}
	sort.Slice(vendors, func(i, j int) bool {
		return vendors[i].Date.After(vendors[j].Date)
	})
	return vendors
}

func (r *MemoryRepository) ReplaceVendor(ctx context.Context, id primitive.ObjectID, vendor *models.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vendors[id]; !ok {
		return models.ErrNotFound
	}
	vendor.ID = id
	r.vendors[id] = *vendor
	return nil
}

func (r *MemoryRepository) DeleteVendor(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.vendors[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.vendors, id)
	return nil
}

// Campaign repository methods
func (r *MemoryRepository) CreateCampaign(ctx context.Context, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.campaigns {
		if c.CampaignID == campaign.CampaignID {
			return models.ErrConflict
		}
	}
	now := time.Now().UTC()
	campaign.ID = primitive.NewObjectID()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	r.campaigns[campaign.ID] = *campaign
	return nil
}

func (r *MemoryRepository) GetCampaignByCampaignID(ctx context.Context, campaignID string) (*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.campaigns {
		if c.CampaignID == campaignID {
			campaign := c
			return &campaign, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) GetCampaignByID(ctx context.Context, id primitive.ObjectID) (*models.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.campaigns[id]; ok {
		campaign := c
		return &campaign, nil
	}
	return nil, nil
}

func (r *MemoryRepository) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	return r.filterCampaigns(func(models.Campaign) bool { return true }), nil
}

func (r *MemoryRepository) ListCampaignsByUser(ctx context.Context, userID string) ([]models.Campaign, error) {
	return r.filterCampaigns(func(c models.Campaign) bool { return c.UserID == userID }), nil
}

func (r *MemoryRepository) ListCampaignsByVendor(ctx context.Context, vendorID string) ([]models.Campaign, error) {
	return r.filterCampaigns(func(c models.Campaign) bool { return c.VendorID == vendorID }), nil
}

func (r *MemoryRepository) filterCampaigns(keep func(models.Campaign) bool) []models.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()

	campaigns := []models.Campaign{}
	for _, c := range r.campaigns {
		if keep(c) {
			campaigns = append(campaigns, c)
		}
	}
	sort.Slice(campaigns, func(i, j int) bool {
		return campaigns[i].CreatedAt.After(campaigns[j].CreatedAt)
	})
	return campaigns
}

func (r *MemoryRepository) ReplaceCampaign(ctx context.Context, id primitive.ObjectID, campaign *models.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return models.ErrNotFound
	}
	campaign.ID = id
	r.campaigns[id] = *campaign
	return nil
}

func (r *MemoryRepository) DeleteCampaign(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.campaigns[id]; !ok {
		return models.ErrNotFound
	}
	delete(r.campaigns, id)
	return nil
}

var _ Repository = (*MemoryRepository)(nil)
