package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adityasingal/vendordesk/internal/models"
)

// Callers hold either the human-facing business id (advertised in URLs and
// returned by the creation endpoints) or the store's own 24-hex id,
// depending on which prior response supplied it. Resolution always tries
// the business id first: it is the advertised identifier, and trying it
// first means a pathological business id that happens to look like a store
// id still wins.

func (s *DefaultService) resolveVendor(ctx context.Context, token string) (*models.Vendor, error) {
	if token == "" {
		return nil, fmt.Errorf("vendor %q: %w", token, models.ErrNotFound)
	}

	vendor, err := s.repo.GetVendorByVendorID(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error looking up vendor: %w", err)
	}
	if vendor != nil {
		return vendor, nil
	}

	if oid, err := primitive.ObjectIDFromHex(token); err == nil {
		vendor, lookupErr := s.repo.GetVendorByID(ctx, oid)
		if lookupErr != nil {
			return nil, fmt.Errorf("error looking up vendor: %w", lookupErr)
		}
		if vendor != nil {
			return vendor, nil
		}
	}

	return nil, fmt.Errorf("vendor %q: %w", token, models.ErrNotFound)
}

func (s *DefaultService) resolveCampaign(ctx context.Context, token string) (*models.Campaign, error) {
	if token == "" {
		return nil, fmt.Errorf("campaign %q: %w", token, models.ErrNotFound)
	}

	campaign, err := s.repo.GetCampaignByCampaignID(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("error looking up campaign: %w", err)
	}
	if campaign != nil {
		return campaign, nil
	}

	if oid, err := primitive.ObjectIDFromHex(token); err == nil {
		campaign, lookupErr := s.repo.GetCampaignByID(ctx, oid)
		if lookupErr != nil {
			return nil, fmt.Errorf("error looking up campaign: %w", lookupErr)
		}
		if campaign != nil {
			return campaign, nil
		}
	}

	return nil, fmt.Errorf("campaign %q: %w", token, models.ErrNotFound)
}
