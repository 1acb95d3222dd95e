package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adityasingal/vendordesk/internal/models"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestMergeVendorSparseUpdate(t *testing.T) {
	existing := &models.Vendor{
		VendorID:   "V-1001",
		UserID:     "user-1",
		Name:       "Original Name",
		Email:      "original@example.com",
		Phone:      "1234567890",
		Category:   models.CategoryAgency,
		Status:     models.StatusActive,
		Date:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		UploadDocs: []string{"https://example.com/doc1"},
	}

	next, err := mergeVendor(existing, models.UpdateVendorRequest{
		Status: strPtr(models.StatusBlacklist),
	})
	assert.NoError(t, err)

	// Only status moved
	assert.Equal(t, models.StatusBlacklist, next.Status)
	assert.Equal(t, existing.Name, next.Name)
	assert.Equal(t, existing.Email, next.Email)
	assert.Equal(t, existing.Phone, next.Phone)
	assert.Equal(t, existing.Category, next.Category)
	assert.Equal(t, existing.Date, next.Date)
	assert.Equal(t, existing.UploadDocs, next.UploadDocs)

	// Identifier fields never move
	assert.Equal(t, "V-1001", next.VendorID)
	assert.Equal(t, "user-1", next.UserID)

	// The input record itself is untouched
	assert.Equal(t, models.StatusActive, existing.Status)
}

func TestMergeVendorRejectsUnknownEnums(t *testing.T) {
	existing := &models.Vendor{Status: models.StatusActive, Category: models.CategoryFreelance}

	_, err := mergeVendor(existing, models.UpdateVendorRequest{Status: strPtr("Paused")})
	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)

	_, err = mergeVendor(existing, models.UpdateVendorRequest{Category: strPtr("Enterprise")})
	assert.ErrorAs(t, err, &vErr)
}

func TestMergeCampaignScalars(t *testing.T) {
	existing := &models.Campaign{
		CampaignID:   "C-1001",
		CampaignName: "Original",
		UserID:       "user-1",
		VendorID:     "V-1001",
		Budget:       1000,
		Payments:     []models.Payment{{Date: "2024-01-01", Amount: 100, UTR: "UTR-1"}},
	}

	next, err := mergeCampaign(existing, models.UpdateCampaignRequest{
		Budget: f64Ptr(2500),
		Brand:  strPtr("Acme"),
	})
	assert.NoError(t, err)

	assert.Equal(t, float64(2500), next.Budget)
	assert.Equal(t, "Acme", next.Brand)
	assert.Equal(t, "Original", next.CampaignName)
	// Absent payments leave the stored sequence alone
	assert.Equal(t, existing.Payments, next.Payments)
	assert.Equal(t, "C-1001", next.CampaignID)
	assert.Equal(t, "user-1", next.UserID)
}

func TestMergeCampaignReplacesPayments(t *testing.T) {
	existing := &models.Campaign{
		Payments: []models.Payment{
			{Date: "2024-01-01", Amount: 100, UTR: "UTR-1"},
			{Date: "2024-02-01", Amount: 200, UTR: "UTR-2"},
		},
	}

	next, err := mergeCampaign(existing, models.UpdateCampaignRequest{
		Payments: []models.PaymentInput{
			{Date: "2024-03-01", Amount: f64Ptr(300)},
		},
	})
	assert.NoError(t, err)

	assert.Len(t, next.Payments, 1)
	assert.Equal(t, models.Payment{Date: "2024-03-01", Amount: 300, UTR: ""}, next.Payments[0])
}

func TestMergeCampaignEmptyPaymentsClears(t *testing.T) {
	existing := &models.Campaign{
		Payments: []models.Payment{{Date: "2024-01-01", Amount: 100}},
	}

	// An explicit empty sequence replaces, a nil one leaves alone
	next, err := mergeCampaign(existing, models.UpdateCampaignRequest{
		Payments: []models.PaymentInput{},
	})
	assert.NoError(t, err)
	assert.Len(t, next.Payments, 0)
}

func TestNormalizePayments(t *testing.T) {
	// Missing reference becomes the empty string
	out, err := normalizePayments([]models.PaymentInput{
		{Date: "2024-01-01", Amount: f64Ptr(100)},
		{Date: "2024-02-01", Amount: f64Ptr(200), UTR: strPtr("UTR-9")},
	})
	assert.NoError(t, err)
	assert.Equal(t, "", out[0].UTR)
	assert.Equal(t, "UTR-9", out[1].UTR)

	// Missing date names the offending index
	_, err = normalizePayments([]models.PaymentInput{
		{Date: "2024-01-01", Amount: f64Ptr(100)},
		{Amount: f64Ptr(200)},
	})
	var vErr *models.ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "payments[1]")

	// Missing amount also rejects
	_, err = normalizePayments([]models.PaymentInput{
		{Date: "2024-01-01"},
	})
	assert.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "payments[0]")
}

func TestMergeCampaignReplacesLinks(t *testing.T) {
	existing := &models.Campaign{
		Links: []models.CampaignLink{{Heading: "Old", URL: "https://example.com/old"}},
	}

	next, err := mergeCampaign(existing, models.UpdateCampaignRequest{
		Links: []models.CampaignLink{
			{Heading: "New A", URL: "https://example.com/a"},
			{Heading: "New B", URL: "https://example.com/b"},
		},
	})
	assert.NoError(t, err)
	assert.Len(t, next.Links, 2)
	assert.Equal(t, "New A", next.Links[0].Heading)
}
