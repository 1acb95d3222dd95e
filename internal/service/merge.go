package service

import (
	"time"

	"github.com/adityasingal/vendordesk/internal/models"
)

// mergeVendor applies a sparse update to an existing vendor and returns the
// new record state. Nil fields keep their stored value; VendorID and UserID
// cannot change because the request type has no such fields.
func mergeVendor(existing *models.Vendor, req models.UpdateVendorRequest) (*models.Vendor, error) {
	next := *existing

	if req.Name != nil {
		next.Name = *req.Name
	}
	if req.Email != nil {
		next.Email = *req.Email
	}
	if req.Phone != nil {
		next.Phone = *req.Phone
	}
	if req.Aadhaar != nil {
		next.Aadhaar = *req.Aadhaar
	}
	if req.Pan != nil {
		next.Pan = *req.Pan
	}
	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			return nil, models.NewValidationError("unknown category %q", *req.Category)
		}
		next.Category = *req.Category
	}
	if req.VendorType != nil {
		next.VendorType = *req.VendorType
	}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, models.NewValidationError("unknown status %q", *req.Status)
		}
		next.Status = *req.Status
	}
	if req.Date != nil {
		next.Date = *req.Date
	}
	if req.UploadDocs != nil {
		next.UploadDocs = req.UploadDocs
	}
	if req.UTR != nil {
		next.UTR = *req.UTR
	}
	if req.Msg != nil {
		next.Msg = *req.Msg
	}
	if req.Extra != nil {
		next.Extra = *req.Extra
	}
	if req.InsertURLs != nil {
		next.InsertURLs = req.InsertURLs
	}

	next.UpdatedAt = time.Now().UTC()
	return &next, nil
}

// mergeCampaign applies a sparse update to an existing campaign. Scalars
// overwrite when present; payments and links replace the whole stored
// sequence, payments after normalization. The merge is all-or-nothing: a bad
// payment entry fails the whole update before anything is persisted.
func mergeCampaign(existing *models.Campaign, req models.UpdateCampaignRequest) (*models.Campaign, error) {
	next := *existing

	if req.CampaignName != nil {
		next.CampaignName = *req.CampaignName
	}
	if req.Platform != nil {
		next.Platform = *req.Platform
	}
	if req.Brand != nil {
		next.Brand = *req.Brand
	}
	if req.Handler != nil {
		next.Handler = *req.Handler
	}
	if req.KPI != nil {
		next.KPI = *req.KPI
	}
	if req.KPIAchieved != nil {
		next.KPIAchieved = *req.KPIAchieved
	}
	if req.Btag != nil {
		next.Btag = *req.Btag
	}
	if req.BtagLogin != nil {
		next.BtagLogin = *req.BtagLogin
	}
	if req.BtagPassword != nil {
		next.BtagPassword = *req.BtagPassword
	}
	if req.Budget != nil {
		next.Budget = *req.Budget
	}
	if req.Duration != nil {
		next.Duration = *req.Duration
	}
	if req.StartDate != nil {
		next.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		next.EndDate = req.EndDate
	}
	if req.BankDetails != nil {
		next.BankDetails = *req.BankDetails
	}
	if req.Msg != nil {
		next.Msg = *req.Msg
	}
	if req.Extra != nil {
		next.Extra = *req.Extra
	}
	if req.Status != nil {
		next.Status = *req.Status
	}
	if req.Payments != nil {
		payments, err := normalizePayments(req.Payments)
		if err != nil {
			return nil, err
		}
		next.Payments = payments
	}
	if req.Links != nil {
		next.Links = req.Links
	}

	next.UpdatedAt = time.Now().UTC()
	return &next, nil
}

// normalizePayments validates and completes incoming payment entries. Date
// and amount are required; a missing transaction reference becomes the empty
// string so the field is never dropped on a later round-trip.
func normalizePayments(in []models.PaymentInput) ([]models.Payment, error) {
	out := make([]models.Payment, 0, len(in))
	for i, p := range in {
		if p.Date == "" {
			return nil, models.NewValidationError("payments[%d]: date is required", i)
		}
		if p.Amount == nil {
			return nil, models.NewValidationError("payments[%d]: amount is required", i)
		}
		utr := ""
		if p.UTR != nil {
			utr = *p.UTR
		}
		out = append(out, models.Payment{Date: p.Date, Amount: *p.Amount, UTR: utr})
	}
	return out, nil
}
