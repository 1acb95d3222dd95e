package models

import "time"

// Request models
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateVendorRequest carries a new vendor. VendorID is optional; one is
// generated when absent. The owner comes from the authenticated session,
// never from the payload.
type CreateVendorRequest struct {
	VendorID   string      `json:"vendorId"`
	Name       string      `json:"name" binding:"required"`
	Email      string      `json:"email" binding:"required,email"`
	Phone      string      `json:"phone" binding:"required"`
	Aadhaar    string      `json:"aadhaar"`
	Pan        string      `json:"pan"`
	Category   string      `json:"category"`
	VendorType string      `json:"vendorType"`
	Status     string      `json:"status"`
	Date       *time.Time  `json:"date"`
	UploadDocs []string    `json:"uploadDocs"`
	UTR        string      `json:"utr"`
	Msg        string      `json:"msg"`
	Extra      string      `json:"extra"`
	InsertURLs []InsertURL `json:"insertUrls"`
}

// UpdateVendorRequest is a sparse update: nil fields are left untouched.
// Identifier and ownership fields (vendorId, userId) are deliberately
// absent, which makes them immutable at the type level. Unknown JSON fields
// are dropped on decode.
type UpdateVendorRequest struct {
	Name       *string     `json:"name"`
	Email      *string     `json:"email"`
	Phone      *string     `json:"phone"`
	Aadhaar    *string     `json:"aadhaar"`
	Pan        *string     `json:"pan"`
	Category   *string     `json:"category"`
	VendorType *string     `json:"vendorType"`
	Status     *string     `json:"status"`
	Date       *time.Time  `json:"date"`
	UploadDocs []string    `json:"uploadDocs"`
	UTR        *string     `json:"utr"`
	Msg        *string     `json:"msg"`
	Extra      *string     `json:"extra"`
	InsertURLs []InsertURL `json:"insertUrls"`
}

// PaymentInput is one incoming payment entry. Date and Amount are required;
// UTR defaults to the empty string so the stored entry always carries the
// field.
type PaymentInput struct {
	Date   string   `json:"date"`
	Amount *float64 `json:"amount"`
	UTR    *string  `json:"utr"`
}

type CreateCampaignRequest struct {
	CampaignID   string         `json:"campaignId"`
	CampaignName string         `json:"campaignName" binding:"required"`
	VendorID     string         `json:"vendorId" binding:"required"`
	Platform     string         `json:"platform"`
	Brand        string         `json:"brand"`
	Handler      string         `json:"handler"`
	KPI          string         `json:"kpi"`
	KPIAchieved  string         `json:"kpiAchieved"`
	Btag         string         `json:"btag"`
	BtagLogin    string         `json:"btagLogin"`
	BtagPassword string         `json:"btagPassword"`
	Budget       float64        `json:"budget"`
	Duration     string         `json:"duration"`
	StartDate    *time.Time     `json:"startDate"`
	EndDate      *time.Time     `json:"endDate"`
	BankDetails  string         `json:"bankDetails"`
	Msg          string         `json:"msg"`
	Extra        string         `json:"extra"`
	Status       string         `json:"status"`
	Payments     []PaymentInput `json:"payments"`
	Links        []CampaignLink `json:"campaignLinks"`
}

// UpdateCampaignRequest is a sparse update. Payments and Links, when
// present, replace the stored sequence wholesale; payments are normalized
// entry by entry first.
type UpdateCampaignRequest struct {
	CampaignName *string        `json:"campaignName"`
	Platform     *string        `json:"platform"`
	Brand        *string        `json:"brand"`
	Handler      *string        `json:"handler"`
	KPI          *string        `json:"kpi"`
	KPIAchieved  *string        `json:"kpiAchieved"`
	Btag         *string        `json:"btag"`
	BtagLogin    *string        `json:"btagLogin"`
	BtagPassword *string        `json:"btagPassword"`
	Budget       *float64       `json:"budget"`
	Duration     *string        `json:"duration"`
	StartDate    *time.Time     `json:"startDate"`
	EndDate      *time.Time     `json:"endDate"`
	BankDetails  *string        `json:"bankDetails"`
	Msg          *string        `json:"msg"`
	Extra        *string        `json:"extra"`
	Status       *string        `json:"status"`
	Payments     []PaymentInput `json:"payments"`
	Links        []CampaignLink `json:"campaignLinks"`
}

// Response models. Every outcome is wrapped in a uniform envelope carrying
// a success flag and either the requested data or an error string.
type UserInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthResponse struct {
	Success   bool      `json:"success"`
	Token     string    `json:"token,omitempty"`
	ExpiresIn int       `json:"expiresIn,omitempty"`
	User      *UserInfo `json:"user,omitempty"`
}

type UserListResponse struct {
	Success bool   `json:"success"`
	Count   int    `json:"count"`
	Users   []User `json:"users"`
}

type VendorResponse struct {
	Success bool    `json:"success"`
	Vendor  *Vendor `json:"vendor"`
}

type VendorListResponse struct {
	Success bool     `json:"success"`
	Count   int      `json:"count"`
	Vendors []Vendor `json:"vendors"`
}

type CampaignResponse struct {
	Success  bool      `json:"success"`
	Campaign *Campaign `json:"campaign"`
}

type CampaignListResponse struct {
	Success   bool       `json:"success"`
	Count     int        `json:"count"`
	Campaigns []Campaign `json:"campaigns"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
