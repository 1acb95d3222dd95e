package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vendor categories
const (
	CategoryFreelance = "Freelance"
	CategoryAgency    = "Agency"
)

// Vendor statuses
const (
	StatusActive    = "Active"
	StatusFuture    = "Future"
	StatusStandBy   = "Stand By"
	StatusBlacklist = "Blacklist"
)

// User represents a registered account
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name" json:"name"`
	Password  string             `bson:"password" json:"-"` // bcrypt hash, never serialized
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// InsertURL is a single uploaded-document link attached to a vendor
type InsertURL struct {
	URL string `bson:"url" json:"url"`
}

// Vendor represents a vendor in the system. VendorID is the human-facing
// identifier (e.g. "V-1218") and is unique; ID is the store-assigned one.
// UserID is the owning account and never changes after creation.
type Vendor struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VendorID   string             `bson:"vendorId" json:"vendorId"`
	UserID     string             `bson:"userId" json:"userId"`
	Name       string             `bson:"name" json:"name"`
	Email      string             `bson:"email" json:"email"`
	Phone      string             `bson:"phone" json:"phone"`
	Aadhaar    string             `bson:"aadhaar" json:"aadhaar"`
	Pan        string             `bson:"pan" json:"pan"`
	Category   string             `bson:"category" json:"category"`
	VendorType string             `bson:"vendorType" json:"vendorType"`
	Status     string             `bson:"status" json:"status"`
	Date       time.Time          `bson:"date" json:"date"`
	UploadDocs []string           `bson:"uploadDocs" json:"uploadDocs"`
	UTR        string             `bson:"utr" json:"utr"`
	Msg        string             `bson:"msg" json:"msg"`
	Extra      string             `bson:"extra" json:"extra"`
	InsertURLs []InsertURL        `bson:"insertUrls" json:"insertUrls"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Payment is one entry of a campaign's payment history. UTR is the bank
// transaction reference; it is always persisted, empty when unknown.
type Payment struct {
	Date   string  `bson:"date" json:"date"`
	Amount float64 `bson:"amount" json:"amount"`
	UTR    string  `bson:"utr" json:"utr"`
}

// CampaignLink is a labelled URL attached to a campaign
type CampaignLink struct {
	Heading string `bson:"heading" json:"heading"`
	URL     string `bson:"url" json:"url"`
}

// Campaign represents a marketing campaign. CampaignID is the unique
// human-facing identifier; VendorID references the vendor's VendorID and is
// not enforced by a constraint, so orphaned references are tolerated.
type Campaign struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CampaignID   string             `bson:"campaignId" json:"campaignId"`
	CampaignName string             `bson:"campaignName" json:"campaignName"`
	UserID       string             `bson:"userId" json:"userId"`
	VendorID     string             `bson:"vendorId" json:"vendorId"`
	Platform     string             `bson:"platform" json:"platform"`
	Brand        string             `bson:"brand" json:"brand"`
	Handler      string             `bson:"handler" json:"handler"`
	KPI          string             `bson:"kpi" json:"kpi"`
	KPIAchieved  string             `bson:"kpiAchieved" json:"kpiAchieved"`
	Btag         string             `bson:"btag" json:"btag"`
	BtagLogin    string             `bson:"btagLogin" json:"btagLogin"`
	BtagPassword string             `bson:"btagPassword" json:"btagPassword"`
	Budget       float64            `bson:"budget" json:"budget"`
	Duration     string             `bson:"duration" json:"duration"`
	StartDate    *time.Time         `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate      *time.Time         `bson:"endDate,omitempty" json:"endDate,omitempty"`
	BankDetails  string             `bson:"bankDetails" json:"bankDetails"`
	Msg          string             `bson:"msg" json:"msg"`
	Extra        string             `bson:"extra" json:"extra"`
	Status       string             `bson:"status" json:"status"`
	Payments     []Payment          `bson:"payments" json:"payments"`
	Links        []CampaignLink     `bson:"campaignLinks" json:"campaignLinks"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ValidCategory reports whether s is a known vendor category
func ValidCategory(s string) bool {
	return s == CategoryFreelance || s == CategoryAgency
}

// ValidStatus reports whether s is a known vendor status
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusFuture, StatusStandBy, StatusBlacklist:
		return true
	}
	return false
}
