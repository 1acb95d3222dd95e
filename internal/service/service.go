package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/adityasingal/vendordesk/internal/models"
	"github.com/adityasingal/vendordesk/internal/repository"
	"github.com/adityasingal/vendordesk/internal/utils"
)

// Service defines all the business logic operations
type Service interface {
	// Authentication
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	// Vendor operations
	ListVendors(ctx context.Context) ([]models.Vendor, error)
	ListVendorsByUser(ctx context.Context, userID string) ([]models.Vendor, error)
	GetVendor(ctx context.Context, token string) (*models.Vendor, error)
	CreateVendor(ctx context.Context, userID string, req models.CreateVendorRequest) (*models.Vendor, error)
	UpdateVendor(ctx context.Context, token string, req models.UpdateVendorRequest) (*models.Vendor, error)
	DeleteVendor(ctx context.Context, token string) error

	// Campaign operations
	ListCampaigns(ctx context.Context) ([]models.Campaign, error)
	ListCampaignsByUser(ctx context.Context, userID string) ([]models.Campaign, error)
	ListCampaignsByVendor(ctx context.Context, vendorID string) ([]models.Campaign, error)
	GetCampaign(ctx context.Context, token string) (*models.Campaign, error)
	CreateCampaign(ctx context.Context, userID string, req models.CreateCampaignRequest) (*models.Campaign, error)
	UpdateCampaign(ctx context.Context, token string, req models.UpdateCampaignRequest) (*models.Campaign, error)
	DeleteCampaign(ctx context.Context, token string) error
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo          repository.Repository
	jwtSecret     []byte
	tokenDuration time.Duration
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, jwtSecret string, tokenDuration time.Duration) Service {
	return &DefaultService{
		repo:          repo,
		jwtSecret:     []byte(jwtSecret),
		tokenDuration: tokenDuration,
	}
}

// Authentication methods
func (s *DefaultService) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	// Check if user already exists
	existingUser, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking user existence: %w", err)
	}

	if existingUser != nil {
		return nil, fmt.Errorf("user with email %q: %w", req.Email, models.ErrConflict)
	}

	// Hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	// Create the user
	user := &models.User{
		Email:    req.Email,
		Name:     req.Name,
		Password: string(hashedPassword),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("user with email %q: %w", req.Email, err)
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &models.AuthResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int(s.tokenDuration.Seconds()),
		User: &models.UserInfo{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *DefaultService) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	// Get the user
	user, err := s.repo.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	// Same error for both unknown email and wrong password
	if user == nil {
		return nil, models.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrUnauthorized
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	return &models.AuthResponse{
		Success:   true,
		Token:     token,
		ExpiresIn: int(s.tokenDuration.Seconds()),
		User: &models.UserInfo{
			ID:    user.ID.Hex(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (s *DefaultService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return users, nil
}

// Vendor operations
func (s *DefaultService) ListVendors(ctx context.Context) ([]models.Vendor, error) {
	vendors, err := s.repo.ListVendors(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing vendors: %w", err)
	}
	return vendors, nil
}

func (s *DefaultService) ListVendorsByUser(ctx context.Context, userID string) ([]models.Vendor, error) {
	vendors, err := s.repo.ListVendorsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing vendors: %w", err)
	}
	return vendors, nil
}

func (s *DefaultService) GetVendor(ctx context.Context, token string) (*models.Vendor, error) {
	return s.resolveVendor(ctx, token)
}

func (s *DefaultService) CreateVendor(
	ctx context.Context,
	userID string,
	req models.CreateVendorRequest,
) (*models.Vendor, error) {
	vendorID := req.VendorID
	if vendorID == "" {
		vendorID = utils.NewBusinessID("V")
	}

	category := req.Category
	if category == "" {
		category = models.CategoryFreelance
	}
	if !models.ValidCategory(category) {
		return nil, models.NewValidationError("unknown category %q", category)
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}
	if !models.ValidStatus(status) {
		return nil, models.NewValidationError("unknown status %q", status)
	}

	date := time.Now().UTC()
	if req.Date != nil {
		date = *req.Date
	}

	vendor := &models.Vendor{
		VendorID:   vendorID,
		UserID:     userID,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Aadhaar:    req.Aadhaar,
		Pan:        req.Pan,
		Category:   category,
		VendorType: req.VendorType,
		Status:     status,
		Date:       date,
		UploadDocs: emptyIfNil(req.UploadDocs),
		UTR:        req.UTR,
		Msg:        req.Msg,
		Extra:      req.Extra,
		InsertURLs: emptyURLsIfNil(req.InsertURLs),
	}

	if err := s.repo.CreateVendor(ctx, vendor); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("vendor %q: %w", vendorID, err)
		}
		return nil, fmt.Errorf("error creating vendor: %w", err)
	}

	return vendor, nil
}

func (s *DefaultService) UpdateVendor(
	ctx context.Context,
	token string,
	req models.UpdateVendorRequest,
) (*models.Vendor, error) {
	existing, err := s.resolveVendor(ctx, token)
	if err != nil {
		return nil, err
	}

	next, err := mergeVendor(existing, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceVendor(ctx, existing.ID, next); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("vendor %q: %w", token, err)
		}
		return nil, fmt.Errorf("error updating vendor: %w", err)
	}

	return next, nil
}

func (s *DefaultService) DeleteVendor(ctx context.Context, token string) error {
	vendor, err := s.resolveVendor(ctx, token)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteVendor(ctx, vendor.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("vendor %q: %w", token, err)
		}
		return fmt.Errorf("error deleting vendor: %w", err)
	}

	return nil
}

// Campaign operations
func (s *DefaultService) ListCampaigns(ctx context.Context) ([]models.Campaign, error) {
	campaigns, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *DefaultService) ListCampaignsByUser(ctx context.Context, userID string) ([]models.Campaign, error) {
	campaigns, err := s.repo.ListCampaignsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing campaigns: %w", err)
	}
	return campaigns, nil
}

// ListCampaignsByVendor returns the campaigns referencing a vendor's
// business id. An unknown vendor yields an empty list, not an error:
// orphaned references are tolerated.
func (s *DefaultService) ListCampaignsByVendor(ctx context.Context, vendorID string) ([]models.Campaign, error) {
	campaigns, err := s.repo.ListCampaignsByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("error listing campaigns: %w", err)
	}
	return campaigns, nil
}

func (s *DefaultService) GetCampaign(ctx context.Context, token string) (*models.Campaign, error) {
	return s.resolveCampaign(ctx, token)
}

func (s *DefaultService) CreateCampaign(
	ctx context.Context,
	userID string,
	req models.CreateCampaignRequest,
) (*models.Campaign, error) {
	campaignID := req.CampaignID
	if campaignID == "" {
		campaignID = utils.NewBusinessID("C")
	}

	kpiAchieved := req.KPIAchieved
	if kpiAchieved == "" {
		kpiAchieved = "no"
	}

	status := req.Status
	if status == "" {
		status = models.StatusActive
	}

	payments, err := normalizePayments(req.Payments)
	if err != nil {
		return nil, err
	}

	campaign := &models.Campaign{
		CampaignID:   campaignID,
		CampaignName: req.CampaignName,
		UserID:       userID,
		VendorID:     req.VendorID,
		Platform:     req.Platform,
		Brand:        req.Brand,
		Handler:      req.Handler,
		KPI:          req.KPI,
		KPIAchieved:  kpiAchieved,
		Btag:         req.Btag,
		BtagLogin:    req.BtagLogin,
		BtagPassword: req.BtagPassword,
		Budget:       req.Budget,
		Duration:     req.Duration,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		BankDetails:  req.BankDetails,
		Msg:          req.Msg,
		Extra:        req.Extra,
		Status:       status,
		Payments:     payments,
		Links:        emptyLinksIfNil(req.Links),
	}

	if err := s.repo.CreateCampaign(ctx, campaign); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return nil, fmt.Errorf("campaign %q: %w", campaignID, err)
		}
		return nil, fmt.Errorf("error creating campaign: %w", err)
	}

	return campaign, nil
}

func (s *DefaultService) UpdateCampaign(
	ctx context.Context,
	token string,
	req models.UpdateCampaignRequest,
) (*models.Campaign, error) {
	existing, err := s.resolveCampaign(ctx, token)
	if err != nil {
		return nil, err
	}

	next, err := mergeCampaign(existing, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceCampaign(ctx, existing.ID, next); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, fmt.Errorf("campaign %q: %w", token, err)
		}
		return nil, fmt.Errorf("error updating campaign: %w", err)
	}

	return next, nil
}

func (s *DefaultService) DeleteCampaign(ctx context.Context, token string) error {
	campaign, err := s.resolveCampaign(ctx, token)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteCampaign(ctx, campaign.ID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("campaign %q: %w", token, err)
		}
		return fmt.Errorf("error deleting campaign: %w", err)
	}

	return nil
}

// Helper methods
func (s *DefaultService) generateJWT(user *models.User) (string, error) {
	expirationTime := time.Now().Add(s.tokenDuration)

	claims := jwt.MapClaims{
		"sub":   user.ID.Hex(), // subject
		"email": user.Email,
		"exp":   expirationTime.Unix(),
		"iat":   time.Now().Unix(), // issued at
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func emptyIfNil(xs []string) []string {
	if xs == nil {
		return []string{}
	}
	return xs
}

func emptyURLsIfNil(xs []models.InsertURL) []models.InsertURL {
	if xs == nil {
		return []models.InsertURL{}
	}
	return xs
}

func emptyLinksIfNil(xs []models.CampaignLink) []models.CampaignLink {
	if xs == nil {
		return []models.CampaignLink{}
	}
	return xs
}
