package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adityasingal/vendordesk/internal/models"
	"github.com/adityasingal/vendordesk/internal/service"
)

// Handler wires the HTTP surface to the service layer
type Handler struct {
	svc service.Service
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

// SetupRoutes registers all routes on the router
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.Health)

	auth := router.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}

	protected := router.Group("/api", AuthMiddleware())
	{
		protected.GET("/users", h.ListUsers)

		protected.GET("/vendors", h.ListVendors)
		protected.GET("/vendors/user/:userId", h.ListVendorsByUser)
		protected.GET("/vendors/:id", h.GetVendor)
		protected.POST("/vendors", h.CreateVendor)
		protected.PUT("/vendors/:id", h.UpdateVendor)
		protected.DELETE("/vendors/:id", h.DeleteVendor)

		protected.GET("/campaigns", h.ListCampaigns)
		protected.GET("/campaigns/user/:userId", h.ListCampaignsByUser)
		protected.GET("/campaigns/vendor/:vendorId", h.ListCampaignsByVendor)
		protected.GET("/campaigns/:id", h.GetCampaign)
		protected.POST("/campaigns", h.CreateCampaign)
		protected.PUT("/campaigns/:id", h.UpdateCampaign)
		protected.DELETE("/campaigns/:id", h.DeleteCampaign)
	}
}

// Health is a liveness probe
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "ok"})
}

// Auth handlers
func (h *Handler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	resp, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, resp.Token, resp.ExpiresIn)
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setTokenCookie(c, resp.Token, resp.ExpiresIn)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "logged out"})
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.svc.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.UserListResponse{Success: true, Count: len(users), Users: users})
}

// Vendor handlers
func (h *Handler) ListVendors(c *gin.Context) {
	vendors, err := h.svc.ListVendors(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VendorListResponse{Success: true, Count: len(vendors), Vendors: vendors})
}

func (h *Handler) ListVendorsByUser(c *gin.Context) {
	vendors, err := h.svc.ListVendorsByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VendorListResponse{Success: true, Count: len(vendors), Vendors: vendors})
}

func (h *Handler) GetVendor(c *gin.Context) {
	vendor, err := h.svc.GetVendor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VendorResponse{Success: true, Vendor: vendor})
}

func (h *Handler) CreateVendor(c *gin.Context) {
	var req models.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	vendor, err := h.svc.CreateVendor(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.VendorResponse{Success: true, Vendor: vendor})
}

func (h *Handler) UpdateVendor(c *gin.Context) {
	var req models.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	vendor, err := h.svc.UpdateVendor(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.VendorResponse{Success: true, Vendor: vendor})
}

func (h *Handler) DeleteVendor(c *gin.Context) {
	if err := h.svc.DeleteVendor(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "vendor deleted"})
}

// Campaign handlers
func (h *Handler) ListCampaigns(c *gin.Context) {
	campaigns, err := h.svc.ListCampaigns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CampaignListResponse{Success: true, Count: len(campaigns), Campaigns: campaigns})
}

func (h *Handler) ListCampaignsByUser(c *gin.Context) {
	campaigns, err := h.svc.ListCampaignsByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CampaignListResponse{Success: true, Count: len(campaigns), Campaigns: campaigns})
}

func (h *Handler) ListCampaignsByVendor(c *gin.Context) {
	campaigns, err := h.svc.ListCampaignsByVendor(c.Request.Context(), c.Param("vendorId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CampaignListResponse{Success: true, Count: len(campaigns), Campaigns: campaigns})
}

func (h *Handler) GetCampaign(c *gin.Context) {
	campaign, err := h.svc.GetCampaign(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CampaignResponse{Success: true, Campaign: campaign})
}

func (h *Handler) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	campaign, err := h.svc.CreateCampaign(c.Request.Context(), c.GetString("userId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.CampaignResponse{Success: true, Campaign: campaign})
}

func (h *Handler) UpdateCampaign(c *gin.Context) {
	var req models.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: err.Error()})
		return
	}

	campaign, err := h.svc.UpdateCampaign(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CampaignResponse{Success: true, Campaign: campaign})
}

func (h *Handler) DeleteCampaign(c *gin.Context) {
	if err := h.svc.DeleteCampaign(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: "campaign deleted"})
}

// setTokenCookie mirrors the token into an httpOnly cookie for browser
// clients. Secure + SameSite=None because the frontend is served from a
// different origin.
func (h *Handler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie("token", token, maxAge, "/", "", true, true)
}

// respondError turns a service error into the uniform failure envelope.
// Validation problems, missing records and unique-field collisions keep
// their messages; anything else is reported as an internal error and logged.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Error: vErr.Message})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Error: err.Error()})
	case errors.Is(err, models.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Error: err.Error()})
	case errors.Is(err, models.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Error: err.Error()})
	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Error: "internal server error"})
	}
}
