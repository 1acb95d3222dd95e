package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adityasingal/vendordesk/internal/api/testutils"
	"github.com/adityasingal/vendordesk/internal/models"
)

func floatPtr(f float64) *float64 { return &f }

func createCampaign(t *testing.T, testCtx *testutils.TestContext, req models.CreateCampaignRequest) *models.Campaign {
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/campaigns",
		req,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp models.CampaignResponse
	testutils.Decode(t, w, &resp)
	assert.True(t, resp.Success)
	return resp.Campaign
}

func TestCreateCampaign(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	campaign := createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignName: "Summer Launch",
		VendorID:     "V-1218",
		Platform:     "Instagram",
		Brand:        "Acme",
		Budget:       50000,
		Payments: []models.PaymentInput{
			{Date: "2024-01-01", Amount: floatPtr(100)},
		},
	})

	assert.NotEmpty(t, campaign.CampaignID)
	assert.Equal(t, testCtx.TestUserID, campaign.UserID)
	assert.Equal(t, "no", campaign.KPIAchieved)
	assert.Equal(t, models.StatusActive, campaign.Status)

	// A payment without a reference persists with an empty one, never dropped
	assert.Len(t, campaign.Payments, 1)
	assert.Equal(t, "", campaign.Payments[0].UTR)
	assert.Equal(t, float64(100), campaign.Payments[0].Amount)

	// Missing campaignName
	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodPost,
		"/api/campaigns",
		models.CreateCampaignRequest{VendorID: "V-1218"},
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveCampaignByEitherIdentifier(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	campaign := createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignID:   "C-4001",
		CampaignName: "Either Identifier",
		VendorID:     "V-1218",
	})

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/campaigns/C-4001",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var byBusiness models.CampaignResponse
	testutils.Decode(t, w, &byBusiness)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/campaigns/"+campaign.ID.Hex(),
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var byInternal models.CampaignResponse
	testutils.Decode(t, w, &byInternal)

	assert.Equal(t, byBusiness.Campaign.ID, byInternal.Campaign.ID)

	// Unknown tokens of either shape miss cleanly
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/campaigns/C-9999",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCampaignPaymentsReplace(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignID:   "C-5001",
		CampaignName: "Payments Replace",
		VendorID:     "V-1218",
		Payments: []models.PaymentInput{
			{Date: "2024-01-01", Amount: floatPtr(100), UTR: strPtr("UTR-001")},
			{Date: "2024-02-01", Amount: floatPtr(200), UTR: strPtr("UTR-002")},
		},
	})

	// The update submits the full new sequence, not a delta
	w := testutils.PerformRawRequest(
		testCtx.Router,
		http.MethodPut,
		"/api/campaigns/C-5001",
		`{"payments":[{"date":"2024-03-01","amount":300}]}`,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.CampaignResponse
	testutils.Decode(t, w, &resp)
	assert.Len(t, resp.Campaign.Payments, 1)
	assert.Equal(t, "2024-03-01", resp.Campaign.Payments[0].Date)
	assert.Equal(t, "", resp.Campaign.Payments[0].UTR)
}

func TestUpdateCampaignPaymentValidation(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignID:   "C-5002",
		CampaignName: "All Or Nothing",
		VendorID:     "V-1218",
		Payments: []models.PaymentInput{
			{Date: "2024-01-01", Amount: floatPtr(100), UTR: strPtr("UTR-001")},
		},
	})

	// Second element is missing its amount; the whole update is rejected
	w := testutils.PerformRawRequest(
		testCtx.Router,
		http.MethodPut,
		"/api/campaigns/C-5002",
		`{"msg":"should not stick","payments":[{"date":"2024-02-01","amount":50},{"date":"2024-03-01"}]}`,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errResp models.ErrorResponse
	testutils.Decode(t, w, &errResp)
	assert.Contains(t, errResp.Error, "payments[1]")

	// Stored record is unchanged, including the scalar in the same payload
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/campaigns/C-5002",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.CampaignResponse
	testutils.Decode(t, w, &resp)
	assert.Len(t, resp.Campaign.Payments, 1)
	assert.Equal(t, "UTR-001", resp.Campaign.Payments[0].UTR)
	assert.Equal(t, "", resp.Campaign.Msg)
}

func TestUpdateCampaignLinksAndScalars(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignID:   "C-5003",
		CampaignName: "Links",
		VendorID:     "V-1218",
		Links: []models.CampaignLink{
			{Heading: "Teaser", URL: "https://example.com/teaser"},
		},
	})

	w := testutils.PerformRawRequest(
		testCtx.Router,
		http.MethodPut,
		"/api/campaigns/C-5003",
		`{"kpiAchieved":"yes","campaignLinks":[{"heading":"Launch","url":"https://example.com/launch"},{"heading":"Recap","url":"https://example.com/recap"}]}`,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.CampaignResponse
	testutils.Decode(t, w, &resp)
	assert.Equal(t, "yes", resp.Campaign.KPIAchieved)
	assert.Len(t, resp.Campaign.Links, 2)
	assert.Equal(t, "Launch", resp.Campaign.Links[0].Heading)
	// Untouched fields survive
	assert.Equal(t, "Links", resp.Campaign.CampaignName)
	assert.Equal(t, "V-1218", resp.Campaign.VendorID)
}

func TestListCampaignsByVendor(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignName: "First",
		VendorID:     "V-1218",
	})
	createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignName: "Second",
		VendorID:     "V-1218",
	})
	createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignName: "Other Vendor",
		VendorID:     "V-9000",
	})

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/campaigns/vendor/V-1218",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp models.CampaignListResponse
	testutils.Decode(t, w, &resp)
	assert.Equal(t, 2, resp.Count)

	// Orphaned or unknown vendor references are tolerated: empty list
	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/campaigns/vendor/V-DOES-NOT-EXIST",
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	testutils.Decode(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 0, resp.Count)
}

func TestDeleteCampaign(t *testing.T) {
	testCtx := testutils.SetupTestContext(t)

	campaign := createCampaign(t, testCtx, models.CreateCampaignRequest{
		CampaignName: "To Delete",
		VendorID:     "V-1218",
	})

	w := testutils.PerformRequest(
		testCtx.Router,
		http.MethodDelete,
		"/api/campaigns/"+campaign.CampaignID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusOK, w.Code)

	w = testutils.PerformRequest(
		testCtx.Router,
		http.MethodGet,
		"/api/campaigns/"+campaign.CampaignID,
		nil,
		testutils.AuthHeaders(testCtx.TestUserJWT),
	)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func strPtr(s string) *string { return &s }
