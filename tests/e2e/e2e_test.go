package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"healthportal/internal/database"
	"healthportal/internal/domain"
	"healthportal/internal/middleware"
	"healthportal/internal/modules/booking"
	"healthportal/internal/modules/catalog"
	"healthportal/internal/modules/dashboard"
	"healthportal/internal/modules/reports"
	jwtsvc "healthportal/internal/pkg/jwt"
	"healthportal/internal/repository"
)

type apiResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *errorDetail           `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

type testSuite struct {
	router *gin.Engine
	token  string
}

func setupSuite(t *testing.T) *testSuite {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))

	log := zap.NewNop()

	bookingRepo := repository.NewBookingRepository(db)
	catalogProvider := catalog.NewStaticProvider()
	reportProvider := reports.NewStaticProvider()
	slotProvider := booking.NewFixedSlotProvider()

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)

	catalogHandler := catalog.NewHandler(catalog.NewService(catalogProvider))
	// Zero submit delay keeps the suite fast.
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, catalogProvider, slotProvider, 0, log))
	reportHandler := reports.NewHandler(reports.NewService(reportProvider))
	dashboardHandler := dashboard.NewHandler(dashboard.NewService(reportProvider, bookingRepo, log))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	catalogHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Identity(j))
	{
		bookingHandler.RegisterRoutes(protected)
		reportHandler.RegisterRoutes(protected)
		dashboardHandler.RegisterRoutes(protected)
	}

	token, err := j.GenerateToken(domain.Patient{
		ID:    "patient-1",
		Name:  "Asha Patil",
		Email: "asha@example.com",
		Phone: "+91 98765 43210",
	})
	require.NoError(t, err)

	return &testSuite{router: r, token: token}
}

func (s *testSuite) do(t *testing.T, method, path string, body any, authed bool) (*httptest.ResponseRecorder, apiResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)

	var out apiResponse
	if rec.Header().Get("Content-Type") != "" &&
		bytes.HasPrefix(rec.Body.Bytes(), []byte("{")) {
		_ = json.Unmarshal(rec.Body.Bytes(), &out)
	}
	return rec, out
}

func TestCatalogSearch(t *testing.T) {
	s := setupSuite(t)

	rec, res := s.do(t, http.MethodGet, "/api/v1/tests?q=blood&category=diabetes&sort=name", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, res.Success)

	tests := res.Data["tests"].([]interface{})
	require.Len(t, tests, 1)
	first := tests[0].(map[string]interface{})
	assert.Equal(t, "Blood Sugar (Fasting)", first["name"])

	rec, res = s.do(t, http.MethodGet, "/api/v1/tests?q=no+such+test", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, res.Data["tests"])
}

func TestBookingFlow(t *testing.T) {
	s := setupSuite(t)

	// start with a known test
	rec, res := s.do(t, http.MethodPost, "/api/v1/bookings/workflow",
		map[string]string{"test_id": "2"}, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	wf := res.Data["workflow"].(map[string]interface{})
	require.Equal(t, "collecting_details", wf["state"])
	testInfo := wf["test"].(map[string]interface{})
	assert.Equal(t, true, testInfo["preparation_required"])
	assert.Len(t, testInfo["preparations"], 3)
	assert.Equal(t, false, wf["can_submit"])
	assert.NotEmpty(t, wf["min_date"])

	// submitting before the form is complete is unavailable
	rec, res = s.do(t, http.MethodPost, "/api/v1/bookings/workflow/submit", nil, true)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "NOT_READY", res.Error.Code)

	// an unavailable slot never gets through
	rec, res = s.do(t, http.MethodPatch, "/api/v1/bookings/workflow",
		map[string]string{"time": "10:00 AM"}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SLOT", res.Error.Code)

	// yesterday is rejected
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	rec, res = s.do(t, http.MethodPatch, "/api/v1/bookings/workflow",
		map[string]string{"date": yesterday}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_DATE", res.Error.Code)

	// fill in valid selections
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	rec, res = s.do(t, http.MethodPatch, "/api/v1/bookings/workflow", map[string]string{
		"date":        tomorrow,
		"time":        "11:00 AM",
		"location_id": "connaught-place",
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	wf = res.Data["workflow"].(map[string]interface{})
	assert.Equal(t, true, wf["can_submit"])

	// submit
	rec, res = s.do(t, http.MethodPost, "/api/v1/bookings/workflow/submit", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	wf = res.Data["workflow"].(map[string]interface{})
	require.Equal(t, "confirmed", wf["state"])
	bookingInfo := wf["booking"].(map[string]interface{})
	assert.Equal(t, "2", bookingInfo["test_id"])
	assert.Equal(t, "Blood Sugar (Fasting)", bookingInfo["test_name"])
	assert.Contains(t, wf["confirmation"], "+91 98765 43210")

	// exactly one record in the store
	rec, res = s.do(t, http.MethodGet, "/api/v1/bookings", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, res.Data["bookings"], 1)

	// upcoming appointment shows on the dashboard
	rec, res = s.do(t, http.MethodGet, "/api/v1/dashboard/summary", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	summary := res.Data["summary"].(map[string]interface{})
	assert.Equal(t, float64(1), summary["upcoming_tests"])
}

func TestBookingFlow_UnknownTest(t *testing.T) {
	s := setupSuite(t)

	rec, res := s.do(t, http.MethodPost, "/api/v1/bookings/workflow",
		map[string]string{"test_id": "999"}, true)
	require.Equal(t, http.StatusCreated, rec.Code)

	wf := res.Data["workflow"].(map[string]interface{})
	assert.Equal(t, "no_test_selected", wf["state"])
	assert.Nil(t, wf["test"])
}

func TestReportsEndpoints(t *testing.T) {
	s := setupSuite(t)

	rec, res := s.do(t, http.MethodGet, "/api/v1/reports?q=blood+sugar&status=pending", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	list := res.Data["reports"].([]interface{})
	require.Len(t, list, 1)
	first := list[0].(map[string]interface{})
	assert.Equal(t, "Blood Sugar (Fasting)", first["test_name"])

	rec, _ = s.do(t, http.MethodGet, "/api/v1/reports/1/download", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Complete_Blood_Count_(CBC)_Report_1.txt")
	assert.Contains(t, rec.Body.String(), "Lab Report for Complete Blood Count (CBC)")

	rec, res = s.do(t, http.MethodGet, "/api/v1/reports/2/download", nil, true)
	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "NOT_READY", res.Error.Code)

	// an unknown filter value reports the accepted ones
	rec, res = s.do(t, http.MethodGet, "/api/v1/reports?status=done", nil, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, res.Error)
	assert.Equal(t, "INVALID_STATUS", res.Error.Code)
	allowed := res.Error.Details["allowed"].([]interface{})
	assert.Contains(t, allowed, "pending")
	assert.Contains(t, allowed, "completed")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := setupSuite(t)

	rec, res := s.do(t, http.MethodGet, "/api/v1/bookings", nil, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", res.Error.Code)
}
