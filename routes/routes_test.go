package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"hotelhub-backend/config"
	"hotelhub-backend/metrics"
	"hotelhub-backend/models"
	"hotelhub-backend/services"
	"hotelhub-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.PasswordCost = bcrypt.MinCost
	os.Exit(m.Run())
}

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db, err := config.ConnectDB(config.DBConfig{
		Driver:   "sqlite",
		Path:     filepath.Join(t.TempDir(), "routes.db"),
		LogLevel: gormLogger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDB(db) })

	cfg := &config.Config{
		CORSOrigins: []string{"http://localhost:3000"},
		Seed: config.SeedConfig{
			AdminEmail:    "admin@yourbookinghub.org",
			AdminPassword: "admin123",
		},
	}
	require.True(t, services.EnsureSchema(db, cfg.Seed))

	r, err := SetupRouter(Deps{
		DB:       db,
		Config:   cfg,
		Sessions: utils.NewSessionManager("test-secret", 1, false),
		Metrics:  metrics.NewHTTPMetrics("test"),
	})
	require.NoError(t, err)
	return &testServer{router: r, db: db}
}

func (s *testServer) do(req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"email": {email}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (s *testServer) sessionCookie(t *testing.T) *http.Cookie {
	t.Helper()
	w := s.login(t, "admin@yourbookinghub.org", "admin123")
	require.Equal(t, http.StatusFound, w.Code)
	c := cookieNamed(w, utils.SessionCookie)
	require.NotNil(t, c)
	return c
}

func TestLoginThenDashboard(t *testing.T) {
	s := newTestServer(t)

	w := s.login(t, "admin@yourbookinghub.org", "admin123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/dashboard", w.Header().Get("Location"))
	session := cookieNamed(w, utils.SessionCookie)
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), session)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "YourBookingHub Ultra Admin")
	assert.Contains(t, body, "ENTERPRISE")
	assert.Contains(t, body, "Deluxe Room")
	assert.Contains(t, body, "No recent emails")
}

func TestLoginFailureSetsFlash(t *testing.T) {
	s := newTestServer(t)

	for _, email := range []string{"admin@yourbookinghub.org", "nobody@example.com"} {
		w := s.login(t, email, "wrong")
		require.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/admin", w.Header().Get("Location"))
		assert.Nil(t, cookieNamed(w, utils.SessionCookie))

		flash := cookieNamed(w, "flash")
		require.NotNil(t, flash)

		page := s.do(httptest.NewRequest(http.MethodGet, "/admin", nil), flash)
		require.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), "Invalid credentials")
	}
}

func TestDashboardRequiresSession(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil),
		&http.Cookie{Name: utils.SessionCookie, Value: "forged"})
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	s := newTestServer(t)
	session := s.sessionCookie(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/admin/logout", nil), session)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	cleared := cookieNamed(w, utils.SessionCookie)
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
	assert.Negative(t, cleared.MaxAge)
}

func TestPublicPages(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "YourBookingHub.org")

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/admin/login"`)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "connected", body["database"])
	assert.Equal(t, "2.0.0", body["version"])
	assert.NotEmpty(t, body["timestamp"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestAPIStatus(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/api/status", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status       string            `json:"status"`
		APIEndpoints map[string]string `json:"api_endpoints"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "operational", body.Status)
	assert.Equal(t, "/admin/dashboard", body.APIEndpoints["dashboard"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.login(t, "admin@yourbookinghub.org", "wrong")
	s.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	w := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `admin_login_attempts_total{outcome="failure",service="test"} 1`)
	assert.Contains(t, w.Body.String(), `http_requests_total`)
}

func (s *testServer) closeDB(t *testing.T) {
	t.Helper()
	require.NoError(t, config.CloseDB(s.db))
}

func (s *testServer) flashAfter(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	flash := cookieNamed(w, "flash")
	require.NotNil(t, flash)
	page := s.do(httptest.NewRequest(http.MethodGet, "/admin", nil), flash)
	require.Equal(t, http.StatusOK, page.Code)
	return page.Body.String()
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	s := newTestServer(t)
	s.closeDB(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "unhealthy", body["status"])
	assert.Equal(t, "disconnected", body["database"])
}

func TestLoginInternalError(t *testing.T) {
	s := newTestServer(t)
	s.closeDB(t)

	w := s.login(t, "admin@yourbookinghub.org", "admin123")
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Nil(t, cookieNamed(w, utils.SessionCookie))
	assert.Contains(t, s.flashAfter(t, w), "Login failed")

	m := s.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, m.Body.String(), `admin_login_attempts_total{outcome="error",service="test"} 1`)
}

func TestDashboardFailureRedirects(t *testing.T) {
	s := newTestServer(t)
	session := s.sessionCookie(t)
	s.closeDB(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil), session)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	assert.Contains(t, s.flashAfter(t, w), "Dashboard loading failed")
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/admin/api/settings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := s.do(req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestCORSCrossOriginRequests(t *testing.T) {
	s := newTestServer(t)
	session := s.sessionCookie(t)

	req := httptest.NewRequest(http.MethodGet, "/admin/api/room-types", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := s.do(req, session)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/admin/api/room-types", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = s.do(req, session)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestAdminAPIRequiresSession(t *testing.T) {
	s := newTestServer(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/admin/api/room-types", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestAdminAPIReservationFlow(t *testing.T) {
	s := newTestServer(t)
	session := s.sessionCookie(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/admin/api/room-types", nil), session)
	require.Equal(t, http.StatusOK, w.Code)
	var rooms []models.RoomType
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	require.Len(t, rooms, 3)
	suite := rooms[2]
	require.Equal(t, "Suite", suite.Name)

	checkIn := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 12).Format("2006-01-02")
	payload := `{"roomTypeId":` + strconv.Itoa(int(suite.ID)) +
		`,"guestName":"Grace Hopper","guestEmail":"grace@example.com","checkIn":"` + checkIn +
		`","checkOut":"` + checkOut + `","adults":2}`
	req := httptest.NewRequest(http.MethodPost, "/admin/api/reservations", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req, session)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res models.Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Nights())
	assert.Positive(t, res.TotalPrice)

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/api/reservations/"+res.ConfirmationCode, nil), session)
	assert.Equal(t, http.StatusOK, w.Code)

	pay := `{"reservationId":` + strconv.Itoa(int(res.ID)) + `,"amount":` +
		strconv.FormatFloat(res.TotalPrice, 'f', 2, 64) + `,"status":"completed","paymentMethod":"card"}`
	req = httptest.NewRequest(http.MethodPost, "/admin/api/payments", strings.NewReader(pay))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req, session)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/api/dashboard", nil), session)
	require.Equal(t, http.StatusOK, w.Code)
	var stats services.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalReservations)
	assert.Equal(t, int64(1), stats.TotalCustomers)
	assert.InDelta(t, res.TotalPrice, stats.TotalRevenue, 0.001)

	req = httptest.NewRequest(http.MethodPut, "/admin/api/reservations/"+strconv.Itoa(int(res.ID))+"/status",
		strings.NewReader(`{"status":"cancelled"}`))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req, session)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/api/reservations/export", nil), session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotZero(t, w.Body.Len())
}

func TestAdminAPIErrors(t *testing.T) {
	s := newTestServer(t)
	session := s.sessionCookie(t)

	w := s.do(httptest.NewRequest(http.MethodGet, "/admin/api/reservations/YBH00000000DEADBEEF", nil), session)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req := httptest.NewRequest(http.MethodPost, "/admin/api/reservations",
		strings.NewReader(`{"roomTypeId":1,"guestName":"X","guestEmail":"x@example.com","checkIn":"2030-01-05","checkOut":"2030-01-03"}`))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	req = httptest.NewRequest(http.MethodPut, "/admin/api/room-types/abc", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = s.do(req, session)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/api/nope", nil), session)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSettingsAPI(t *testing.T) {
	s := newTestServer(t)
	session := s.sessionCookie(t)

	req := httptest.NewRequest(http.MethodPut, "/admin/api/settings", strings.NewReader(`{"key":"check_in_time","value":"15:00"}`))
	req.Header.Set("Content-Type", "application/json")
	w := s.do(req, session)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/api/settings", nil), session)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"check_in_time"`)
	assert.NotContains(t, w.Body.String(), "adminPassword")
}

func TestPanicRecovery(t *testing.T) {
	s := newTestServer(t)
	s.router.GET("/admin/boom", func(c *gin.Context) { panic("boom") })
	s.router.GET("/admin/api/boom", func(c *gin.Context) { panic("boom") })

	w := s.do(httptest.NewRequest(http.MethodGet, "/admin/boom", nil))
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
	require.NotNil(t, cookieNamed(w, "flash"))

	w = s.do(httptest.NewRequest(http.MethodGet, "/admin/api/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestFallbackRouter(t *testing.T) {
	r, err := SetupFallbackRouter(metrics.NewHTTPMetrics("fallback"))
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "unavailable", body["database"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))
	assert.Equal(t, http.StatusFound, w.Code)
}
