package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/gym-backoffice/internal/config"
	appdb "github.com/BruksfildServices01/gym-backoffice/internal/db"
	"github.com/BruksfildServices01/gym-backoffice/internal/domain/equipment"
	"github.com/BruksfildServices01/gym-backoffice/internal/models"
	"github.com/BruksfildServices01/gym-backoffice/internal/report"
	"github.com/BruksfildServices01/gym-backoffice/internal/timezone"
	"github.com/BruksfildServices01/gym-backoffice/internal/validators"
)

const testSecret = "test-secret"

var now = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validators.Register(); err != nil {
		panic(err)
	}
	m.Run()
}

type server struct {
	db     *gorm.DB
	router *gin.Engine
	token  string
}

func newServer(t *testing.T) *server {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, appdb.Migrate(db))

	manager := &models.User{Name: "Dana", Email: "dana@gym.test", PasswordHash: "x", Role: "EquipmentManager"}
	require.NoError(t, db.Create(manager).Error)

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:       db,
		Config:   &config.Config{JWTSecret: testSecret},
		Log:      zap.NewNop(),
		Clock:    timezone.FixedClock(now),
		Archiver: report.NopArchiver{},
	})

	return &server{db: db, router: r, token: signToken(t, manager.ID, manager.Role)}
}

func signToken(t *testing.T, userID uint, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (s *server) do(t *testing.T, req *http.Request, token string) *httptest.ResponseRecorder {
	t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *server) ajax(t *testing.T, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/calendar/ajax", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return s.do(t, req, s.token)
}

func (s *server) equipment(t *testing.T, name string) *models.Equipment {
	t.Helper()
	eq := &models.Equipment{Name: name, Type: "Cardio", Status: equipment.StatusAvailable}
	require.NoError(t, s.db.Create(eq).Error)
	return eq
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// ======================================================
// AUTH
// ======================================================

func TestHealth(t *testing.T) {
	s := newServer(t)
	w := s.do(t, httptest.NewRequest(http.MethodGet, "/health", nil), "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBackOffice_RequiresToken(t *testing.T) {
	s := newServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/statistics", nil), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "missing_authorization_header", decode(t, w)["error_code"])

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/statistics", nil), "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "invalid_token", decode(t, w)["error_code"])
}

func TestBackOffice_RejectsOtherRoles(t *testing.T) {
	s := newServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/statistics", nil), signToken(t, 1, "Trainer"))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/statistics", nil), signToken(t, 1, "Admin"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_IssuesUsableToken(t *testing.T) {
	s := newServer(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret!"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, s.db.Create(&models.User{
		Name:         "Kai",
		Email:        "kai@gym.test",
		PasswordHash: string(hash),
		Role:         "EquipmentManager",
	}).Error)

	login := func(password string) *httptest.ResponseRecorder {
		body := `{"email":"KAI@gym.test","password":"` + password + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return s.do(t, req, "")
	}

	w := login("wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = login("s3cret!")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decode(t, w)["token"].(string)
	require.NotEmpty(t, token)

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/statistics", nil), token)
	assert.Equal(t, http.StatusOK, w.Code)
}

// ======================================================
// CALENDAR
// ======================================================

func TestAjax_CreateThenFeed(t *testing.T) {
	s := newServer(t)
	eq := s.equipment(t, "Treadmill 1")

	w := s.ajax(t, map[string]any{
		"action":       "create",
		"title":        "Belt check",
		"start":        "2026-10-19 09:00",
		"event_type":   "maintenance",
		"equipment_id": eq.ID,
		"priority":     "High",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode(t, w)
	assert.Equal(t, true, created["success"])
	assert.Equal(t, "m_1", created["stream_id"])

	var reloaded models.Equipment
	require.NoError(t, s.db.First(&reloaded, eq.ID).Error)
	assert.Equal(t, equipment.StatusMaintenance, reloaded.Status)

	w = s.ajax(t, map[string]any{
		"action": "get_events",
		"start":  "2026-10-01",
		"end":    "2026-10-31",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	feed := decode(t, w)
	events, ok := feed["events"].([]any)
	require.True(t, ok)
	require.Len(t, events, 1)

	item := events[0].(map[string]any)
	assert.Equal(t, "m_1", item["id"])
	assert.Equal(t, "Treadmill 1 - Belt check", item["title"])
	assert.NotEmpty(t, feed["legend"])
}

func TestAjax_ValidationErrors(t *testing.T) {
	s := newServer(t)

	w := s.ajax(t, map[string]any{"action": "create", "title": "x", "start": "2026-10-19", "priority": "Urgent"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_priority", decode(t, w)["error_code"])

	w = s.ajax(t, map[string]any{"action": "explode"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", decode(t, w)["error_code"])

	w = s.ajax(t, map[string]any{"action": "create", "start": "2026-10-19"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "missing_title", decode(t, w)["error_code"])
}

func TestAjax_DeleteUnknown(t *testing.T) {
	s := newServer(t)

	w := s.ajax(t, map[string]any{"action": "delete", "id": "m_42"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "task_not_found", decode(t, w)["error_code"])
}

// ======================================================
// MAINTENANCE / EQUIPMENT / REPORTS
// ======================================================

func TestMaintenanceForm_ScheduleListAndComplete(t *testing.T) {
	s := newServer(t)
	eq := s.equipment(t, "Rower")

	form := url.Values{}
	form.Set("schedule_maintenance", "1")
	form.Set("equipment_id", "1")
	form.Set("scheduled_date", "2026-10-20 08:00")
	form.Set("maintenance_type", "Chain lube")
	form.Set("priority", "Medium")

	req := httptest.NewRequest(http.MethodPost, "/api/maintenance", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := s.do(t, req, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/maintenance?statuses=Scheduled", nil), s.token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, decode(t, w)["total"])

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/maintenance/quick?action=complete&id=1", nil), s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reloaded models.Equipment
	require.NoError(t, s.db.First(&reloaded, eq.ID).Error)
	assert.Equal(t, equipment.StatusAvailable, reloaded.Status)
	assert.Equal(t, 1, reloaded.MaintenanceCount)
}

func TestEquipment_NotFound(t *testing.T) {
	s := newServer(t)

	w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/equipment/999", nil), s.token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "equipment_not_found", decode(t, w)["error_code"])
}

func TestReport_MaintenanceCSV(t *testing.T) {
	s := newServer(t)
	s.equipment(t, "Bike")

	w := s.ajax(t, map[string]any{
		"action":       "create",
		"title":        "Pedal swap",
		"start":        "2026-10-21 10:00",
		"event_type":   "maintenance",
		"equipment_id": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(t, httptest.NewRequest(http.MethodGet, "/api/reports/maintenance.csv", nil), s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, `attachment; filename="maintenance-2026-10-18.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "1", w.Header().Get("X-Report-Rows"))

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "ID,Equipment"))
	assert.Contains(t, lines[1], "Pedal swap")
}

// ======================================================
// ACTIVITY LOGS
// ======================================================

func TestActivityLogs_FilterPageAndOrder(t *testing.T) {
	s := newServer(t)

	treadmill, rower := uint(1), uint(2)
	at := func(day, hour int) time.Time {
		return time.Date(2026, 10, day, hour, 0, 0, 0, time.UTC)
	}

	seed := []*models.ActivityLog{
		{UserID: 1, EquipmentID: &treadmill, Action: "maintenance_created", Entity: "maintenance", CreatedAt: at(15, 10)},
		{UserID: 1, EquipmentID: &treadmill, Action: "maintenance_completed", Entity: "maintenance", CreatedAt: at(16, 10)},
		{UserID: 1, EquipmentID: &rower, Action: "maintenance_created", Entity: "maintenance", CreatedAt: at(17, 10)},
		{UserID: 1, Action: "event_created", Entity: "event", CreatedAt: at(17, 12)},
	}
	for _, l := range seed {
		require.NoError(t, s.db.Create(l).Error)
	}

	list := func(query string) (float64, []uint) {
		t.Helper()
		w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/activity-logs"+query, nil), s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := decode(t, w)
		var ids []uint
		for _, raw := range body["logs"].([]any) {
			ids = append(ids, uint(raw.(map[string]any)["id"].(float64)))
		}
		return body["total"].(float64), ids
	}

	total, ids := list("")
	assert.Equal(t, float64(4), total)
	assert.Equal(t, []uint{seed[3].ID, seed[2].ID, seed[1].ID, seed[0].ID}, ids)

	total, ids = list("?action=maintenance_created")
	assert.Equal(t, float64(2), total)
	assert.Equal(t, []uint{seed[2].ID, seed[0].ID}, ids)

	total, ids = list("?equipment_id=1")
	assert.Equal(t, float64(2), total)
	assert.Equal(t, []uint{seed[1].ID, seed[0].ID}, ids)

	total, ids = list("?from=2026-10-16&to=2026-10-17")
	assert.Equal(t, float64(3), total)
	assert.Equal(t, []uint{seed[3].ID, seed[2].ID, seed[1].ID}, ids)

	total, ids = list("?page=2&limit=3")
	assert.Equal(t, float64(4), total)
	assert.Equal(t, []uint{seed[0].ID}, ids)
}

func TestActivityLogs_RejectsMalformedFilters(t *testing.T) {
	s := newServer(t)

	for query, code := range map[string]string{
		"?from=16/10/2026":  "invalid_date",
		"?to=yesterday":     "invalid_date",
		"?equipment_id=abc": "invalid_id",
	} {
		w := s.do(t, httptest.NewRequest(http.MethodGet, "/api/activity-logs"+query, nil), s.token)
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Equal(t, code, decode(t, w)["error_code"], query)
	}
}

func TestCORS_PreflightAndExposedHeaders(t *testing.T) {
	s := newServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/reports/maintenance.csv", nil)
	req.Header.Set("Origin", "https://office.gym.test")
	w := s.do(t, req, "")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://office.gym.test", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Report-Rows")
}
