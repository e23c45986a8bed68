package web

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/DoctorPortal/DoctorPortal/internal/auth"
	"github.com/DoctorPortal/DoctorPortal/internal/config"
	"github.com/DoctorPortal/DoctorPortal/internal/content"
	"github.com/DoctorPortal/DoctorPortal/internal/db/dbtest"
	"github.com/DoctorPortal/DoctorPortal/internal/db/models"
)

const testPassword = "correct horse battery staple"

type envelope struct {
	Success    bool                `json:"success"`
	Data       json.RawMessage     `json:"data"`
	Pagination *content.Pagination `json:"pagination"`
	Message    string              `json:"message"`
	Error      string              `json:"error"`
}

type testServer struct {
	t      *testing.T
	app    *fiber.App
	db     *gorm.DB
	cfg    *config.Config
	admin  string
	editor string
}

func testConfig() *config.Config {
	return &config.Config{
		Title: "Doctor Portal",
		Webserver: config.Webserver{
			Port:         8080,
			URL:          "http://localhost:8080",
			ShutDownTime: 1,
		},
		Auth: config.Auth{
			JWTSecret:       "test-secret",
			Issuer:          "doctor-portal",
			TokenTTL:        time.Hour,
			LoginRateWindow: time.Minute,
		},
		Locale: config.Locale{
			Default:   "en",
			Supported: []string{"en", "az", "ru"},
		},
		Pagination: config.Pagination{DefaultPageSize: 10},
	}
}

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *testServer {
	t.Helper()

	cfg := testConfig()
	for _, m := range mutate {
		m(cfg)
	}

	db := dbtest.Open(t)

	service, err := New(cfg, db, nil)
	require.NoError(t, err)

	issuer, err := auth.NewIssuer(cfg.Auth)
	require.NoError(t, err)

	s := &testServer{t: t, app: service.App, db: db, cfg: cfg}

	for _, u := range []struct {
		email string
		role  models.Role
		token *string
	}{
		{email: "admin@clinic.az", role: models.RoleAdmin, token: &s.admin},
		{email: "editor@clinic.az", role: models.RoleEditor, token: &s.editor},
	} {
		hash, err := models.HashPassword(testPassword)
		require.NoError(t, err)

		user := &models.User{Email: u.email, Password: hash, Role: u.role, Active: true}
		require.NoError(t, db.Create(user).Error)

		*u.token, _, err = issuer.Sign(user)
		require.NoError(t, err)
	}

	return s
}

func (s *testServer) do(method, path string, body any, token string, headers ...string) (*http.Response, envelope) {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(s.t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.t, err)
	require.NoError(s.t, resp.Body.Close())

	var env envelope
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(s.t, json.Unmarshal(raw, &env), string(raw))
	}

	return resp, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))

	return out
}

func tr(language, field, value string) map[string]string {
	return map[string]string{"language": language, "field": field, "value": value}
}

func TestDoctorScenario(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/doctors", map[string]any{
		"slug": "dr-x",
		"translations": []map[string]string{
			tr("en", "name", "Dr. X"),
			tr("az", "name", "Dr. X (az)"),
		},
	}, s.admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)
	assert.True(t, env.Success)

	created := decode[map[string]any](t, env.Data)
	assert.Equal(t, "dr-x", created["slug"])
	assert.Equal(t, true, created["active"])
	assert.Len(t, created["translations"], 2)

	resp, env = s.do(http.MethodGet, "/api/doctors/dr-x?language=ru", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "ru", resp.Header.Get(fiber.HeaderContentLanguage))

	ru := decode[map[string]any](t, env.Data)
	assert.Equal(t, "dr-x", ru["slug"])
	assert.NotContains(t, ru, "name")

	resp, env = s.do(http.MethodGet, "/api/doctors/dr-x?language=az", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Dr. X (az)", decode[map[string]any](t, env.Data)["name"])

	id := int(created["id"].(float64))
	resp, env = s.do(http.MethodGet, fmt.Sprintf("/api/doctors/%d", id), nil, "", fiber.HeaderAcceptLanguage, "az-AZ,en;q=0.5")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "az", resp.Header.Get(fiber.HeaderContentLanguage))
	assert.Equal(t, "Dr. X (az)", decode[map[string]any](t, env.Data)["name"])

	resp, env = s.do(http.MethodGet, "/api/doctors/dr-y", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestAdminGate(t *testing.T) {
	s := newTestServer(t)
	body := map[string]any{"translations": []map[string]string{tr("en", "name", "Dr. Gate")}}

	tests := []struct {
		name           string
		token          string
		expectedStatus int
	}{
		{name: "no token", expectedStatus: fiber.StatusUnauthorized},
		{name: "invalid token", token: "not-a-token", expectedStatus: fiber.StatusUnauthorized},
		{name: "editor token", token: s.editor, expectedStatus: fiber.StatusForbidden},
		{name: "admin token", token: s.admin, expectedStatus: fiber.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := s.do(http.MethodPost, "/api/services", body, tt.token)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.Equal(t, tt.expectedStatus == fiber.StatusCreated, env.Success)

			if !env.Success {
				assert.NotEmpty(t, env.Error)
			}
		})
	}
}

func TestListPagination(t *testing.T) {
	s := newTestServer(t)

	for i := 1; i <= 15; i++ {
		require.NoError(t, s.db.Create(&models.Doctor{Slug: fmt.Sprintf("doctor-%d", i), SortOrder: i, Active: true}).Error)
	}
	require.NoError(t, s.db.Create(&models.Doctor{Slug: "hidden", SortOrder: 99, Active: false}).Error)

	tests := []struct {
		name          string
		query         string
		expectedItems int
		expectedPage  content.Pagination
	}{
		{
			name:          "second page",
			query:         "?page=2&pageSize=10",
			expectedItems: 5,
			expectedPage:  content.Pagination{Total: 15, Page: 2, PageSize: 10, TotalPages: 2},
		},
		{
			name:          "defaults",
			query:         "",
			expectedItems: 10,
			expectedPage:  content.Pagination{Total: 15, Page: 1, PageSize: 10, TotalPages: 2},
		},
		{
			name:          "non numeric values",
			query:         "?page=abc&pageSize=x",
			expectedItems: 10,
			expectedPage:  content.Pagination{Total: 15, Page: 1, PageSize: 10, TotalPages: 2},
		},
		{
			name:          "large page size",
			query:         "?pageSize=100",
			expectedItems: 15,
			expectedPage:  content.Pagination{Total: 15, Page: 1, PageSize: 100, TotalPages: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := s.do(http.MethodGet, "/api/doctors"+tt.query, nil, "")
			require.Equal(t, fiber.StatusOK, resp.StatusCode)
			require.NotNil(t, env.Pagination)

			assert.Len(t, decode[[]map[string]any](t, env.Data), tt.expectedItems)
			assert.Equal(t, tt.expectedPage, *env.Pagination)
		})
	}
}

func TestUpdateAndTranslations(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/doctors", map[string]any{
		"experienceYears": 12,
		"translations": []map[string]string{
			tr("en", "name", "Leyla Mammadova"),
			tr("en", "bio", "Cardiologist"),
			tr("ru", "name", "Лейла Мамедова"),
		},
	}, s.admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	created := decode[map[string]any](t, env.Data)
	assert.Equal(t, "leyla-mammadova", created["slug"])
	path := fmt.Sprintf("/api/doctors/%d", int(created["id"].(float64)))

	// attributes only, translations stay
	resp, env = s.do(http.MethodPut, path, map[string]any{"experienceYears": 13}, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)
	updated := decode[map[string]any](t, env.Data)
	assert.EqualValues(t, 13, updated["experienceYears"])
	assert.Len(t, updated["translations"], 3)

	// a present translations list replaces the whole set
	resp, env = s.do(http.MethodPut, path, map[string]any{
		"translations": []map[string]string{tr("az", "name", "Leyla Məmmədova")},
	}, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)
	assert.Len(t, decode[map[string]any](t, env.Data)["translations"], 1)

	resp, env = s.do(http.MethodGet, "/api/doctors/leyla-mammadova?language=en", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotContains(t, decode[map[string]any](t, env.Data), "bio")

	// explicit replace endpoint
	resp, env = s.do(http.MethodPut, path+"/translations", map[string]any{
		"translations": []map[string]string{tr("en", "name", "Leyla"), tr("en", "title", "MD")},
	}, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)

	resp, env = s.do(http.MethodGet, path+"/translations", nil, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	rows := decode[map[string]any](t, env.Data)["translations"].([]any)
	require.Len(t, rows, 2)
	assert.Equal(t, "name", rows[0].(map[string]any)["field"])

	resp, _ = s.do(http.MethodGet, path+"/translations", nil, s.editor)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// an empty list clears every translation
	resp, env = s.do(http.MethodPut, path, map[string]any{"translations": []map[string]string{}}, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)
	assert.Empty(t, decode[map[string]any](t, env.Data)["translations"])

	resp, _ = s.do(http.MethodPut, "/api/doctors/9999", map[string]any{"phone": "+994"}, s.admin)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestWriteValidation(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/doctors", map[string]any{"slug": "taken"}, s.admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	tests := []struct {
		name           string
		body           any
		expectedStatus int
	}{
		{
			name:           "slug in use",
			body:           map[string]any{"slug": "taken"},
			expectedStatus: fiber.StatusConflict,
		},
		{
			name:           "unsupported language",
			body:           map[string]any{"slug": "dr-de", "translations": []map[string]string{tr("de", "name", "Dr.")}},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "reserved field",
			body:           map[string]any{"slug": "dr-r", "translations": []map[string]string{tr("en", "slug", "x")}},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "no slug and no name",
			body:           map[string]any{"phone": "+994 12 000 00 00"},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "invalid email",
			body:           map[string]any{"slug": "dr-mail", "email": "nope"},
			expectedStatus: fiber.StatusBadRequest,
		},
		{
			name:           "numeric slug",
			body:           map[string]any{"slug": "123"},
			expectedStatus: fiber.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := s.do(http.MethodPost, "/api/doctors", tt.body, s.admin)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error)
		})
	}

	var count int64
	require.NoError(t, s.db.Model(&models.Doctor{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDelete(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/testimonials", map[string]any{
		"rating":       4,
		"translations": []map[string]string{tr("en", "text", "Great care")},
	}, s.admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)
	path := fmt.Sprintf("/api/testimonials/%d", int(decode[map[string]any](t, env.Data)["id"].(float64)))

	resp, env = s.do(http.MethodDelete, path, nil, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "testimonial deleted", env.Message)

	var rows int64
	require.NoError(t, s.db.Model(&models.Translation{}).Count(&rows).Error)
	assert.Zero(t, rows)

	resp, _ = s.do(http.MethodGet, path, nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = s.do(http.MethodDelete, path, nil, s.admin)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestBlogContentHTML(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/blog", map[string]any{
		"translations": []map[string]string{
			tr("en", "title", "Healthy Heart"),
			tr("en", "content", "**Eat well** <script>alert(1)</script>"),
		},
	}, s.admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	resp, env = s.do(http.MethodGet, "/api/blog/healthy-heart", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	post := decode[map[string]any](t, env.Data)
	html, ok := post["contentHtml"].(string)
	require.True(t, ok)
	assert.Contains(t, html, "<strong>Eat well</strong>")
	assert.NotContains(t, html, "<script>")
}

func TestStorageFailureMessage(t *testing.T) {
	tests := []struct {
		name    string
		expose  bool
		hidden  bool
		devMode bool
	}{
		{name: "hidden by default", hidden: true},
		{name: "exposed by config", expose: true},
		{name: "exposed in dev mode", devMode: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, func(c *config.Config) {
				c.Webserver.ExposeErrors = tt.expose
				c.DevMode = tt.devMode
			})

			sqlDB, err := s.db.DB()
			require.NoError(t, err)
			require.NoError(t, sqlDB.Close())

			resp, env := s.do(http.MethodGet, "/api/doctors", nil, "")
			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			assert.False(t, env.Success)

			if tt.hidden {
				assert.Equal(t, "internal server error", env.Error)
			} else {
				assert.Contains(t, env.Error, "closed")
			}
		})
	}
}

func TestLogin(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/auth/login", map[string]string{
		"email":    "Admin@Clinic.az",
		"password": testPassword,
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)

	login := decode[struct {
		Token     string    `json:"token"`
		ExpiresAt time.Time `json:"expiresAt"`
		User      struct {
			ID    uint64 `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}](t, env.Data)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, "admin@clinic.az", login.User.Email)
	assert.Equal(t, "admin", login.User.Role)
	assert.True(t, login.ExpiresAt.After(time.Now()))

	resp, env = s.do(http.MethodGet, "/api/auth/me", nil, login.Token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), "admin@clinic.az")

	resp, env = s.do(http.MethodPost, "/api/doctors", map[string]any{"slug": "via-login"}, login.Token)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	require.NoError(t, s.db.Model(&models.User{}).Where("email = ?", "editor@clinic.az").
		Update("active", false).Error)

	tests := []struct {
		name           string
		body           map[string]string
		expectedStatus int
	}{
		{name: "wrong password", body: map[string]string{"email": "admin@clinic.az", "password": "nope"}, expectedStatus: fiber.StatusUnauthorized},
		{name: "unknown email", body: map[string]string{"email": "ghost@clinic.az", "password": "nope"}, expectedStatus: fiber.StatusUnauthorized},
		{name: "disabled account", body: map[string]string{"email": "editor@clinic.az", "password": testPassword}, expectedStatus: fiber.StatusForbidden},
		{name: "missing password", body: map[string]string{"email": "admin@clinic.az"}, expectedStatus: fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, env := s.do(http.MethodPost, "/api/auth/login", tt.body, "")
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			assert.False(t, env.Success)
		})
	}

	resp, _ = s.do(http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRateLimit(t *testing.T) {
	s := newTestServer(t, func(c *config.Config) {
		c.Auth.LoginRateLimit = 2
	})

	body := map[string]string{"email": "admin@clinic.az", "password": "wrong"}

	for i := 0; i < 2; i++ {
		resp, _ := s.do(http.MethodPost, "/api/auth/login", body, "")
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	}

	resp, env := s.do(http.MethodPost, "/api/auth/login", body, "")
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)
	assert.NotEmpty(t, env.Error)
}

func TestSettings(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(http.MethodPut, "/api/settings/phone", map[string]string{"value": "+994 12 555 55 55"}, s.editor)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	resp, env := s.do(http.MethodPut, "/api/settings/phone",
		map[string]string{"value": "+994 12 555 55 55", "description": "Reception"}, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)

	resp, env = s.do(http.MethodGet, "/api/settings/phone", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	setting := decode[models.Setting](t, env.Data)
	assert.Equal(t, "+994 12 555 55 55", setting.Value)
	assert.Equal(t, "Reception", setting.Description)

	resp, env = s.do(http.MethodGet, "/api/settings", nil, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Setting](t, env.Data), 1)

	resp, _ = s.do(http.MethodDelete, "/api/settings/phone", nil, s.admin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = s.do(http.MethodGet, "/api/settings/phone", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAppointments(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/appointments", map[string]any{"fullName": "Anar"}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Error, "phone")

	resp, _ = s.do(http.MethodPost, "/api/appointments", map[string]any{
		"fullName": "Anar", "phone": "+994 50 000 00 00", "doctorId": 42,
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, env = s.do(http.MethodPost, "/api/appointments", map[string]any{
		"fullName": "Anar Aliyev",
		"phone":    "+994 50 000 00 00",
		"email":    "anar@example.az",
		"message":  "Morning if possible",
	}, "", fiber.HeaderAcceptLanguage, "az")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)
	created := decode[models.Appointment](t, env.Data)
	assert.Equal(t, models.Language("az"), created.Language)

	resp, _ = s.do(http.MethodGet, "/api/appointments", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, env = s.do(http.MethodGet, "/api/appointments", nil, s.admin)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]models.Appointment](t, env.Data), 1)
	assert.EqualValues(t, 1, env.Pagination.Total)

	path := fmt.Sprintf("/api/appointments/%d", created.ID)
	resp, _ = s.do(http.MethodGet, path, nil, s.admin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = s.do(http.MethodDelete, path, nil, s.admin)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = s.do(http.MethodGet, path, nil, s.admin)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCheckAliveAndMetrics(t *testing.T) {
	s := newTestServer(t)

	resp, _ := s.do(http.MethodGet, "/checkalive", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	metricsResp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer metricsResp.Body.Close()

	raw, err := io.ReadAll(metricsResp.Body)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, metricsResp.StatusCode)
	assert.Contains(t, string(raw), "http_requests_total")

	resp, env := s.do(http.MethodGet, "/does-not-exist", nil, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, env.Success)
}

func TestNew(t *testing.T) {
	_, err := New(nil, nil, nil)
	require.ErrorIs(t, err, ErrConfigNil)

	_, err = New(testConfig(), nil, nil)
	require.ErrorIs(t, err, ErrDBNil)

	cfg := testConfig()
	cfg.Auth.JWTSecret = ""
	_, err = New(cfg, dbtest.Open(t), nil)
	require.ErrorIs(t, err, auth.ErrSecretEmpty)
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)

	resp, env := s.do(http.MethodPost, "/api/doctors", map[string]any{
		"translations": []map[string]string{tr("en", "name", "Dr. One"), tr("az", "name", "Dr. Bir")},
	}, s.admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	resp, env = s.do(http.MethodPost, "/api/doctors", map[string]any{
		"active":       false,
		"translations": []map[string]string{tr("en", "name", "Dr. Two")},
	}, s.admin)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, env.Error)

	resp, _ = s.do(http.MethodGet, "/api/dashboard", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, env = s.do(http.MethodGet, "/api/dashboard", nil, s.editor)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, env.Error)

	data := decode[struct {
		Languages []string `json:"languages"`
		Content   []struct {
			Kind       string           `json:"kind"`
			Total      int64            `json:"total"`
			Active     int64            `json:"active"`
			Translated map[string]int64 `json:"translated"`
		} `json:"content"`
		Appointments int64 `json:"appointments"`
	}](t, env.Data)

	assert.Equal(t, []string{"en", "az", "ru"}, data.Languages)
	require.Len(t, data.Content, 4)

	doctors := data.Content[0]
	assert.Equal(t, "doctor", doctors.Kind)
	assert.EqualValues(t, 2, doctors.Total)
	assert.EqualValues(t, 1, doctors.Active)
	assert.Equal(t, map[string]int64{"en": 2, "az": 1, "ru": 0}, doctors.Translated)
	assert.Zero(t, data.Appointments)
}
