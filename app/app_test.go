package app_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msitumum/app"
	"msitumum/config"
	"msitumum/database/dbtest"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

type client struct {
	t *testing.T
	a *app.App
}

func newClient(t *testing.T, loginRate int) *client {
	cfg := config.Defaults()
	cfg.Auth.LoginRate = loginRate
	a := app.New(cfg, app.Deps{DB: dbtest.Open(t), Now: func() time.Time { return fixedNow }})
	return &client{t: t, a: a}
}

func (c *client) do(method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	c.t.Helper()
	var r *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(c.t, err)
		r = httptest.NewRequest(method, path, bytes.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c.a.Echo.ServeHTTP(rec, r)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") && strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{") {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec, out
}

func (c *client) register(username, role string) string {
	c.t.Helper()
	rec, out := c.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"username":  username,
		"email":     username + "@example.org",
		"password":  "s3cret!",
		"full_name": strings.ToUpper(username[:1]) + username[1:],
		"role":      role,
	})
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())
	return out["token"].(string)
}

func id(t *testing.T, out map[string]any) int {
	t.Helper()
	v, ok := out["id"].(float64)
	require.True(t, ok, "response has no id: %v", out)
	return int(v)
}

func TestHealthAndMetrics(t *testing.T) {
	c := newClient(t, 100)

	rec, out := c.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", out["status"])
	assert.Equal(t, "MsituMum API is running", out["message"])

	rec, _ = c.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = c.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "msitumum_http_requests_total")
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	c := newClient(t, 100)
	for _, path := range []string{"/api/sites", "/api/planting", "/api/analytics/dashboard", "/api/auth/me"} {
		rec, out := c.do(http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "Access token required", out["error"], path)
	}
	rec, out := c.do(http.MethodGet, "/api/sites", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid or expired token", out["error"])
}

func TestUnknownAPIPathIsNotFound(t *testing.T) {
	c := newClient(t, 100)
	tok := c.register("amina", "farmer")
	for _, path := range []string{"/api/nope", "/api/sites/1/extra", "/api/analytics"} {
		for _, token := range []string{"", tok} {
			rec, out := c.do(http.MethodGet, path, token, nil)
			assert.Equal(t, http.StatusNotFound, rec.Code, path)
			assert.NotEmpty(t, out["error"], path)
		}
	}
}

func TestSpeciesArePublic(t *testing.T) {
	c := newClient(t, 100)
	rec, _ := c.do(http.MethodGet, "/api/species", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.NotEmpty(t, list)

	rec, _ = c.do(http.MethodGet, "/api/species/99999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	c := newClient(t, 100)
	rec, out := c.do(http.MethodPost, "/api/auth/register", "", map[string]any{
		"username": "ab", "email": "x@example.org", "password": "s3cret!", "full_name": "X",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, out["error"], "username")
}

func TestLoginRateLimited(t *testing.T) {
	c := newClient(t, 3)
	var last int
	for i := 0; i < 4; i++ {
		rec, _ := c.do(http.MethodPost, "/api/auth/login", "", map[string]any{"username": "nobody", "password": "x"})
		last = rec.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestLogout(t *testing.T) {
	c := newClient(t, 100)
	tok := c.register("amina", "farmer")

	rec, out := c.do(http.MethodGet, "/api/auth/me", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "amina", out["user"].(map[string]any)["username"])

	rec, _ = c.do(http.MethodPost, "/api/auth/logout", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = c.do(http.MethodGet, "/api/auth/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRestorationFlow(t *testing.T) {
	c := newClient(t, 100)
	farmer := c.register("amina", "farmer")
	other := c.register("greenbelt", "ngo")

	rec, out := c.do(http.MethodPost, "/api/sites", farmer, map[string]any{
		"site_name": "Kakamega", "climate_zone": "humid", "latitude": 0.28,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	siteID := id(t, out)

	// only the owner may change a site
	rec, _ = c.do(http.MethodPut, fmt.Sprintf("/api/sites/%d", siteID), other, map[string]any{"site_name": "Mine"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec, _ = c.do(http.MethodPut, fmt.Sprintf("/api/sites/%d", siteID), farmer, map[string]any{"site_name": "Kakamega Forest"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, out = c.do(http.MethodPost, "/api/planting", farmer, map[string]any{
		"site_id": siteID, "species_id": 1, "seedlings_planted": 100,
		"planting_date": "2024-01-15", "mulching": true, "soil_ph": 6.5, "soil_moisture": "moist",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	plantingID := id(t, out)

	rec, out = c.do(http.MethodGet, fmt.Sprintf("/api/planting/%d", plantingID), farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 100, out["current_survival_rate"])

	rec, out = c.do(http.MethodPost, "/api/monitoring", farmer, map[string]any{
		"planting_id": plantingID, "monitoring_date": "2024-05-01", "survival_count": 80,
		"maintenance_activities": "weeding", "mortality_cause": "drought",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, out = c.do(http.MethodPost, "/api/monitoring", farmer, map[string]any{
		"planting_id": plantingID, "survival_count": 101,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, out)

	rec, out = c.do(http.MethodGet, fmt.Sprintf("/api/planting/%d", plantingID), farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 80, out["current_survival_rate"])
	assert.Len(t, out["monitoring"], 1)

	rec, out = c.do(http.MethodPost, "/api/costs", farmer, map[string]any{
		"planting_id": plantingID, "cost_category": "labor", "amount": 4000,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec, out = c.do(http.MethodGet, fmt.Sprintf("/api/predictions/planting/%d", plantingID), farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.EqualValues(t, 31.7, out["survival_probability_1year"])
	first := id(t, out)

	rec, out = c.do(http.MethodGet, fmt.Sprintf("/api/predictions/planting/%d", plantingID), farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, first, id(t, out))

	rec, out = c.do(http.MethodGet, "/api/predictions/summary", farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, out["total_plantings"])

	rec, out = c.do(http.MethodGet, "/api/analytics/dashboard", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	overall := out["overall"].(map[string]any)
	assert.EqualValues(t, 100, overall["total_planted"])
	assert.EqualValues(t, 80, overall["survival_rate"])
	causes := out["mortality_causes"].([]any)
	require.Len(t, causes, 1)
	assert.Equal(t, "drought", causes[0].(map[string]any)["mortality_cause"])

	rec, _ = c.do(http.MethodGet, "/api/analytics/cost-per-tree", farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var costs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &costs))
	require.Len(t, costs, 1)
	assert.EqualValues(t, 50, costs[0]["cost_per_surviving_tree"])

	rec, _ = c.do(http.MethodGet, "/api/analytics/cost-per-tree/export", farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "cost-per-tree.xlsx")
	assert.NotZero(t, rec.Body.Len())

	rec, _ = c.do(http.MethodDelete, fmt.Sprintf("/api/sites/%d", siteID), other, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// a site with plantings stays, so analytics never see an orphan
	rec, out = c.do(http.MethodDelete, fmt.Sprintf("/api/sites/%d", siteID), farmer, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, out["error"], "cannot be deleted")

	rec, out = c.do(http.MethodGet, "/api/analytics/dashboard", farmer, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	sites := out["site_performance"].([]any)
	require.Len(t, sites, 1)
	assert.Equal(t, "Kakamega Forest", sites[0].(map[string]any)["site_name"])
}
