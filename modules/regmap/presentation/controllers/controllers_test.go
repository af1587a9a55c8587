package controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stablewatch/regmap/internal/assets"
	"github.com/stablewatch/regmap/internal/server"
	"github.com/stablewatch/regmap/modules"
	"github.com/stablewatch/regmap/modules/regmap/presentation/controllers"
	"github.com/stablewatch/regmap/pkg/application"
	"github.com/stablewatch/regmap/pkg/configuration"
	"github.com/stablewatch/regmap/pkg/eventbus"
)

func TestMain(m *testing.M) {
	if err := os.Setenv("LOG_PATH", filepath.Join(os.TempDir(), "regmap-controllers-test.log")); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.PanicLevel)

	app := application.New(&application.ApplicationOptions{
		EventBus: eventbus.NewEventPublisher(logger),
		Bundle:   application.LoadBundle(),
	})
	require.NoError(t, modules.Load(app))

	app.RegisterHashFsAssets(assets.FS)
	app.RegisterControllers(
		controllers.NewStaticFilesController(app.HashFsAssets()...),
		controllers.NewHealthController(),
	)

	srv, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: configuration.Use(),
		Application:   app,
	})
	require.NoError(t, err)
	return srv.Router()
}

func get(t *testing.T, router *mux.Router, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestIndex_DefaultSelection(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "US State Stablecoin Regulation Map")
	assert.Contains(t, body, `data-abbr="NY"`)
	assert.Contains(t, body, `<article id="state-panel" class="state-panel" data-abbr="NY"`)
	assert.Contains(t, body, "New York")
	assert.Contains(t, body, "tile--selected")
	assert.Contains(t, body, "February 16, 2026")
}

func TestIndex_SelectionFromQueryParam(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/?state=WY", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `data-abbr="WY"`)
	assert.Contains(t, body, "Frontier Stable Token")
}

func TestIndex_UnknownStateSynthesized(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/?state=mt", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `data-abbr="MT"`)
	assert.Contains(t, body, "Montana")
	assert.Contains(t, body, "No dataset entry for this state")
}

func TestIndex_ListRowsSelectState(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	// Stablecoin rows select their state just like map tiles do.
	assert.Regexp(t, `class="state-link"\s+hx-get="/states/WY"\s+hx-target="#state-panel"\s+hx-swap="outerHTML"\s+hx-push-url="/\?state=WY">WY</button>`, body)
	// Development rows too.
	assert.Regexp(t, `class="state-link"\s+hx-get="/states/OH"`, body)
	assert.Contains(t, body, `hx-push-url="/?state=OH">OH</button>`)
}

func TestIndex_SectionNav(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<nav class="page__nav">`)
	for _, href := range []string{"#map", "#coins", "#bills", "#activity"} {
		assert.Contains(t, body, `href="`+href+`"`)
		assert.Contains(t, body, `id="`+href[1:]+`"`)
	}
}

func TestStatePanel_HtmxPartial(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/states/TX", map[string]string{"HX-Request": "true"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `data-abbr="TX"`)
	assert.Contains(t, body, "Texas")
	assert.NotContains(t, body, "<html")
}

func TestStatePanel_NonHtmxRedirects(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/states/TX", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?state=TX", rec.Header().Get("Location"))
}

func TestAPI_States(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/regmap/states", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		States []struct {
			Abbr        string `json:"abbr"`
			Status      string `json:"status"`
			Synthesized bool   `json:"synthesized"`
		} `json:"states"`
		LastUpdated string `json:"lastUpdated"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	assert.Len(t, out.States, 51)
	assert.Equal(t, "2026-02-16", out.LastUpdated)

	byAbbr := make(map[string]string, len(out.States))
	for _, s := range out.States {
		byAbbr[s.Abbr] = s.Status
	}
	assert.Equal(t, "clear_friendly", byAbbr["NY"])
	assert.Equal(t, "pending", byAbbr["FL"])
	assert.Equal(t, "clear_restrictive", byAbbr["CT"])
	assert.Equal(t, "federal_default", byAbbr["AK"])
}

func TestAPI_StateOverride(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/regmap/states/FL", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Abbr        string `json:"abbr"`
		Status      string `json:"status"`
		Synthesized bool   `json:"synthesized"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "FL", out.Abbr)
	assert.Equal(t, "pending", out.Status)
	assert.False(t, out.Synthesized)
}

func TestAPI_StateSynthesized(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/regmap/states/mt", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Name        string   `json:"name"`
		Status      string   `json:"status"`
		Sources     []string `json:"sources"`
		Synthesized bool     `json:"synthesized"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "Montana", out.Name)
	assert.Equal(t, "federal_default", out.Status)
	assert.True(t, out.Synthesized)
	assert.NotNil(t, out.Sources)
}

func TestAPI_Federal(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/regmap/federal", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Context *struct {
			Headline string `json:"headline"`
		} `json:"context"`
		Bills []struct {
			Name string `json:"name"`
		} `json:"pendingBills"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.NotNil(t, out.Context)
	assert.NotEmpty(t, out.Context.Headline)
	assert.NotEmpty(t, out.Bills)
}

func TestAPI_NotFoundEnvelope(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/api/v1/regmap/nope/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var out struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, "NOT_FOUND", out.Code)
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestStaticAssets(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, assets.Path("css/main.css"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/css", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "immutable")
}
