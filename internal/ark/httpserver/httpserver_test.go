package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dasch-swiss/ark-resolver/internal/ark/settings"
)

func testSettings() *settings.Settings {
	return &settings.Settings{
		ArkResolverHost:   "ark.dasch.swiss",
		ArkNaan:           "72163",
		TopLevelObjectUrl: "http://dasch.swiss",
		Projects: map[string]settings.ProjectConfig{
			"0001": {
				Host:                     "0.0.0.0:3333",
				KnoraProjectRedirectUrl:  "http://$host/admin/projects/$project_iri",
				KnoraResourceRedirectUrl: "http://$host/v2/resources/$resource_iri",
				KnoraResourceIri:         "http://rdfh.ch/$project_id/$resource_id",
				KnoraProjectIri:          "http://rdfh.ch/projects/$project_id",
			},
		},
	}
}

// TestHandle_T5 covers self-test vector T5 over HTTP.
func TestHandle_T5(t *testing.T) {
	srv := New(testSettings(), nil)
	req := httptest.NewRequest(http.MethodGet, "/ark:/72163/1", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://dasch.swiss", rec.Header().Get("Location"))
}

// TestHandle_T7 covers self-test vector T7 over HTTP.
func TestHandle_T7(t *testing.T) {
	srv := New(testSettings(), nil)
	req := httptest.NewRequest(http.MethodGet, "/ark:/72163/1/0001/cmfk1DMHRBiR4=_6HXpEFAn", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://0.0.0.0:3333/v2/resources/http%3A%2F%2Frdfh.ch%2F0001%2Fcmfk1DMHRBiR4-_6HXpEFA", rec.Header().Get("Location"))
}

// TestHandle_T10 covers self-test vector T10: a substituted character fails check-digit validation.
func TestHandle_T10(t *testing.T) {
	srv := New(testSettings(), nil)
	req := httptest.NewRequest(http.MethodGet, "/ark:/72163/1/0001/cmfk1DMHRBir4=_6HXpEFAn", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_MalformedUrl(t *testing.T) {
	srv := New(testSettings(), nil)
	req := httptest.NewRequest(http.MethodGet, "/not-an-ark-url", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownProject(t *testing.T) {
	srv := New(testSettings(), nil)
	req := httptest.NewRequest(http.MethodGet, "/ark:/72163/1/9999", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_RejectsNonGet(t *testing.T) {
	srv := New(testSettings(), nil)
	req := httptest.NewRequest(http.MethodPost, "/ark:/72163/1", nil)
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
