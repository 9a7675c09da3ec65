package reports

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/GroSafe/ReportV1/api/types"
	reportsvc "github.com/GroSafe/ReportV1/internal/services/reports"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/types", GetTypes())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/types", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ReportTypesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, reportsvc.ReportTypeOptions, resp.ReportTypes)
}

func TestGetLanguages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	deps := &types.Dependencies{SupportedLanguages: []string{"en", "es", "fr"}}
	router := gin.New()
	router.GET("/languages", GetLanguages(deps))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/languages", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.LanguagesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"en", "es", "fr"}, resp.Languages)
}

func TestDownloadLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("existing log", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "reports.csv")
		content := "Transcription,Translated Text\nhello,hola\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		router := gin.New()
		router.GET("/log/download", DownloadLog(&types.Dependencies{ReportLogPath: path}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/log/download", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "reports.csv")
		assert.Equal(t, content, w.Body.String())
	})

	t.Run("missing log file", func(t *testing.T) {
		router := gin.New()
		path := filepath.Join(t.TempDir(), "missing.csv")
		router.GET("/log/download", DownloadLog(&types.Dependencies{ReportLogPath: path}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/log/download", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("log not configured", func(t *testing.T) {
		router := gin.New()
		router.GET("/log/download", DownloadLog(&types.Dependencies{}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/log/download", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
