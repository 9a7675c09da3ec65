package reports

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GroSafe/ReportV1/api/types"
	"github.com/GroSafe/ReportV1/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReportStore struct {
	listFunc    func(ctx context.Context, limit, offset int) ([]models.Report, int64, error)
	getByIDFunc func(ctx context.Context, id uint) (*models.Report, error)
	lastLimit   int
	lastOffset  int
}

func (f *fakeReportStore) Create(ctx context.Context, report *models.Report) error {
	return nil
}

func (f *fakeReportStore) List(ctx context.Context, limit, offset int) ([]models.Report, int64, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	if f.listFunc != nil {
		return f.listFunc(ctx, limit, offset)
	}
	return nil, 0, nil
}

func (f *fakeReportStore) GetByID(ctx context.Context, id uint) (*models.Report, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func setupHistoryRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/history", List(deps))
	router.GET("/history/:id", GetByID(deps))
	return router
}

func TestListReports(t *testing.T) {
	store := &fakeReportStore{
		listFunc: func(ctx context.Context, limit, offset int) ([]models.Report, int64, error) {
			return []models.Report{
				{ID: 2, Transcript: "second", TargetLanguage: "es"},
				{ID: 1, Transcript: "first", TargetLanguage: "es"},
			}, 2, nil
		},
	}
	router := setupHistoryRouter(&types.Dependencies{ReportStore: store})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp types.ReportListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, types.StatusOK, resp.Status)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, int64(2), resp.Total)
	require.Len(t, resp.Reports, 2)
	assert.Equal(t, uint(2), resp.Reports[0].ID)
	assert.Equal(t, 20, store.lastLimit, "default limit")
}

func TestListReportsClampsLimit(t *testing.T) {
	store := &fakeReportStore{}
	router := setupHistoryRouter(&types.Dependencies{ReportStore: store})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history?limit=500&offset=10", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 100, store.lastLimit)
	assert.Equal(t, 10, store.lastOffset)
}

func TestListReportsWithoutStore(t *testing.T) {
	router := setupHistoryRouter(&types.Dependencies{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/history", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestGetReportByID(t *testing.T) {
	store := &fakeReportStore{
		getByIDFunc: func(ctx context.Context, id uint) (*models.Report, error) {
			if id == 7 {
				return &models.Report{ID: 7, Transcript: "found"}, nil
			}
			return nil, nil
		},
	}
	router := setupHistoryRouter(&types.Dependencies{ReportStore: store})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"existing report", "/history/7", http.StatusOK},
		{"missing report", "/history/99", http.StatusNotFound},
		{"invalid id", "/history/abc", http.StatusBadRequest},
		{"zero id", "/history/0", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
