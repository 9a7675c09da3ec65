package reports

import (
	"context"
	"fmt"
	"testing"

	"github.com/GroSafe/ReportV1/internal/database"
	"github.com/GroSafe/ReportV1/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) Repository {
	t.Helper()

	db, err := database.Initialize(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.AutoMigrate(&models.Report{}))
	return NewRepository(db.DB)
}

func TestRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	report := &models.Report{
		ReportTypes:     []string{"Suspicious Behavior"},
		ConfidenceLevel: 70,
		Platform:        "App",
		Transcript:      "someone keeps messaging me",
		TranslatedText:  "alguien me sigue enviando mensajes",
		TargetLanguage:  "es",
		Anonymous:       true,
	}
	require.NoError(t, repo.Create(ctx, report))
	require.NotZero(t, report.ID)

	got, err := repo.GetByID(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, report.Transcript, got.Transcript)
	assert.Equal(t, report.TranslatedText, got.TranslatedText)
	assert.Equal(t, []string{"Suspicious Behavior"}, got.ReportTypes)
	assert.True(t, got.Anonymous)
}

func TestRepositoryCreateNil(t *testing.T) {
	repo := setupRepo(t)
	assert.Error(t, repo.Create(context.Background(), nil))
}

func TestRepositoryGetByIDNotFound(t *testing.T) {
	repo := setupRepo(t)

	got, err := repo.GetByID(context.Background(), 12345)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepositoryList(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Report{
			Transcript:     fmt.Sprintf("report %d", i),
			TranslatedText: fmt.Sprintf("informe %d", i),
			TargetLanguage: "es",
		}))
	}

	reports, total, err := repo.List(ctx, 3, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(5), total)
	assert.Len(t, reports, 3)

	rest, total, err := repo.List(ctx, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, rest, 2)
}
