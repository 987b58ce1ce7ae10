package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"forkful/internal/config"
	"forkful/internal/domain"
	"forkful/internal/parser"
	"forkful/internal/port"
	"forkful/internal/service"
	"forkful/mocks"
)

const recipePage = `
<script type="application/ld+json">
{"@type": "Recipe", "name": "Fetched Lasagna", "recipeIngredient": ["12 noodles"]}
</script>`

func newImportFixture() (*mocks.MockImportJobRepo, *mocks.MockRecipeRepo, *mocks.MockPageFetcher, *mocks.MockObjectStorage, service.ImportService) {
	jobRepo := new(mocks.MockImportJobRepo)
	recipeRepo := new(mocks.MockRecipeRepo)
	fetcher := new(mocks.MockPageFetcher)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewImportService(jobRepo, recipeRepo, fetcher, storage, parser.New(), &config.S3Config{Bucket: "recipes-test"})
	return jobRepo, recipeRepo, fetcher, storage, svc
}

func TestImportURL_QueuesJob(t *testing.T) {
	jobRepo, _, _, _, svc := newImportFixture()
	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ImportJob")).Return(nil)

	job, err := svc.ImportURL(context.Background(), &service.ImportURLInput{URL: "example.com/lasagna"})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceURL, job.SourceKind)
	assert.Equal(t, "https://example.com/lasagna", job.SourceURL)
	assert.Equal(t, domain.ImportStatusQueued, job.Status)
	jobRepo.AssertExpectations(t)
}

func TestImportText_RejectsURLKind(t *testing.T) {
	_, _, _, _, svc := newImportFixture()
	_, err := svc.ImportText(context.Background(), &service.ImportTextInput{
		SourceKind: domain.SourceURL,
		Text:       "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidSourceKind)
}

func TestImportText_ArchivesFile(t *testing.T) {
	jobRepo, _, _, storage, svc := newImportFixture()
	jobRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.ImportJob")).Return(nil)
	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{}, nil)

	job, err := svc.ImportText(context.Background(), &service.ImportTextInput{
		SourceKind: domain.SourcePDF,
		Text:       "Soup\nIngredients:\n1 cup broth",
		FileName:   "soup.pdf",
		File:       []byte("%PDF-1.4"),
	})
	require.NoError(t, err)
	assert.Contains(t, job.SourceFileKey, job.ID.String())
	assert.Contains(t, job.SourceFileKey, ".pdf")
}

func TestProcess_URLSuccess(t *testing.T) {
	jobRepo, recipeRepo, fetcher, storage, svc := newImportFixture()

	job := &domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: domain.SourceURL,
		SourceURL:  "https://example.com/lasagna",
		Status:     domain.ImportStatusProcessing,
		Attempts:   1,
	}

	fetcher.On("Fetch", mock.Anything, job.SourceURL).
		Return(recipePage, "https://example.com/lasagna", nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("archive offline"))
	recipeRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Recipe")).Return(nil)
	jobRepo.On("Update", mock.Anything, job).Return(nil)

	svc.Process(context.Background(), job, 3)

	assert.Equal(t, domain.ImportStatusCompleted, job.Status)
	require.NotNil(t, job.RecipeID)
	assert.Empty(t, job.Error)
	recipeRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(r *domain.Recipe) bool {
		return r.Title == "Fetched Lasagna" && r.SourceKind == domain.SourceURL
	}))
}

func TestProcess_FetchFailureRequeues(t *testing.T) {
	jobRepo, _, fetcher, _, svc := newImportFixture()

	job := &domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: domain.SourceURL,
		SourceURL:  "https://example.com/flaky",
		Attempts:   1,
	}

	fetcher.On("Fetch", mock.Anything, job.SourceURL).Return("", "", errors.New("connection reset"))
	jobRepo.On("Update", mock.Anything, job).Return(nil)

	svc.Process(context.Background(), job, 3)

	assert.Equal(t, domain.ImportStatusQueued, job.Status)
	assert.Contains(t, job.Error, "connection reset")
}

func TestProcess_FetchFailureExhaustsRetries(t *testing.T) {
	jobRepo, _, fetcher, _, svc := newImportFixture()

	job := &domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: domain.SourceURL,
		SourceURL:  "https://example.com/flaky",
		Attempts:   3,
	}

	fetcher.On("Fetch", mock.Anything, job.SourceURL).Return("", "", errors.New("connection reset"))
	jobRepo.On("Update", mock.Anything, job).Return(nil)

	svc.Process(context.Background(), job, 3)

	assert.Equal(t, domain.ImportStatusFailed, job.Status)
}

func TestProcess_PipelineFailureIsTerminal(t *testing.T) {
	jobRepo, _, fetcher, storage, svc := newImportFixture()

	job := &domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: domain.SourceURL,
		SourceURL:  "https://example.com/not-a-recipe",
		Attempts:   1,
	}

	fetcher.On("Fetch", mock.Anything, job.SourceURL).
		Return("<body><p>news article</p></body>", job.SourceURL, nil)
	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("skip"))
	jobRepo.On("Update", mock.Anything, job).Return(nil)

	svc.Process(context.Background(), job, 3)

	// Attempts remain; no recipe data is not a transient condition.
	assert.Equal(t, domain.ImportStatusFailed, job.Status)
	assert.Contains(t, job.Error, "no recipe data")
}

func TestProcess_PhotoEmptyText(t *testing.T) {
	jobRepo, _, _, _, svc := newImportFixture()

	job := &domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: domain.SourcePhoto,
		Identifier: "IMG_1.jpg",
		RawText:    "",
		Attempts:   1,
	}
	jobRepo.On("Update", mock.Anything, job).Return(nil)

	svc.Process(context.Background(), job, 3)

	assert.Equal(t, domain.ImportStatusFailed, job.Status)
	assert.Contains(t, job.Error, "no text found in image")
}
