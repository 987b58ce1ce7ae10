package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"forkful/internal/config"
	"forkful/internal/domain"
	"forkful/internal/normalize"
	"forkful/internal/parser"
	"forkful/internal/port"
)

// ImportURLInput is the DTO for URL imports.
type ImportURLInput struct {
	URL string `json:"url" binding:"required"`
}

// ImportTextInput is the DTO for PDF and photo imports. Text is the already
// extracted plain text; File optionally carries the original bytes for
// archival.
type ImportTextInput struct {
	SourceKind  domain.SourceKind
	Text        string
	Identifier  string
	FileName    string
	File        []byte
	ContentType string
}

// ImportService defines the import pipeline contract.
type ImportService interface {
	ImportURL(ctx context.Context, input *ImportURLInput) (*domain.ImportJob, error)
	ImportText(ctx context.Context, input *ImportTextInput) (*domain.ImportJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error)
	List(ctx context.Context, offset, limit int) ([]domain.ImportJob, int, error)
	Process(ctx context.Context, job *domain.ImportJob, maxAttempts int)
}

type importService struct {
	jobRepo    port.ImportJobRepository
	recipeRepo port.RecipeRepository
	fetcher    port.PageFetcher
	storage    port.ObjectStorage
	orch       *parser.Orchestrator
	cfg        *config.S3Config
}

// NewImportService creates a new ImportService implementation.
func NewImportService(
	jobRepo port.ImportJobRepository,
	recipeRepo port.RecipeRepository,
	fetcher port.PageFetcher,
	storage port.ObjectStorage,
	orch *parser.Orchestrator,
	cfg *config.S3Config,
) ImportService {
	return &importService{
		jobRepo:    jobRepo,
		recipeRepo: recipeRepo,
		fetcher:    fetcher,
		storage:    storage,
		orch:       orch,
		cfg:        cfg,
	}
}

func (s *importService) ImportURL(ctx context.Context, input *ImportURLInput) (*domain.ImportJob, error) {
	now := time.Now().UTC()
	job := &domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: domain.SourceURL,
		SourceURL:  normalize.SourceURL(input.URL),
		Status:     domain.ImportStatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	log.Printf("importService: queued URL import %s (%s)", job.ID, job.SourceURL)
	return job, nil
}

func (s *importService) ImportText(ctx context.Context, input *ImportTextInput) (*domain.ImportJob, error) {
	if input.SourceKind != domain.SourcePDF && input.SourceKind != domain.SourcePhoto {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSourceKind, input.SourceKind)
	}

	now := time.Now().UTC()
	job := &domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: input.SourceKind,
		Identifier: input.Identifier,
		RawText:    input.Text,
		Status:     domain.ImportStatusQueued,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if job.Identifier == "" {
		job.Identifier = input.FileName
	}

	if len(input.File) > 0 {
		key := archiveKey(job.ID, input.FileName)
		_, err := s.storage.Upload(ctx, port.UploadInput{
			Bucket:      s.cfg.Bucket,
			Key:         key,
			Body:        bytes.NewReader(input.File),
			ContentType: input.ContentType,
			Size:        int64(len(input.File)),
		})
		if err != nil {
			return nil, fmt.Errorf("importService.ImportText: archive upload: %w", err)
		}
		job.SourceFileKey = key
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	log.Printf("importService: queued %s import %s (%s)", job.SourceKind, job.ID, job.Identifier)
	return job, nil
}

func (s *importService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ImportJob, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *importService) List(ctx context.Context, offset, limit int) ([]domain.ImportJob, int, error) {
	return s.jobRepo.List(ctx, offset, limit)
}

// Process runs one claimed job through the pipeline and records the outcome.
// Pipeline failures are terminal for the job; transport failures requeue it
// until maxAttempts is exhausted.
func (s *importService) Process(ctx context.Context, job *domain.ImportJob, maxAttempts int) {
	input := parser.Input{
		SourceKind: job.SourceKind,
		Text:       job.RawText,
		SourceURL:  job.SourceURL,
		Identifier: job.Identifier,
	}

	if job.SourceKind == domain.SourceURL {
		html, finalURL, err := s.fetcher.Fetch(ctx, job.SourceURL)
		if err != nil {
			s.recordFailure(ctx, job, fmt.Errorf("fetching page: %w", err), maxAttempts, true)
			return
		}
		input.HTML = html
		input.SourceURL = finalURL
		s.archivePage(ctx, job, html)
	}

	data, err := s.orch.Parse(input)
	if err != nil {
		s.recordFailure(ctx, job, err, maxAttempts, !isPipelineFailure(err))
		return
	}

	recipe := domain.NewRecipe(data, job.SourceKind)
	recipe.SourceFileKey = job.SourceFileKey
	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		s.recordFailure(ctx, job, fmt.Errorf("saving recipe: %w", err), maxAttempts, true)
		return
	}

	job.Status = domain.ImportStatusCompleted
	job.Error = ""
	job.RecipeID = &recipe.ID
	if err := s.jobRepo.Update(ctx, job); err != nil {
		log.Printf("importService.Process: failed to complete job %s: %v", job.ID, err)
		return
	}
	log.Printf("importService: job %s completed, recipe %s (%q)", job.ID, recipe.ID, recipe.Title)
}

// recordFailure requeues a retryable failure until attempts run out, and
// marks anything else failed immediately.
func (s *importService) recordFailure(ctx context.Context, job *domain.ImportJob, cause error, maxAttempts int, retryable bool) {
	job.Error = cause.Error()
	if retryable && job.Attempts < maxAttempts {
		job.Status = domain.ImportStatusQueued
		log.Printf("importService: job %s attempt %d failed, requeued: %v", job.ID, job.Attempts, cause)
	} else {
		job.Status = domain.ImportStatusFailed
		log.Printf("importService: job %s failed: %v", job.ID, cause)
	}
	if err := s.jobRepo.Update(ctx, job); err != nil {
		log.Printf("importService.recordFailure: failed to update job %s: %v", job.ID, err)
	}
}

// archivePage stores the fetched markup alongside the job. Best effort; an
// archive miss never fails the import.
func (s *importService) archivePage(ctx context.Context, job *domain.ImportJob, html string) {
	key := fmt.Sprintf("imports/%s/page.html", job.ID)
	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        strings.NewReader(html),
		ContentType: "text/html",
		Size:        int64(len(html)),
	})
	if err != nil {
		log.Printf("importService.archivePage: job %s: %v", job.ID, err)
		return
	}
	job.SourceFileKey = key
}

func isPipelineFailure(err error) bool {
	return errors.Is(err, domain.ErrNoRecipeData) ||
		errors.Is(err, domain.ErrNoTextFound) ||
		errors.Is(err, domain.ErrNoImageText) ||
		errors.Is(err, domain.ErrInvalidSourceKind)
}

func archiveKey(jobID uuid.UUID, fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".bin"
	}
	return fmt.Sprintf("imports/%s/source%s", jobID, ext)
}
