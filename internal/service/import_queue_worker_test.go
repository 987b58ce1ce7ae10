package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"forkful/internal/domain"
	"forkful/internal/service"
	"forkful/mocks"
)

func TestImportQueueWorker_PollsAndDispatches(t *testing.T) {
	jobRepo := new(mocks.MockImportJobRepo)
	importSvc := new(mocks.MockImportService)

	job := domain.ImportJob{
		ID:         uuid.New(),
		SourceKind: domain.SourceURL,
		SourceURL:  "https://example.com/r",
		Status:     domain.ImportStatusProcessing,
	}

	// First poll returns one job, subsequent polls return empty.
	jobRepo.On("ClaimQueued", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ImportJob{job}, nil).Once()
	jobRepo.On("ClaimQueued", mock.Anything, mock.AnythingOfType("int")).
		Return([]domain.ImportJob{}, nil).Maybe()

	dispatched := make(chan struct{})
	importSvc.On("Process", mock.Anything, mock.AnythingOfType("*domain.ImportJob"), 3).
		Run(func(args mock.Arguments) {
			got := args.Get(1).(*domain.ImportJob)
			assert.Equal(t, job.ID, got.ID)
			assert.Equal(t, 1, got.Attempts, "worker increments attempts before dispatch")
			close(dispatched)
		}).
		Return().Once()

	worker := service.NewImportQueueWorker(jobRepo, importSvc, service.ImportQueueConfig{
		PollInterval: 20 * time.Millisecond,
		MaxRetries:   3,
		Concurrency:  2,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Start(ctx)
	}()

	select {
	case <-dispatched:
	case <-time.After(2 * time.Second):
		t.Fatal("job was never dispatched")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not shut down")
	}

	importSvc.AssertExpectations(t)
}

func TestImportQueueWorker_ClaimErrorKeepsPolling(t *testing.T) {
	jobRepo := new(mocks.MockImportJobRepo)
	importSvc := new(mocks.MockImportService)

	polled := make(chan struct{}, 4)
	jobRepo.On("ClaimQueued", mock.Anything, mock.AnythingOfType("int")).
		Run(func(mock.Arguments) {
			select {
			case polled <- struct{}{}:
			default:
			}
		}).
		Return(nil, errors.New("db hiccup"))

	worker := service.NewImportQueueWorker(jobRepo, importSvc, service.ImportQueueConfig{
		PollInterval: 10 * time.Millisecond,
		MaxRetries:   1,
		Concurrency:  1,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		worker.Start(ctx)
	}()

	// The worker must survive repeated claim errors.
	for i := 0; i < 2; i++ {
		select {
		case <-polled:
		case <-time.After(2 * time.Second):
			t.Fatal("worker stopped polling after an error")
		}
	}

	cancel()
	<-done
	importSvc.AssertNotCalled(t, "Process", mock.Anything, mock.Anything, mock.Anything)
}
