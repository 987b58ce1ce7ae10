package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPageFetcher is a mock implementation of port.PageFetcher.
type MockPageFetcher struct {
	mock.Mock
}

func (m *MockPageFetcher) Fetch(ctx context.Context, url string) (string, string, error) {
	args := m.Called(ctx, url)
	return args.String(0), args.String(1), args.Error(2)
}
