package prometheus

import (
	"time"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	QueryFunc func(query string, timeout time.Duration) (v1.Warnings, model.Vector, error)
	Calls     int
}

func (m *MockClient) Query(query string, timeout time.Duration) (v1.Warnings, model.Vector, error) {
	m.Calls++
	if m.QueryFunc != nil {
		return m.QueryFunc(query, timeout)
	}
	return nil, nil, nil
}
