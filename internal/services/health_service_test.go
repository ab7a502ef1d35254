package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cellwatch/pkg/contracts/domain"
)

func TestHealthService_HealthCheck(t *testing.T) {
	hs := NewHealthService("1.2.3", nil, nil)

	status := hs.HealthCheck(context.Background())
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "1.2.3", status.Version)
	assert.False(t, status.Timestamp.IsZero())
}

func TestHealthService_ReadinessCheck(t *testing.T) {
	tests := []struct {
		name        string
		docs        []domain.DocumentInfo
		err         error
		wantStatus  string
		wantService string
		wantMessage string
	}{
		{
			name:        "documents listed",
			docs:        []domain.DocumentInfo{{Name: "a.txt"}, {Name: "b.log"}},
			wantStatus:  "ready",
			wantService: "ready",
			wantMessage: "2 documents",
		},
		{
			name:        "listing fails",
			err:         errors.New("no such directory"),
			wantStatus:  "not_ready",
			wantService: "not_ready",
			wantMessage: "document listing failed: no such directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockDocumentSource{}
			store.On("Documents", mock.Anything).Return(tt.docs, tt.err)

			status := NewHealthService("1.0.0", store, nil).ReadinessCheck(context.Background())
			assert.Equal(t, tt.wantStatus, status.Status)
			require.Contains(t, status.Services, "documents")
			assert.Equal(t, tt.wantService, status.Services["documents"].Status)
			assert.Equal(t, tt.wantMessage, status.Services["documents"].Message)
		})
	}
}

func TestHealthService_ReadinessWithoutStore(t *testing.T) {
	status := NewHealthService("1.0.0", nil, nil).ReadinessCheck(context.Background())
	assert.Equal(t, "not_ready", status.Status)
}

func TestHealthService_LivenessAndVersion(t *testing.T) {
	hs := NewHealthService("1.0.0", nil, nil)

	live := hs.LivenessCheck(context.Background())
	assert.Equal(t, "alive", live.Status)
	assert.Contains(t, live.Runtime, "goroutines")

	v := hs.Version()
	assert.Equal(t, "1.0.0", v["version"])
	assert.Contains(t, v, "go_version")
}
