package sequencer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPProber_Ready(t *testing.T) {
	// Arrange
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	prober := NewHTTPProber(time.Second)

	// Act
	err := prober.Probe(context.Background(), srv.URL)

	// Assert
	require.NoError(t, err)
}

func TestHTTPProber_NotReadyStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"server error", http.StatusInternalServerError},
		{"not found", http.StatusNotFound},
		{"unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			prober := NewHTTPProber(time.Second)

			err := prober.Probe(context.Background(), srv.URL)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "status")
		})
	}
}

func TestHTTPProber_FollowsRedirectToReady(t *testing.T) {
	// Arrange
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer target.Close()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer srv.Close()

	prober := NewHTTPProber(time.Second)

	// Act
	err := prober.Probe(context.Background(), srv.URL)

	// Assert
	require.NoError(t, err)
}

func TestHTTPProber_RedirectStatusWithoutLocation(t *testing.T) {
	// Arrange: a 301 with no Location header is returned to the caller
	// unmodified instead of being followed.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusMovedPermanently)
	}))
	defer srv.Close()

	prober := NewHTTPProber(time.Second)

	// Act
	err := prober.Probe(context.Background(), srv.URL)

	// Assert
	require.NoError(t, err)
}

func TestHTTPProber_ConnectionRefused(t *testing.T) {
	// Arrange: grab a port that is guaranteed closed.
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	prober := NewHTTPProber(time.Second)

	// Act
	err := prober.Probe(context.Background(), url)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readiness probe failed")
}

func TestHTTPProber_Timeout(t *testing.T) {
	// Arrange
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer func() {
		close(release)
		srv.Close()
	}()

	prober := NewHTTPProber(50 * time.Millisecond)

	// Act
	err := prober.Probe(context.Background(), srv.URL)

	// Assert
	require.Error(t, err)
}
