package gateway

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ShutdownBeforeRun(t *testing.T) {
	srv := NewServer("0", http.NotFoundHandler(), time.Second, time.Second)

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.ErrorIs(t, srv.Run(), http.ErrServerClosed)
}

func TestServer_ShutdownWhileRunning(t *testing.T) {
	srv := NewServer("0", http.NotFoundHandler(), time.Second, time.Second)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Run()
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Shutdown(ctx))

	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
