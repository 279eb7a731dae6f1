// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package supervisor

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func newTestSlogLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestTree_ServeBackgroundStops(t *testing.T) {
	t.Parallel()

	tree := NewTree(newTestSlogLogger(), DefaultTreeConfig())

	server := newMockHTTPServer()
	server.listenAndServeBlock = true
	tree.Add(NewHTTPServerService(server, time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	errCh := tree.ServeBackground(ctx)

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-errCh:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop after context cancellation")
	}
}
