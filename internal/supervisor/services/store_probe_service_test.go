// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/vidtrends/internal/metrics"
)

// switchPinger fails while down is set.
type switchPinger struct {
	mu    sync.Mutex
	down  bool
	pings atomic.Int32
}

func (p *switchPinger) Ping(ctx context.Context) error {
	p.pings.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("probe ping without deadline")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.down {
		return errors.New("connection refused")
	}
	return nil
}

func (p *switchPinger) setDown(down bool) {
	p.mu.Lock()
	p.down = down
	p.mu.Unlock()
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNewStoreProbeService_Defaults(t *testing.T) {
	svc := NewStoreProbeService(&switchPinger{}, 0, -1)
	if svc.interval != DefaultProbeInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultProbeInterval)
	}
	if svc.timeout != DefaultProbeTimeout {
		t.Errorf("timeout = %v, want %v", svc.timeout, DefaultProbeTimeout)
	}
	if svc.String() != "store-probe" {
		t.Errorf("String() = %q", svc.String())
	}
}

// Not parallel: the gauge is process-global.
func TestStoreProbeService_TracksStoreState(t *testing.T) {
	pinger := &switchPinger{}
	svc := NewStoreProbeService(pinger, 10*time.Millisecond, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	// first probe is immediate
	waitFor(t, func() bool { return pinger.pings.Load() >= 1 })
	waitFor(t, svc.Healthy)
	if got := testutil.ToFloat64(metrics.StoreUp); got != 1 {
		t.Errorf("store_up = %v, want 1", got)
	}

	pinger.setDown(true)
	waitFor(t, func() bool { return !svc.Healthy() })
	waitFor(t, func() bool { return testutil.ToFloat64(metrics.StoreUp) == 0 })

	pinger.setDown(false)
	waitFor(t, svc.Healthy)
	waitFor(t, func() bool { return testutil.ToFloat64(metrics.StoreUp) == 1 })

	cancel()
	select {
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve() = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after cancellation")
	}
}
