// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/vidtrends/internal/logging"
	"github.com/tomtom215/vidtrends/internal/metrics"
)

// StorePinger is satisfied by *database.DB.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// Probe defaults.
const (
	DefaultProbeInterval = 30 * time.Second
	DefaultProbeTimeout  = 5 * time.Second
)

// StoreProbeService pings the metric store on a fixed interval and publishes
// the result to the vidtrends_store_up gauge. State changes are logged once.
type StoreProbeService struct {
	store    StorePinger
	interval time.Duration
	timeout  time.Duration
	name     string
	logger   zerolog.Logger

	probed  atomic.Bool
	healthy atomic.Bool
}

// NewStoreProbeService creates a probe. Non-positive durations use the defaults.
func NewStoreProbeService(store StorePinger, interval, timeout time.Duration) *StoreProbeService {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	if timeout <= 0 {
		timeout = DefaultProbeTimeout
	}
	return &StoreProbeService{
		store:    store,
		interval: interval,
		timeout:  timeout,
		name:     "store-probe",
		logger:   logging.WithComponent("store-probe"),
	}
}

// Serve implements suture.Service. The first probe runs immediately.
func (s *StoreProbeService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.probe(ctx)
		}
	}
}

func (s *StoreProbeService) probe(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err := s.store.Ping(pingCtx)
	up := err == nil
	metrics.SetStoreUp(up)

	first := !s.probed.Swap(true)
	was := s.healthy.Swap(up)
	switch {
	case !up && (first || was):
		s.logger.Warn().Err(err).Msg("Metric store health probe failed")
	case up && !first && !was:
		s.logger.Info().Msg("Metric store reachable again")
	}
}

// Healthy reports the result of the most recent probe.
func (s *StoreProbeService) Healthy() bool {
	return s.healthy.Load()
}

// String implements fmt.Stringer.
func (s *StoreProbeService) String() string {
	return s.name
}
