// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
Package supervisor runs the long-lived Vidtrends services under suture v4.

	root ("vidtrends")
	├── data-layer
	│   └── StoreProbeService
	└── api-layer
	    └── HTTPServerService

Each layer counts failures on its own, so a store probe in backoff never
restarts the HTTP server. Supervisor events are logged through sutureslog
using the zerolog-backed slog logger from internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("supervisor")
	}
	tree.AddDataService(services.NewStoreProbeService(db, 30*time.Second, 5*time.Second))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-tree.ServeBackground(ctx)
*/
package supervisor
