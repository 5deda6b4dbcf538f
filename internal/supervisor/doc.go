// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package supervisor runs Reelsift's long-lived services under suture v4.

The tree has two layers so that a crashing file watcher never takes the API
down with it:

	RootSupervisor ("reelsift")
	├── DataSupervisor ("data-layer")
	│   └── DatasetWatchService (when DATASET_WATCH=true)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The initial dataset load happens in main before the tree starts; the server
refuses to start without a first snapshot. Later reloads are driven by the
watcher and never interrupt query serving, because the dataset store swaps
whole snapshots.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddDataService(services.NewDatasetWatchService(reloader))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Restart behavior

Each supervisor counts failures with exponential decay (FailureDecay
seconds). Past FailureThreshold it waits FailureBackoff before restarting.
Services returning nil are restarted as well; returning ctx.Err() on
cancellation is the normal way to stop.

Supervisor events (service panics, failures, backoff) are logged through
sutureslog into the zerolog pipeline via logging.NewSlogLogger.
*/
package supervisor
