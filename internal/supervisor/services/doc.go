// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

/*
Package services provides suture.Service wrappers for Reelsift components.

Each wrapper implements the suture v4 interface

	type Service interface {
	    Serve(ctx context.Context) error
	}

and fmt.Stringer, which suture uses to name the service in its event log.

HTTPServerService runs the query API. It translates the blocking
ListenAndServe call into Serve and drains connections with Shutdown when the
context is canceled.

DatasetWatchService runs dataset.Reloader.Watch, which reloads the movie and
series files when they change. A failed watcher is restarted by the
supervisor; a failed reload inside the watcher only logs and keeps the
previous snapshot.

Example:

	tree.AddDataService(services.NewDatasetWatchService(reloader))
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Addr(), cfg.Server.ShutdownTimeout))
*/
package services
