// Pantrychef - Ingredient-Based Recipe Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pantrychef

/*
Package supervisor runs the long-lived parts of the server under a
thejerf/suture/v4 supervisor tree.

	pantrychef (root)
	├── data-layer
	│   └── dataset-reload   services.ReloadService
	└── api-layer
	    └── http-server      services.HTTPServerService

Services that return an error are restarted with suture's failure decay
and backoff. Supervisor events are logged through sutureslog into the
zerolog pipeline via logging.NewSlogLogger.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddDataService(services.NewReloadService(engine, reloadCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)
*/
package supervisor
