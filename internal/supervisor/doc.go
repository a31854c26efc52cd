// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

/*
Package supervisor runs serve mode under a suture v4 supervisor tree.

	RootSupervisor ("wishwise")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed HTTP server is restarted with suture's backoff. Supervisor events
(service start, failure, backoff) are logged through sutureslog, which takes
a *slog.Logger; logging.NewSlogLogger bridges that onto zerolog.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.ShutdownTimeout))
	return tree.Serve(ctx)

Serve returns once ctx is canceled and every service has stopped or the
shutdown timeout elapsed; UnstoppedServiceReport names the stragglers.
*/
package supervisor
