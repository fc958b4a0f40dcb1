// Moodreel - Mood-aware Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodreel

/*
Package supervisor provides process supervision for the serve command using
suture v4.

# Overview

Services are grouped under two child supervisors so that a failure in one
group never restarts the other:

	RootSupervisor ("moodreel")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── TelemetrySupervisor ("telemetry-layer")
	    └── StatsService

Crashed services are restarted with suture's failure decay and backoff.
Canceling the context passed to Serve stops every service within
TreeConfig.ShutdownTimeout. Services still running after that show up in
UnstoppedServiceReport.

# Logging

Supervisor events (service panics, failures, backoff) go through the
sutureslog hook. NewSupervisorTree accepts any *slog.Logger. The serve
command passes logging.NewSlogLogger so events land in the zerolog output.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	tree.AddTelemetryService(services.NewStatsService(engine, services.StatsServiceConfig{}, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tree.Serve(ctx)

See the services subpackage for the service wrappers.
*/
package supervisor
