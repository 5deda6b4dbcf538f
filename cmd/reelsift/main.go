// Reelsift - Media Title Query Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelsift

// Command reelsift queries movie and series tables from the command line.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/reelsift/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := cli.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
