// SPDX-License-Identifier: MIT

// Command txsweep evaluates transmission lines over a frequency sweep and
// writes the attenuation as an HTML chart or CSV table.
//
// Without -config it runs the built-in reference sweep: two-wire, coax and
// parallel-plate lines in copper and vacuum from 0.1 to 3 THz.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML sweep description (built-in demo when empty)")
		output     = flag.String("out", "", "output file, overrides output.path")
		format     = flag.String("format", "", "html or csv, overrides output.format")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := New(*configPath, *output, *format)
	if err := app.Run(ctx); err != nil {
		log.WithError(err).Error("Sweep failed")
		stop()
		os.Exit(1)
	}
}
