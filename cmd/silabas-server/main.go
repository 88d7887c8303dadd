// Command silabas-server serves the Spanish syllable analyzer and rhyme
// index as a JSON HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; see internal/config.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/az-ai-labs/silabas/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := app.Run(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "silabas-server: %v\n", err)
		os.Exit(1)
	}
}
