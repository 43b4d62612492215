package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jaehong21/ats/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	profile := flag.String("profile", "", "AWS profile to use (defaults to AWS_PROFILE)")
	region := flag.String("region", "", "AWS region to use (defaults to AWS_REGION)")
	refreshSeconds := flag.Int("refresh", 0, "auto-refresh interval in seconds (optional, defaults to 30s)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		Profile:   *profile,
		Region:    *region,
		PrefsPath: *prefsPath,
	}
	if refresh := *refreshSeconds; refresh > 0 {
		opts.RefreshEvery = refresh
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "ats: %v\n", err)
		return 1
	}
	return 0
}
