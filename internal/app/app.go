package app

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"

	"github.com/jaehong21/ats/internal/config"
	"github.com/jaehong21/ats/internal/ecr"
	"github.com/jaehong21/ats/internal/prefs"
	"github.com/jaehong21/ats/internal/service"
	"github.com/jaehong21/ats/internal/state"
	"github.com/jaehong21/ats/internal/ui"
)

// Version is the release version stamped into the header.
const Version = "0.2.0"

// Options configure the ats application.
type Options struct {
	Profile      string // empty falls back to AWS_PROFILE, then "default"
	Region       string // empty falls back to AWS_REGION/AWS_DEFAULT_REGION
	PrefsPath    string // empty uses default ~/.config/ats/prefs.toml
	RefreshEvery int    // seconds; zero uses default
}

// Run boots the ats TUI until the context is cancelled or the user quits.
// Inability to establish the AWS configuration aborts before the input loop
// starts; every later failure surfaces inside the UI instead.
func Run(ctx context.Context, opts Options) error {
	identity := config.Resolve(opts.Profile, opts.Region)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithSharedConfigProfile(identity.Profile),
		awsconfig.WithRegion(identity.Region),
	)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}

	client := ecr.NewClient(awsecr.NewFromConfig(awsCfg))

	registry := service.NewRegistry()
	ecrService := ecr.NewService(client)
	registry.Register(ecrService)

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:   ctx,
		Registry:  registry,
		Cache:     state.NewCache(),
		Identity:  identity,
		Root:      ecrService.Metadata().ID,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Version:   Version,
	}
	if opts.RefreshEvery > 0 {
		uiOpts.RefreshEvery = time.Duration(opts.RefreshEvery) * time.Second
	}
	return ui.Run(uiOpts)
}
