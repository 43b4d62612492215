// Package app is the composition root for ats.
//
// # Overview
//
// Run wires together everything the TUI needs and then blocks until the user
// exits or the context is cancelled:
//
//  1. Resolve the AWS profile and region (flags, environment, defaults)
//  2. Load shared AWS config and build the ECR client
//  3. Register the browsable services in the service registry
//  4. Load UI preferences (theme) from the prefs file
//  5. Start the Bubble Tea program rooted at the ECR list view
//
// # Error Handling
//
// Failures during wiring are fatal and returned from Run; the caller prints
// them and exits. Once the UI is running, remote failures are recoverable:
// they surface as the session error pane and the next successful refresh
// clears them.
//
// # Usage
//
//	err := app.Run(ctx, app.Options{
//		Profile:      *profile,
//		Region:       *region,
//		RefreshEvery: *refresh,
//	})
package app
