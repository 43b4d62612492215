// Package config resolves the AWS identity ats runs under.
//
// # Overview
//
// ats needs a profile and a region before it can build an AWS client. This
// package only decides which names to use; credential loading itself is done
// by the AWS SDK's shared-config machinery.
//
// # Resolution Order
//
// For each field, the first non-empty source wins:
//
//  1. Command-line flag (-profile, -region)
//  2. Environment: AWS_PROFILE; AWS_REGION, then AWS_DEFAULT_REGION
//  3. Built-in defaults: "default" and "us-east-1"
//
// Values are trimmed of surrounding whitespace before the emptiness check,
// so a flag set to "  " falls through to the environment.
//
// # Usage
//
//	id := config.Resolve(*profileFlag, *regionFlag)
//	cfg, err := awsconfig.LoadDefaultConfig(ctx,
//		awsconfig.WithSharedConfigProfile(id.Profile),
//		awsconfig.WithRegion(id.Region),
//	)
//
// Resolve never fails; a nonexistent profile surfaces later as an error from
// the SDK when credentials are actually loaded.
package config
