package config

import (
	"os"
	"strings"
)

// Identity names the profile and region the session is bound to.
type Identity struct {
	Profile string
	Region  string
}

const (
	defaultProfile = "default"
	defaultRegion  = "us-east-1"
)

// Resolve determines the effective profile and region. Empty flag values
// fall back to AWS_PROFILE and AWS_REGION/AWS_DEFAULT_REGION, then to the
// defaults.
func Resolve(flagProfile, flagRegion string) Identity {
	return Identity{
		Profile: firstNonEmpty(flagProfile, os.Getenv("AWS_PROFILE"), defaultProfile),
		Region:  firstNonEmpty(flagRegion, os.Getenv("AWS_REGION"), os.Getenv("AWS_DEFAULT_REGION"), defaultRegion),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
