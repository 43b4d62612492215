package config

import "testing"

func TestResolveFlagWins(t *testing.T) {
	t.Setenv("AWS_PROFILE", "env-profile")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_DEFAULT_REGION", "eu-central-1")

	id := Resolve("flag-profile", "ap-northeast-2")
	if id.Profile != "flag-profile" {
		t.Fatalf("Profile = %q, want flag-profile", id.Profile)
	}
	if id.Region != "ap-northeast-2" {
		t.Fatalf("Region = %q, want ap-northeast-2", id.Region)
	}
}

func TestResolveEnvFallback(t *testing.T) {
	t.Setenv("AWS_PROFILE", "env-profile")
	t.Setenv("AWS_REGION", "eu-west-1")
	t.Setenv("AWS_DEFAULT_REGION", "")

	id := Resolve("", "")
	if id.Profile != "env-profile" {
		t.Fatalf("Profile = %q, want env-profile", id.Profile)
	}
	if id.Region != "eu-west-1" {
		t.Fatalf("Region = %q, want eu-west-1", id.Region)
	}
}

func TestResolveDefaultRegionFallback(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "sa-east-1")

	id := Resolve("", "")
	if id.Region != "sa-east-1" {
		t.Fatalf("Region = %q, want sa-east-1", id.Region)
	}
}

func TestResolveDefaults(t *testing.T) {
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")

	id := Resolve("", "")
	if id.Profile != "default" {
		t.Fatalf("Profile = %q, want default", id.Profile)
	}
	if id.Region != "us-east-1" {
		t.Fatalf("Region = %q, want us-east-1", id.Region)
	}
}

func TestResolveTrimsWhitespace(t *testing.T) {
	t.Setenv("AWS_PROFILE", "  ")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")

	id := Resolve(" staging ", "")
	if id.Profile != "staging" {
		t.Fatalf("Profile = %q, want staging", id.Profile)
	}
}
