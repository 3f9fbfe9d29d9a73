package core

import (
	"context"
	"testing"
)

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment(" US_Dev ")
	if err != nil {
		t.Fatalf("parse environment: %v", err)
	}
	if env != "us_dev" || env.Region() != "us" || env.Stage() != "dev" {
		t.Fatalf("unexpected environment %q", env)
	}

	for _, name := range []string{"", "us", "eu_dev", "us_qa", "_dev"} {
		if _, err := ParseEnvironment(name); err == nil {
			t.Fatalf("expected %q to be rejected", name)
		}
	}
}

func TestKnownEnvironments_CoversCatalog(t *testing.T) {
	known := KnownEnvironments()
	if len(known) != len(EnvironmentRegions)*len(EnvironmentStages) {
		t.Fatalf("unexpected catalog size %d", len(known))
	}
	for _, env := range known {
		if _, err := ParseEnvironment(env.String()); err != nil {
			t.Fatalf("catalog entry %q does not parse: %v", env, err)
		}
	}
}

func TestStaticEnvironment(t *testing.T) {
	name, err := StaticEnvironment("uk_prd").ActiveEnvironment(context.Background())
	if err != nil || name != "uk_prd" {
		t.Fatalf("expected uk_prd, got %q (%v)", name, err)
	}
	if _, err := StaticEnvironment(" ").ActiveEnvironment(context.Background()); err == nil {
		t.Fatalf("expected empty environment to fail")
	}
}
