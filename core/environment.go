package core

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

const DefaultEnvironment = "us_prd"

var (
	EnvironmentRegions = []string{"us", "au", "cn", "jp", "in", "uk"}
	EnvironmentStages  = []string{"dev", "sdb", "prd"}
)

// Environment names a datacenter deployment as <region>_<stage>, for
// example us_dev or uk_prd.
type Environment string

func ParseEnvironment(name string) (Environment, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	region, stage, ok := strings.Cut(normalized, "_")
	if !ok || region == "" || stage == "" {
		return "", fmt.Errorf("core: invalid environment %q", name)
	}
	if !slices.Contains(EnvironmentRegions, region) {
		return "", fmt.Errorf("core: unknown environment region %q", region)
	}
	if !slices.Contains(EnvironmentStages, stage) {
		return "", fmt.Errorf("core: unknown environment stage %q", stage)
	}
	return Environment(normalized), nil
}

func (e Environment) Region() string {
	region, _, _ := strings.Cut(string(e), "_")
	return region
}

func (e Environment) Stage() string {
	_, stage, _ := strings.Cut(string(e), "_")
	return stage
}

func (e Environment) String() string {
	return string(e)
}

// KnownEnvironments lists every region/stage combination.
func KnownEnvironments() []Environment {
	out := make([]Environment, 0, len(EnvironmentRegions)*len(EnvironmentStages))
	for _, region := range EnvironmentRegions {
		for _, stage := range EnvironmentStages {
			out = append(out, Environment(region+"_"+stage))
		}
	}
	return out
}

// StaticEnvironment resolves to a fixed environment name.
type StaticEnvironment string

func (e StaticEnvironment) ActiveEnvironment(context.Context) (string, error) {
	name := strings.TrimSpace(string(e))
	if name == "" {
		return "", fmt.Errorf("core: active environment is not configured")
	}
	return name, nil
}

var _ EnvironmentResolver = StaticEnvironment("")
