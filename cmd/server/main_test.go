package main

import (
	"testing"

	"github.com/jsamuelsen11/replicator/internal/domain/provision"
	"github.com/jsamuelsen11/replicator/internal/platform/config"
)

func TestProvisioningSettings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		level     string
		wantLevel provision.Level
	}{
		{name: "numeric level", level: "2", wantLevel: 2},
		{name: "empty level", level: "", wantLevel: 0},
		{name: "garbage level", level: "two", wantLevel: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := provisioningSettings(&config.ProvisioningConfig{
				Token:           "tok",
				ProjectID:       "proj-1",
				EnvironmentID:   "env-1",
				RepoOwner:       "octo",
				RepoName:        "replicator",
				Branch:          "main",
				Level:           tt.level,
				Compensate:      true,
				MaxParallelRuns: 2,
				MaxBatch:        3,
			})

			if got.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", got.Level, tt.wantLevel)
			}
			if got.Source.Repo() != "octo/replicator" || got.Source.Branch != "main" {
				t.Errorf("Source = %+v", got.Source)
			}
			if got.Token != "tok" || !got.Compensate || got.MaxBatch != 3 || got.MaxParallelRuns != 2 {
				t.Errorf("settings = %+v", got)
			}
		})
	}
}
