package provision_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/jsamuelsen11/replicator/internal/domain/provision"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want provision.Level
	}{
		{name: "zero", raw: "0", want: 0},
		{name: "positive", raw: "3", want: 3},
		{name: "surrounding whitespace", raw: " 12 ", want: 12},
		{name: "empty defaults to zero", raw: "", want: 0},
		{name: "non-numeric defaults to zero", raw: "abc", want: 0},
		{name: "negative defaults to zero", raw: "-4", want: 0},
		{name: "fractional defaults to zero", raw: "1.5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := provision.ParseLevel(tt.raw); got != tt.want {
				t.Errorf("ParseLevel(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestLevelNext(t *testing.T) {
	t.Parallel()

	for d := range 100 {
		raw := fmt.Sprint(d)
		if got := provision.ParseLevel(raw).Next(); got != provision.Level(d+1) {
			t.Fatalf("ParseLevel(%q).Next() = %d, want %d", raw, got, d+1)
		}
	}

	for _, raw := range []string{"", "x", "-1"} {
		if got := provision.ParseLevel(raw).Next(); got != 1 {
			t.Errorf("ParseLevel(%q).Next() = %d, want 1", raw, got)
		}
	}

	if got := provision.Level(math.MaxInt).Next(); got < 0 {
		t.Errorf("Level(MaxInt).Next() = %d, want non-negative", got)
	}
}

func TestGenerate_NameFormat(t *testing.T) {
	t.Parallel()

	id := provision.Generate(2, func() string { return "tok" })

	if id.Token != "tok" {
		t.Errorf("Token = %q, want %q", id.Token, "tok")
	}
	if id.Level != 3 {
		t.Errorf("Level = %d, want 3", id.Level)
	}
	if id.Name != "tok_level_3" {
		t.Errorf("Name = %q, want %q", id.Name, "tok_level_3")
	}
}

func TestGenerate_DefaultTokenSource(t *testing.T) {
	t.Parallel()

	id := provision.Generate(0, nil)

	if id.Token == "" {
		t.Fatal("Token is empty, want random token")
	}
	if !strings.HasSuffix(id.Name, "_level_1") {
		t.Errorf("Name = %q, want suffix _level_1", id.Name)
	}
}

func TestGenerate_NoCollisions(t *testing.T) {
	t.Parallel()

	const samples = 10000
	seen := make(map[string]struct{}, samples)
	for range samples {
		id := provision.Generate(0, nil)
		if _, dup := seen[id.Token]; dup {
			t.Fatalf("duplicate token %q after %d samples", id.Token, len(seen))
		}
		seen[id.Token] = struct{}{}
	}
}

func TestSourceBindingRepo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source provision.SourceBinding
		want   string
	}{
		{name: "owner and name", source: provision.SourceBinding{Owner: "octo", Name: "app"}, want: "octo/app"},
		{name: "empty fields propagate", source: provision.SourceBinding{}, want: "/"},
		{name: "missing owner", source: provision.SourceBinding{Name: "app"}, want: "/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.source.Repo(); got != tt.want {
				t.Errorf("Repo() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildCreatePayload(t *testing.T) {
	t.Parallel()

	id := provision.Generate(4, func() string { return "abc" })
	vars := provision.ChildVariables(id.Level, "secret")

	got := provision.BuildCreatePayload(id, "proj", "env", vars)

	if got.Name != "abc_level_5" {
		t.Errorf("Name = %q, want %q", got.Name, "abc_level_5")
	}
	if got.ProjectID != "proj" || got.EnvironmentID != "env" {
		t.Errorf("ProjectID/EnvironmentID = %q/%q, want proj/env", got.ProjectID, got.EnvironmentID)
	}
	if got.Source != "" || got.Branch != "" {
		t.Errorf("Source/Branch = %q/%q, want empty at creation", got.Source, got.Branch)
	}
	if got.Variables[provision.VariableLevel] != "5" {
		t.Errorf("Variables[LEVEL] = %q, want \"5\"", got.Variables[provision.VariableLevel])
	}
	if got.Variables[provision.VariableToken] != "secret" {
		t.Errorf("Variables[RAILWAY_TOKEN] = %q, want \"secret\"", got.Variables[provision.VariableToken])
	}

	vars[provision.VariableLevel] = "mutated"
	if got.Variables[provision.VariableLevel] != "5" {
		t.Error("payload variables alias the caller's map")
	}
}

func TestBuildCreatePayload_EmptyConfiguration(t *testing.T) {
	t.Parallel()

	id := provision.Generate(0, func() string { return "t" })
	got := provision.BuildCreatePayload(id, "", "", provision.ChildVariables(id.Level, ""))

	if got.ProjectID != "" || got.EnvironmentID != "" {
		t.Errorf("ProjectID/EnvironmentID = %q/%q, want empty", got.ProjectID, got.EnvironmentID)
	}
	if v, ok := got.Variables[provision.VariableToken]; !ok || v != "" {
		t.Errorf("Variables[RAILWAY_TOKEN] = %q (present=%v), want empty string present", v, ok)
	}
}

func TestBuildSourceAttachPayload(t *testing.T) {
	t.Parallel()

	got := provision.BuildSourceAttachPayload("svc_1", provision.SourceBinding{
		Owner: "octo", Name: "app", Branch: "main",
	})

	want := provision.AttachPayload{ServiceID: "svc_1", Repo: "octo/app", Branch: "main"}
	if got != want {
		t.Errorf("BuildSourceAttachPayload() = %+v, want %+v", got, want)
	}
}

func TestBuildDomainPayload(t *testing.T) {
	t.Parallel()

	got := provision.BuildDomainPayload("svc_1", "env")

	want := provision.DomainPayload{ServiceID: "svc_1", EnvironmentID: "env"}
	if got != want {
		t.Errorf("BuildDomainPayload() = %+v, want %+v", got, want)
	}
}
