package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.SourceRoot != "" || cfg.App.DestRoot != "" {
		t.Fatalf("roots = %q/%q, want empty defaults", cfg.App.SourceRoot, cfg.App.DestRoot)
	}
	if !cfg.App.ShowFooter || !cfg.App.Watch {
		t.Fatal("footer and watch should default on")
	}
	if cfg.App.ShowHidden || cfg.Logging.Trace {
		t.Fatal("hidden and trace should default off")
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"STAGING_CONSOLE_SOURCE=/env/src",
		"STAGING_CONSOLE_WIDTH=80",
		"STAGING_CONSOLE_TRACE=1",
	}
	cfg, err := LoadArgs([]string{"-source", "/flag/src", "-height", "24"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.SourceRoot != "/flag/src" {
		t.Fatalf("source = %q, want flag to win", cfg.App.SourceRoot)
	}
	if cfg.App.Width != 80 || cfg.App.Height != 24 {
		t.Fatalf("size = %dx%d, want 80x24", cfg.App.Width, cfg.App.Height)
	}
	if !cfg.Logging.Trace {
		t.Fatal("trace env ignored")
	}
}

func TestLoadRejectsNegativeSize(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatal("expected an error for negative width")
	}
	if _, err := LoadArgs([]string{"-height", "-3"}, nil); err == nil {
		t.Fatal("expected an error for negative height")
	}
}

func TestFlagsSnapshot(t *testing.T) {
	cfg, err := LoadArgs([]string{"-hidden", "-verbose"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.Flags["hidden"] != "true" || cfg.Flags["verbose"] != "true" {
		t.Fatalf("flags snapshot = %v", cfg.Flags)
	}
}

func TestValidateMissingRoot(t *testing.T) {
	cfg, err := LoadArgs([]string{"-source", "/no/such/path/anywhere"}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err == nil {
		t.Fatal("expected validation to fail for a missing root")
	}
}

func TestValidateExistingRoot(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadArgs([]string{"-source", dir, "-dest", dir}, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
