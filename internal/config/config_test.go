package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	_, res := NormalizeAndValidate(Default())
	if !res.OK() {
		t.Fatalf("default config invalid: %v", res.Errors)
	}
}

func TestNormalizeAndValidate(t *testing.T) {
	cfg := Default()
	cfg.Browse.TechKeywords = []string{" Go ", "go", "", "Postgres"}
	cfg.Browse.Territory = "  Berlin  "
	cfg.App.APIRoot = "https://jobs.example.io/api/v1/"

	out, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if len(out.Browse.TechKeywords) != 2 {
		t.Errorf("tech keywords not deduped: %v", out.Browse.TechKeywords)
	}
	if out.Browse.Territory != "Berlin" {
		t.Errorf("territory = %q", out.Browse.Territory)
	}
	if out.App.APIRoot != "https://jobs.example.io/api/v1" {
		t.Errorf("api root trailing slash kept: %q", out.App.APIRoot)
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name  string
		mod   func(*Config)
	}{
		{"bad port", func(c *Config) { c.App.Port = 0 }},
		{"missing api root", func(c *Config) { c.App.APIRoot = "" }},
		{"relative api root", func(c *Config) { c.App.APIRoot = "/api/v1" }},
		{"odd page size", func(c *Config) { c.Browse.PageSize = 15 }},
		{"zero quiescence", func(c *Config) { c.Suggest.QuiescenceMS = 0 }},
		{"zero limit", func(c *Config) { c.Suggest.Limit = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mod(&cfg)
			if _, res := NormalizeAndValidate(cfg); res.OK() {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.Browse.PageSize = 20
	cfg.Browse.TechKeywords = []string{"go"}

	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Browse.PageSize != 20 || len(got.Browse.TechKeywords) != 1 {
		t.Errorf("round trip lost fields: %+v", got.Browse)
	}

	// second save keeps a .bak of the first
	cfg.Browse.PageSize = 50
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("second save: %v", err)
	}
	if _, err := os.Stat(path + ".bak"); err != nil {
		t.Errorf("no backup written: %v", err)
	}
}

func TestSaveAtomicRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	cfg := Default()
	cfg.Browse.PageSize = 13
	if err := SaveAtomic(path, cfg); err == nil {
		t.Fatal("invalid config must not persist")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("file written despite validation failure")
	}
}

func TestEnsureUserConfig(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureUserConfig(dir)
	if err != nil {
		t.Fatalf("ensure: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load bootstrapped config: %v", err)
	}
	if cfg.Suggest.QuiescenceMS != 350 {
		t.Errorf("quiescence = %d", cfg.Suggest.QuiescenceMS)
	}
	if cfg.Quiescence() != 350*time.Millisecond {
		t.Errorf("Quiescence() = %v", cfg.Quiescence())
	}

	// existing config is left alone
	cfg.Browse.PageSize = 50
	if err := SaveAtomic(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := EnsureUserConfig(dir); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	got, _ := Load(path)
	if got.Browse.PageSize != 50 {
		t.Error("EnsureUserConfig clobbered an existing config")
	}
}
