package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("EAPIIS_AUTH_JWT_SECRET", "0123456789abcdef-secret")
	t.Setenv("EAPIIS_SEMESTER_ALLOW_ELECTIVE", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for explicit missing file, got cfg %+v", cfg)
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9090\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("file value not applied: %d", cfg.Server.Port)
	}
	if cfg.Auth.JWTSecret != "0123456789abcdef-secret" {
		t.Errorf("env secret not applied")
	}
	if !cfg.Semester.AllowElective {
		t.Errorf("env bool not applied")
	}
	if cfg.Auth.AccessTokenTTL != 8*time.Hour {
		t.Errorf("unexpected ttl %v", cfg.Auth.AccessTokenTTL)
	}
	if cfg.Pagination.DashboardTeachers != 8 || cfg.Pagination.Teachers != 15 {
		t.Errorf("unexpected page sizes %+v", cfg.Pagination)
	}
	if cfg.TeacherCategory.DeletePolicy != DeletePolicyIgnore {
		t.Errorf("unexpected delete policy %q", cfg.TeacherCategory.DeletePolicy)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:          ServerConfig{Port: 8080},
			Auth:            AuthConfig{JWTSecret: "0123456789abcdef"},
			TeacherCategory: TeacherCategoryConfig{DeletePolicy: DeletePolicyRestrict},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"missing secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, true},
		{"unknown policy", func(c *Config) { c.TeacherCategory.DeletePolicy = "cascade" }, true},
		{"negative page", func(c *Config) { c.Pagination.Teachers = -1 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
