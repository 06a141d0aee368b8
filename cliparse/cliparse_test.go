// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_IDENTITY", "IDENTITY_SALT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_IDENTITY", "chair")
	t.Setenv("IDENTITY_SALT", "test-salt")

	cfg, err := ParseFlags([]string{"-env", ""})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.AdminIdentity != "chair" {
		t.Errorf("expected admin chair, got %s", cfg.AdminIdentity)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := ParseFlags([]string{"-env", "", "-p", "8080", "-d", "file:test.db", "-admin", "chair", "-identity-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_EnvFile(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("ADMIN_IDENTITY", "from-env")

	path := filepath.Join(t.TempDir(), "test.env")
	content := "DATABASE_TYPE=memory\nADMIN_IDENTITY=from-file\nIDENTITY_SALT=file-salt\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := ParseFlags([]string{"-env", path})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.DatabaseType != DatabaseMemory {
		t.Errorf("expected memory from env file, got %s", cfg.DatabaseType)
	}
	if cfg.IdentitySalt != "file-salt" {
		t.Errorf("expected salt from env file, got %s", cfg.IdentitySalt)
	}
	// existing environment wins over the file
	if cfg.AdminIdentity != "from-env" {
		t.Errorf("expected admin from environment, got %s", cfg.AdminIdentity)
	}
}

func TestParseFlags_MissingEnvFileIsIgnored(t *testing.T) {
	clearConfigEnv(t)

	_, err := ParseFlags([]string{"-env", filepath.Join(t.TempDir(), "nope.env"), "-t", "memory", "-admin", "chair", "-identity-salt", "s"})
	if err != nil {
		t.Errorf("missing env file should be ignored, got %v", err)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing database url", []string{"-admin", "chair", "-identity-salt", "s"}},
		{"missing admin", []string{"-t", "memory", "-identity-salt", "s"}},
		{"missing salt", []string{"-t", "memory", "-admin", "chair"}},
		{"unknown database type", []string{"-t", "oracle", "-d", "x", "-admin", "chair", "-identity-salt", "s"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearConfigEnv(t)
			args := append([]string{"-env", ""}, tt.args...)
			if _, err := ParseFlags(args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestParseFlags_UnreadableEnvFile(t *testing.T) {
	clearConfigEnv(t)

	// A directory exists but cannot be parsed as an env file
	_, err := ParseFlags([]string{"-env", t.TempDir(), "-t", "memory", "-admin", "chair", "-identity-salt", "s"})
	if err == nil {
		t.Error("Expected error for an env path that is a directory")
	}
}
