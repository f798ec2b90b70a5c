package config

import (
	"os"
	"testing"
)

// Load requires admin credentials, so tests always pin them.
func setAdminEnv(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("ADMIN_SESSION_SECRET", "test-session-secret")
}

func TestLoad_WithDefaults(t *testing.T) {
	envVars := []string{
		"APP_NAME", "APP_ENVIRONMENT", "APP_DEBUG",
		"SERVER_HOST", "SERVER_PORT",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_USER", "DATABASE_PASSWORD", "DATABASE_DBNAME",
		"REDIS_HOST", "REDIS_PORT", "REDIS_ENABLED",
		"CORS_ORIGIN",
	}
	for _, v := range envVars {
		os.Unsetenv(v)
	}
	setAdminEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "event-feedback" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "event-feedback")
	}
	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want %q", cfg.App.Environment, "development")
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 5000)
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Redis.Enabled {
		t.Error("Redis.Enabled should default to false")
	}
	if cfg.Admin.SessionTTL.Minutes() != 30 {
		t.Errorf("Admin.SessionTTL = %v, want 30m", cfg.Admin.SessionTTL)
	}
	if cfg.CORS.Origin != "http://localhost:3000" {
		t.Errorf("CORS.Origin = %q, want %q", cfg.CORS.Origin, "http://localhost:3000")
	}
}

func TestLoad_WithEnvOverride(t *testing.T) {
	setAdminEnv(t)
	t.Setenv("APP_NAME", "test-app")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_HOST", "db.example.com")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.App.Name != "test-app" {
		t.Errorf("App.Name = %q, want %q", cfg.App.Name, "test-app")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Database.Host != "db.example.com" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.example.com")
	}
	if !cfg.Redis.Enabled {
		t.Error("Redis.Enabled should be true")
	}
}

func TestLoad_MissingAdminConfig(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("ADMIN_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when admin credentials are missing")
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := &DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "testuser",
		Password: "testpass",
		DBName:   "testdb",
		SSLMode:  "disable",
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"

	if dsn != expected {
		t.Errorf("DSN mismatch:\nExpected: %s\nGot: %s", expected, dsn)
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := &ServerConfig{Host: "0.0.0.0", Port: 5000}
	if cfg.Addr() != "0.0.0.0:5000" {
		t.Errorf("Addr() = %q, want %q", cfg.Addr(), "0.0.0.0:5000")
	}
}
