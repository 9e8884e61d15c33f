package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"hospital-booking-server/internal/config"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "migrate"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected %s subcommand, got %v (err %v)", name, cmd, err)
		}
	}
}

func memoryConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		SecretKey:       "test-secret",
		SessionTTLHours: 1,
		CORSOrigins:     []string{"http://localhost:3000"},
		Database:        config.DatabaseConfig{Driver: config.DriverMemory},
	}
}

func TestOpenRepositories_Memory(t *testing.T) {
	repos, release, err := openRepositories(memoryConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer release()

	if repos.Users == nil || repos.Patients == nil || repos.Probe == nil {
		t.Errorf("expected all repositories to be set, got %+v", repos)
	}
}

func TestNewRouter_CORSPreflight(t *testing.T) {
	cfg := memoryConfig()
	repos, release, _ := openRepositories(cfg, zerolog.Nop())
	defer release()
	router := newRouter(cfg, repos, zerolog.Nop())

	req := httptest.NewRequest(http.MethodOptions, "/login", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin, got %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("expected credentials to be allowed, got %q", got)
	}
}

func TestNewRouter_ServesProbe(t *testing.T) {
	cfg := memoryConfig()
	repos, release, _ := openRepositories(cfg, zerolog.Nop())
	defer release()
	router := newRouter(cfg, repos, zerolog.Nop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "My database is Connected" {
		t.Errorf("unexpected probe response %d %q", rec.Code, rec.Body.String())
	}
}
