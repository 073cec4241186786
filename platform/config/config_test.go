package config

import (
	"testing"
	"time"
)

func TestLoadDefaultsToLogProvider(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "log")
	t.Setenv("CORS_ORIGINS", "https://example.com, https://www.example.com")
	t.Setenv("CONTACT_FOLLOWUP_DELAY", "48h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if cfg.GetEmailProvider() != EmailProviderLog {
		t.Fatalf("expected log provider, got %q", cfg.GetEmailProvider())
	}
	if len(cfg.GetCORSOrigins()) != 2 || cfg.GetCORSOrigins()[1] != "https://www.example.com" {
		t.Fatalf("unexpected CORS origins: %v", cfg.GetCORSOrigins())
	}
	if cfg.GetContactFollowUpDelay() != 48*time.Hour {
		t.Fatalf("expected 48h follow-up delay, got %s", cfg.GetContactFollowUpDelay())
	}
}

func TestLoadRejectsIncompleteProviders(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"brevo without key", map[string]string{"EMAIL_PROVIDER": "brevo", "BREVO_API_KEY": ""}},
		{"smtp without host", map[string]string{"EMAIL_PROVIDER": "smtp", "SMTP_HOST": ""}},
		{"brevo without notify address", map[string]string{
			"EMAIL_PROVIDER":         "brevo",
			"BREVO_API_KEY":          "key",
			"EMAIL_FROM_ADDRESS":     "hello@example.com",
			"CONTACT_NOTIFY_ADDRESS": "",
		}},
		{"unknown provider", map[string]string{"EMAIL_PROVIDER": "carrier-pigeon"}},
		{"malformed trusted proxy", map[string]string{
			"EMAIL_PROVIDER":  "log",
			"TRUSTED_PROXIES": "10.0.0.0/8, not-an-ip",
		}},
		{"cors wildcard with credentials", map[string]string{
			"EMAIL_PROVIDER":         "log",
			"CORS_ORIGINS":           "*",
			"CORS_ALLOW_CREDENTIALS": "true",
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s", tc.name)
			}
		})
	}
}

func TestLoadTrustedProxies(t *testing.T) {
	t.Setenv("EMAIL_PROVIDER", "log")

	t.Setenv("TRUSTED_PROXIES", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	if len(cfg.GetTrustedProxies()) != 0 {
		t.Fatalf("expected no trusted proxies by default, got %v", cfg.GetTrustedProxies())
	}

	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 192.0.2.10 ,::1")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("expected config to load, got %v", err)
	}
	want := []string{"10.0.0.0/8", "192.0.2.10", "::1"}
	got := cfg.GetTrustedProxies()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
