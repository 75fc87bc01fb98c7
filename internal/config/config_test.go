package config

import "testing"

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "DATABASE_URL", "SMTP_HOST", "SMTP_PORT",
		"EMAIL_USER", "EMAIL_PASSWORD", "EMAIL_FROM_NAME", "NOTIFICATION_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "" {
		t.Errorf("expected empty DatabaseURL, got %q", cfg.DatabaseURL)
	}
	if cfg.Email.SMTPHost != "smtp.gmail.com" {
		t.Errorf("expected default SMTP host, got %q", cfg.Email.SMTPHost)
	}
	if cfg.Email.SMTPPort != 587 {
		t.Errorf("expected default SMTP port 587, got %d", cfg.Email.SMTPPort)
	}
	if cfg.Email.FromName != "HS21 Digital" {
		t.Errorf("expected default from name, got %q", cfg.Email.FromName)
	}
	if cfg.Email.NotifyTo != "hello@hs21digital.com" {
		t.Errorf("expected default notification address, got %q", cfg.Email.NotifyTo)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("DATABASE_URL", "postgres://localhost/hs21")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("EMAIL_USER", "bot@hs21digital.com")
	t.Setenv("EMAIL_PASSWORD", "secret")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/hs21" {
		t.Errorf("unexpected DatabaseURL: %q", cfg.DatabaseURL)
	}
	if cfg.Email.SMTPPort != 2525 {
		t.Errorf("expected SMTP port 2525, got %d", cfg.Email.SMTPPort)
	}
	if cfg.Email.Username != "bot@hs21digital.com" || cfg.Email.Password != "secret" {
		t.Error("expected credentials from environment")
	}
}

func TestLoad_BadPortFallsBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SMTP_PORT", "not-a-number")

	if cfg := Load(); cfg.Email.SMTPPort != 587 {
		t.Errorf("expected fallback SMTP port 587, got %d", cfg.Email.SMTPPort)
	}
}
