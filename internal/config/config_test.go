package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"DATABASE_URI":        "postgres://localhost/checkout",
		"RAZORPAY_KEY_ID":     "rzp_test_key",
		"RAZORPAY_KEY_SECRET": "key-secret",
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(requiredEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":8080" {
		t.Fatalf("unexpected run address %q", cfg.RunAddress)
	}
	if cfg.ProviderAddress != "https://api.razorpay.com" {
		t.Fatalf("unexpected provider address %q", cfg.ProviderAddress)
	}
	if cfg.ProviderTimeout != 10*time.Second {
		t.Fatalf("unexpected provider timeout %s", cfg.ProviderTimeout)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadRequiresDatabaseURI(t *testing.T) {
	env := requiredEnv()
	delete(env, "DATABASE_URI")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for missing database URI")
	}
}

func TestLoadRequiresProviderKeys(t *testing.T) {
	for _, key := range []string{"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET"} {
		env := requiredEnv()
		delete(env, key)
		if _, err := load(nil, lookupFrom(env)); err == nil {
			t.Fatalf("expected error for missing %s", key)
		}
	}
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	env := requiredEnv()
	env["RUN_ADDRESS"] = ":9000"
	cfg, err := load([]string{"-a", ":7000", "-provider-timeout", "3s"}, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RunAddress != ":7000" {
		t.Fatalf("expected flag to win, got %q", cfg.RunAddress)
	}
	if cfg.ProviderTimeout != 3*time.Second {
		t.Fatalf("unexpected provider timeout %s", cfg.ProviderTimeout)
	}
}

func TestLoadRejectsInvalidTimeouts(t *testing.T) {
	if _, err := load([]string{"-provider-timeout", "soon"}, lookupFrom(requiredEnv())); err == nil {
		t.Fatal("expected error for invalid provider timeout")
	}
	if _, err := load([]string{"-shutdown-timeout", "whenever"}, lookupFrom(requiredEnv())); err == nil {
		t.Fatal("expected error for invalid shutdown timeout")
	}
}

func TestLoadReadsSecretFromFile(t *testing.T) {
	secretFile := filepath.Join(t.TempDir(), "secret")
	if err := os.WriteFile(secretFile, []byte("file-secret\n"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}

	env := requiredEnv()
	env["RAZORPAY_KEY_SECRET_FILE"] = secretFile
	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProviderKeySecret != "file-secret" {
		t.Fatalf("expected file secret to win, got %q", cfg.ProviderKeySecret)
	}
}

func TestLoadSecretFileMissing(t *testing.T) {
	env := requiredEnv()
	env["RAZORPAY_KEY_SECRET_FILE"] = filepath.Join(t.TempDir(), "absent")
	if _, err := load(nil, lookupFrom(env)); err == nil {
		t.Fatal("expected error for unreadable secret file")
	}
}

func TestLoadNonPositiveTimeoutsFallBack(t *testing.T) {
	cfg, err := load([]string{"-provider-timeout", "-5s", "-shutdown-timeout", "0s"}, lookupFrom(requiredEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProviderTimeout != defaultProviderTimeout {
		t.Fatalf("expected default provider timeout, got %s", cfg.ProviderTimeout)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout, got %s", cfg.ShutdownTimeout)
	}
}
