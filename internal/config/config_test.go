package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gimme.conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.conf"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.K8sTimeout != 5*time.Second {
		t.Fatalf("expected 5s default k8s timeout, got %s", cfg.K8sTimeout)
	}
	if cfg.DCIMEnabled() {
		t.Fatalf("expected DCIM disabled by default")
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.conf"), true)
	var cfgErr *Error
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestLoadValues(t *testing.T) {
	path := writeConf(t, `
GIMME_INVENTORY_DIR=/srv/inventory
GIMME_INVENTORY_RECURSIVE=true
GIMME_K8S_TIMEOUT=12s
GIMME_SSH_USER=ops
GIMME_DCIM_URL=https://dcim.example.com
GIMME_DCIM_TOKEN=secret
`)
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InventoryDir != "/srv/inventory" {
		t.Fatalf("unexpected inventory dir: %s", cfg.InventoryDir)
	}
	if !cfg.InventoryRecursive {
		t.Fatalf("expected recursive scanning enabled")
	}
	if cfg.K8sTimeout != 12*time.Second {
		t.Fatalf("expected 12s timeout, got %s", cfg.K8sTimeout)
	}
	if cfg.SSHUser != "ops" {
		t.Fatalf("unexpected ssh user: %s", cfg.SSHUser)
	}
	if !cfg.DCIMEnabled() {
		t.Fatalf("expected DCIM enabled with url and token")
	}
}

func TestLoadRejectsBadTimeout(t *testing.T) {
	path := writeConf(t, "GIMME_K8S_TIMEOUT=fast\n")
	if _, err := Load(path, true); err == nil {
		t.Fatalf("expected error for unparseable timeout")
	}

	path = writeConf(t, "GIMME_K8S_TIMEOUT=-3s\n")
	if _, err := Load(path, true); err == nil {
		t.Fatalf("expected error for negative timeout")
	}
}

func TestDCIMEnabledNeedsBothValues(t *testing.T) {
	path := writeConf(t, "GIMME_DCIM_URL=https://dcim.example.com\n")
	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.DCIMEnabled() {
		t.Fatalf("expected DCIM disabled without a token")
	}
}
