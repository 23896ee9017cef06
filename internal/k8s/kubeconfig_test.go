package k8s

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

const sampleConfigTemplate = `apiVersion: v1
kind: Config
clusters:
- cluster:
    server: https://example.com
  name: test
contexts:
- context:
    cluster: test
    user: test
  name: %s
current-context: %s
users:
- name: test
  user:
    token: dummy
`

func writeKubeconfig(t *testing.T, dir, name, contextName string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := fmt.Sprintf(sampleConfigTemplate, contextName, contextName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write kubeconfig: %v", err)
	}
	return path
}

func TestResolveKubeconfigFlagOverridesEnv(t *testing.T) {
	tempDir := t.TempDir()
	flagPath := writeKubeconfig(t, tempDir, "flag.yaml", "flag-context")
	envPath := writeKubeconfig(t, tempDir, "env.yaml", "env-context")

	t.Setenv("KUBECONFIG", envPath)

	_, info, err := ResolveKubeconfig(flagPath, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Source != "flag" {
		t.Fatalf("expected source flag, got %s", info.Source)
	}
	if info.Context != "flag-context" {
		t.Fatalf("expected flag context, got %s", info.Context)
	}
}

func TestResolveKubeconfigEnv(t *testing.T) {
	tempDir := t.TempDir()
	envPath := writeKubeconfig(t, tempDir, "env.yaml", "env-context")
	t.Setenv("KUBECONFIG", envPath)

	_, info, err := ResolveKubeconfig("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Source != "env" {
		t.Fatalf("expected source env, got %s", info.Source)
	}
	if info.Context != "env-context" {
		t.Fatalf("expected env context, got %s", info.Context)
	}
}

func TestResolveKubeconfigContextOverride(t *testing.T) {
	tempDir := t.TempDir()
	path := writeKubeconfig(t, tempDir, "config.yaml", "default-context")

	_, info, err := ResolveKubeconfig(path, "override-context")
	if err == nil {
		t.Fatalf("expected context error, got nil")
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Kind != ErrContextNotFound {
		t.Fatalf("expected context not found error, got %v", err)
	}
	if info.Context != "override-context" {
		t.Fatalf("expected info context to be override-context, got %s", info.Context)
	}
}

func TestResolveKubeconfigMissing(t *testing.T) {
	t.Setenv("KUBECONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, _, err := ResolveKubeconfig("", "")
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || cfgErr.Kind != ErrKubeconfigNotFound {
		t.Fatalf("expected kubeconfig not found, got %v", err)
	}
}
