package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultK8sTimeout = 5 * time.Second
	defaultSSHTimeout = 10 * time.Second
)

// Config holds every setting read from the gimme configuration file. It is
// built once at startup and handed to the command handlers; nothing mutates
// it afterwards.
type Config struct {
	InventoryDir       string
	InventoryRecursive bool
	K8sTimeout         time.Duration
	SSHUser            string
	SSHTimeout         time.Duration
	DCIMURL            string
	DCIMToken          string
}

type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// DefaultPath returns the fixed configuration file location,
// ~/.config/gimme/gimme.conf.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "gimme", "gimme.conf")
}

// Load reads a KEY=value configuration file. When explicit is false (the
// default path is being probed) a missing file yields an all-defaults
// Config; a path the user asked for must exist.
func Load(path string, explicit bool) (*Config, error) {
	cfg := &Config{
		K8sTimeout: defaultK8sTimeout,
		SSHTimeout: defaultSSHTimeout,
	}

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, &Error{Path: path, Err: err}
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	cfg.InventoryDir = values["GIMME_INVENTORY_DIR"]
	cfg.SSHUser = values["GIMME_SSH_USER"]
	cfg.DCIMURL = values["GIMME_DCIM_URL"]
	cfg.DCIMToken = values["GIMME_DCIM_TOKEN"]

	if raw := values["GIMME_INVENTORY_RECURSIVE"]; raw != "" {
		recursive, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &Error{Path: path, Err: fmt.Errorf("GIMME_INVENTORY_RECURSIVE: %w", err)}
		}
		cfg.InventoryRecursive = recursive
	}
	if err := parseTimeout(values, "GIMME_K8S_TIMEOUT", path, &cfg.K8sTimeout); err != nil {
		return nil, err
	}
	if err := parseTimeout(values, "GIMME_SSH_TIMEOUT", path, &cfg.SSHTimeout); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseTimeout(values map[string]string, key, path string, out *time.Duration) error {
	raw := values[key]
	if raw == "" {
		return nil
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return &Error{Path: path, Err: fmt.Errorf("%s: %w", key, err)}
	}
	if parsed <= 0 {
		return &Error{Path: path, Err: fmt.Errorf("%s must be positive", key)}
	}
	*out = parsed
	return nil
}

// DCIMEnabled reports whether the optional DCIM integration is configured.
// Both the endpoint URL and the API token are required.
func (c *Config) DCIMEnabled() bool {
	return c.DCIMURL != "" && c.DCIMToken != ""
}
