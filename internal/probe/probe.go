// Package probe collects hardware facts from a node over ssh. One ssh
// invocation per node, no retry; authentication is whatever the operator's
// ssh setup provides (BatchMode forbids prompts).
package probe

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Info is the parsed hardware-info mapping.
type Info map[string]string

// hardwareScript emits one key=value line per fact so the output parses
// without guessing at tool formatting.
const hardwareScript = `echo "hostname=$(hostname -f 2>/dev/null || hostname)"
echo "kernel=$(uname -r)"
echo "cpu_count=$(nproc 2>/dev/null)"
echo "cpu_model=$(sed -n 's/^model name[^:]*: //p' /proc/cpuinfo | head -n1)"
echo "memory=$(sed -n 's/^MemTotal: *//p' /proc/meminfo)"
echo "disk_root=$(df -h / 2>/dev/null | awk 'NR==2 {print $2}')"`

type ConnectionError struct {
	Target string
	Err    error
	Detail string
}

func (e *ConnectionError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("cannot probe %s: %s", e.Target, e.Detail)
	}
	return fmt.Sprintf("cannot probe %s: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Run executes the hardware-info command set on target. The user, when
// non-empty, becomes the ssh login name.
func Run(ctx context.Context, target, user string, timeout time.Duration) (Info, error) {
	host := target
	if user != "" {
		host = user + "@" + target
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := []string{
		"-o", "BatchMode=yes",
		"-o", fmt.Sprintf("ConnectTimeout=%d", connectTimeoutSeconds(timeout)),
		host,
		hardwareScript,
	}
	cmd := exec.CommandContext(ctx, "ssh", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &ConnectionError{Target: target, Err: err, Detail: firstLine(stderr.String())}
	}
	return parseOutput(stdout.String()), nil
}

func connectTimeoutSeconds(timeout time.Duration) int {
	seconds := int(timeout.Seconds())
	if seconds < 1 {
		return 1
	}
	return seconds
}

// parseOutput turns key=value lines into an Info mapping. Lines without a
// separator, and keys with empty values, are dropped.
func parseOutput(raw string) Info {
	info := Info{}
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		info[key] = value
	}
	return info
}

func firstLine(raw string) string {
	raw = strings.TrimSpace(raw)
	if idx := strings.IndexByte(raw, '\n'); idx >= 0 {
		return strings.TrimSpace(raw[:idx])
	}
	return raw
}
