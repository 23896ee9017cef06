// Package dcim is the optional client for the data center infrastructure
// management API. It only comes alive when both the endpoint URL and the
// API token are configured; responses are never cached and requests are
// never retried.
package dcim

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const requestTimeout = 20 * time.Second

// ErrDisabled is returned when the DCIM integration is not configured.
var ErrDisabled = errors.New("dcim integration is not configured (set GIMME_DCIM_URL and GIMME_DCIM_TOKEN)")

type APIError struct {
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode == http.StatusUnauthorized {
		return "dcim authentication failed (status 401)"
	}
	if e.StatusCode == http.StatusForbidden {
		return "dcim authorization failed (status 403)"
	}
	if e.StatusCode >= 400 {
		return fmt.Sprintf("dcim API error (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("dcim API error: %v", e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("device %q not found in dcim", e.Name)
}

// Device is the slice of DCIM device data gimme surfaces.
type Device struct {
	Name     string `json:"name" yaml:"name"`
	Status   string `json:"status" yaml:"status"`
	Rack     string `json:"rack,omitempty" yaml:"rack,omitempty"`
	Position string `json:"position,omitempty" yaml:"position,omitempty"`
	Comments string `json:"comments,omitempty" yaml:"comments,omitempty"`
}

type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
}

// NewClient builds a DCIM client, or ErrDisabled when either credential is
// missing.
func NewClient(rawURL, token string) (*Client, error) {
	if rawURL == "" || token == "" {
		return nil, ErrDisabled
	}
	parsed, err := url.Parse(strings.TrimRight(rawURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid dcim URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid dcim URL: %s", rawURL)
	}
	return &Client{
		baseURL:    parsed,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}, nil
}

// Device fetches the DCIM record for one device by name.
func (c *Client) Device(ctx context.Context, name string) (Device, error) {
	target := *c.baseURL
	target.Path = strings.TrimSuffix(target.Path, "/") + "/api/dcim/devices/"
	query := target.Query()
	query.Set("name", name)
	target.RawQuery = query.Encode()

	var payload listResponse
	if err := c.getJSON(ctx, &target, &payload); err != nil {
		return Device{}, err
	}
	if len(payload.Results) == 0 {
		return Device{}, &NotFoundError{Name: name}
	}
	return payload.Results[0].device(), nil
}

// DeviceStatus returns the operational status recorded for the device.
func (c *Client) DeviceStatus(ctx context.Context, name string) (string, error) {
	device, err := c.Device(ctx, name)
	if err != nil {
		return "", err
	}
	return device.Status, nil
}

// RackLocation returns "rack / position" for the device, or just the rack
// when no position is recorded.
func (c *Client) RackLocation(ctx context.Context, name string) (string, error) {
	device, err := c.Device(ctx, name)
	if err != nil {
		return "", err
	}
	if device.Rack == "" {
		return "", fmt.Errorf("device %q has no rack assigned", name)
	}
	if device.Position == "" {
		return device.Rack, nil
	}
	return fmt.Sprintf("%s / U%s", device.Rack, device.Position), nil
}

// Notes returns the free-text comments recorded for the device.
func (c *Client) Notes(ctx context.Context, name string) (string, error) {
	device, err := c.Device(ctx, name)
	if err != nil {
		return "", err
	}
	return device.Comments, nil
}

type listResponse struct {
	Count   int             `json:"count"`
	Results []devicePayload `json:"results"`
}

type devicePayload struct {
	Name   string `json:"name"`
	Status struct {
		Value string `json:"value"`
		Label string `json:"label"`
	} `json:"status"`
	Rack struct {
		Name string `json:"name"`
	} `json:"rack"`
	Position json.Number `json:"position"`
	Comments string      `json:"comments"`
}

func (p devicePayload) device() Device {
	status := p.Status.Label
	if status == "" {
		status = p.Status.Value
	}
	return Device{
		Name:     p.Name,
		Status:   status,
		Rack:     p.Rack.Name,
		Position: p.Position.String(),
		Comments: p.Comments,
	}
}

func (c *Client) getJSON(ctx context.Context, target *url.URL, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "gimme/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, Err: err}
	}
	return nil
}
