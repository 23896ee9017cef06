package dcim

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(server.URL, "test-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return client
}

func TestNewClientDisabledWithoutCredentials(t *testing.T) {
	if _, err := NewClient("", "token"); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled without URL, got %v", err)
	}
	if _, err := NewClient("https://dcim.example.com", ""); !errors.Is(err, ErrDisabled) {
		t.Fatalf("expected ErrDisabled without token, got %v", err)
	}
}

func TestDeviceLookup(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/dcim/devices/" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("name"); got != "worker-1" {
			t.Fatalf("unexpected name query: %s", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Fatalf("unexpected authorization header: %s", got)
		}
		fmt.Fprint(w, `{"count": 1, "results": [{
			"name": "worker-1",
			"status": {"value": "active", "label": "Active"},
			"rack": {"name": "R12"},
			"position": 7,
			"comments": "PSU replaced 2025-06-01"
		}]}`)
	})

	device, err := client.Device(context.Background(), "worker-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if device.Status != "Active" {
		t.Fatalf("unexpected status: %s", device.Status)
	}

	location, err := client.RackLocation(context.Background(), "worker-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location != "R12 / U7" {
		t.Fatalf("unexpected rack location: %s", location)
	}

	notes, err := client.Notes(context.Background(), "worker-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if notes != "PSU replaced 2025-06-01" {
		t.Fatalf("unexpected notes: %s", notes)
	}
}

func TestDeviceNotFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 0, "results": []}`)
	})

	_, err := client.Device(context.Background(), "ghost")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestDeviceUpstreamStatusSurfaced(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.DeviceStatus(context.Background(), "worker-1")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected upstream status 401, got %d", apiErr.StatusCode)
	}
}

func TestRackLocationWithoutPosition(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"count": 1, "results": [{
			"name": "worker-1",
			"status": {"value": "active", "label": "Active"},
			"rack": {"name": "R3"}
		}]}`)
	})

	location, err := client.RackLocation(context.Background(), "worker-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if location != "R3" {
		t.Fatalf("expected bare rack name, got %s", location)
	}
}
