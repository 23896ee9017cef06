package resolve

import (
	"testing"

	"github.com/jfox91/gimme/internal/inventory"
	"github.com/jfox91/gimme/internal/types"
)

func record(id string, fields map[string]any) inventory.Record {
	if fields == nil {
		fields = map[string]any{}
	}
	return inventory.Record{ID: id, Fields: fields}
}

func TestNodeByExactName(t *testing.T) {
	nodes := []types.ClusterNode{{Name: "worker-1"}, {Name: "worker-2"}}
	node, ok := Node(record("worker-2", nil), nodes)
	if !ok || node.Name != "worker-2" {
		t.Fatalf("expected worker-2, got %v %v", node, ok)
	}
}

func TestNodeByShortName(t *testing.T) {
	nodes := []types.ClusterNode{{Name: "worker-1.lab.example.com"}}
	node, ok := Node(record("WORKER-1", nil), nodes)
	if !ok || node.Name != "worker-1.lab.example.com" {
		t.Fatalf("expected short-name match, got %v %v", node, ok)
	}
}

func TestNodeByIPFallback(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "k8s-a", InternalIPs: []string{"10.0.0.8"}},
		{Name: "k8s-b", InternalIPs: []string{"10.0.0.9"}},
	}
	node, ok := Node(record("rack4-slot2", map[string]any{"ip": "10.0.0.9"}), nodes)
	if !ok || node.Name != "k8s-b" {
		t.Fatalf("expected IP fallback to k8s-b, got %v %v", node, ok)
	}
}

func TestNodeHostnameBeatsIP(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "other", InternalIPs: []string{"10.0.0.9"}},
		{Name: "worker-1"},
	}
	node, ok := Node(record("worker-1", map[string]any{"ip": "10.0.0.9"}), nodes)
	if !ok || node.Name != "worker-1" {
		t.Fatalf("expected hostname match to win, got %v %v", node, ok)
	}
}

func TestNodeNotFound(t *testing.T) {
	nodes := []types.ClusterNode{{Name: "worker-1"}}
	if _, ok := Node(record("worker-9", map[string]any{"ip": "not-an-ip"}), nodes); ok {
		t.Fatalf("expected no match")
	}
}
