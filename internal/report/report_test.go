package report

import (
	"testing"
	"time"

	"github.com/jfox91/gimme/internal/types"
)

func daysAgo(days int) time.Time {
	return time.Now().Add(-time.Duration(days) * 24 * time.Hour)
}

func TestOffline(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "a", Ready: true, Status: "Ready"},
		{Name: "b", Ready: false, Status: "NotReady"},
	}
	offline := Offline(nodes)
	if len(offline) != 1 || offline[0].Name != "b" {
		t.Fatalf("expected exactly [b], got %v", offline)
	}
}

func TestOfflineAllReady(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "a", Ready: true},
		{Name: "b", Ready: true},
	}
	if offline := Offline(nodes); len(offline) != 0 {
		t.Fatalf("expected no offline nodes, got %v", offline)
	}
}

func TestOldest(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "a", Created: daysAgo(10)},
		{Name: "b", Created: daysAgo(30)},
		{Name: "c", Created: daysAgo(5)},
	}
	oldest, ok := Oldest(nodes)
	if !ok {
		t.Fatalf("expected a result")
	}
	if oldest.Name != "b" {
		t.Fatalf("expected b, got %s", oldest.Name)
	}
}

func TestOldestEmpty(t *testing.T) {
	if _, ok := Oldest(nil); ok {
		t.Fatalf("expected no result for empty listing")
	}
}

func TestVersionMismatch(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "a", Version: "v1.31.2"},
		{Name: "b", Version: "v1.31.2"},
		{Name: "c", Version: "v1.30.5"},
		{Name: "d", Version: "v1.31.2"},
	}
	majority, outliers := VersionMismatch(nodes)
	if majority != "v1.31.2" {
		t.Fatalf("expected majority v1.31.2, got %s", majority)
	}
	if len(outliers) != 1 || outliers[0].Name != "c" {
		t.Fatalf("expected [c], got %v", outliers)
	}
}

func TestVersionMismatchTieBreaksLexically(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "a", Version: "v1.31.2"},
		{Name: "b", Version: "v1.30.5"},
	}
	majority, outliers := VersionMismatch(nodes)
	if majority != "v1.30.5" {
		t.Fatalf("expected lexically smallest version on tie, got %s", majority)
	}
	if len(outliers) != 1 || outliers[0].Name != "a" {
		t.Fatalf("expected [a], got %v", outliers)
	}
}

func TestVersionMismatchUniform(t *testing.T) {
	nodes := []types.ClusterNode{
		{Name: "a", Version: "v1.31.2"},
		{Name: "b", Version: "v1.31.2"},
	}
	majority, outliers := VersionMismatch(nodes)
	if majority != "v1.31.2" || len(outliers) != 0 {
		t.Fatalf("expected uniform cluster to report no outliers, got %s %v", majority, outliers)
	}
}
