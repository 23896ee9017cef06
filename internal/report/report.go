// Package report derives the offline, oldest, and version-mismatch views
// from a node listing. Everything here is pure post-processing; the cluster
// is never contacted.
package report

import (
	"sort"

	"github.com/jfox91/gimme/internal/types"
)

// Offline returns the nodes whose status is anything but Ready, in input
// order.
func Offline(nodes []types.ClusterNode) []types.ClusterNode {
	var out []types.ClusterNode
	for _, node := range nodes {
		if !node.Ready {
			out = append(out, node)
		}
	}
	return out
}

// Oldest returns the node with the greatest age, i.e. the earliest creation
// timestamp. The second return is false when the listing is empty. Ties go
// to the earlier node in input order.
func Oldest(nodes []types.ClusterNode) (types.ClusterNode, bool) {
	if len(nodes) == 0 {
		return types.ClusterNode{}, false
	}
	oldest := nodes[0]
	for _, node := range nodes[1:] {
		if node.Created.Before(oldest.Created) {
			oldest = node
		}
	}
	return oldest, true
}

// VersionMismatch returns the majority kubelet version and the nodes not
// running it, in input order. When several versions are equally common the
// lexically smallest wins.
func VersionMismatch(nodes []types.ClusterNode) (string, []types.ClusterNode) {
	if len(nodes) == 0 {
		return "", nil
	}

	counts := map[string]int{}
	for _, node := range nodes {
		counts[node.Version]++
	}
	versions := make([]string, 0, len(counts))
	for version := range counts {
		versions = append(versions, version)
	}
	sort.Strings(versions)

	majority := versions[0]
	for _, version := range versions[1:] {
		if counts[version] > counts[majority] {
			majority = version
		}
	}

	var outliers []types.ClusterNode
	for _, node := range nodes {
		if node.Version != majority {
			outliers = append(outliers, node)
		}
	}
	return majority, outliers
}
