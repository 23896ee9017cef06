// Package resolve ties an inventory record to its Kubernetes node. Names
// rarely line up exactly between metadata files and the cluster, so both
// sides are compared through normalized hostname variants before falling
// back to the record's ip field.
package resolve

import (
	"net"
	"strings"

	"github.com/jfox91/gimme/internal/inventory"
	"github.com/jfox91/gimme/internal/types"
)

// Node finds the cluster node backing an inventory record. Hostname match
// wins over IP match; the first node in listing order wins within a method.
func Node(record inventory.Record, nodes []types.ClusterNode) (types.ClusterNode, bool) {
	wanted := hostnameVariants(record.ID)
	for _, node := range nodes {
		if overlaps(wanted, hostnameVariants(node.Name)) {
			return node, true
		}
	}

	ip := normalizeIP(recordIP(record))
	if ip == "" {
		return types.ClusterNode{}, false
	}
	for _, node := range nodes {
		for _, addr := range append(node.InternalIPs, node.ExternalIPs...) {
			if normalizeIP(addr) == ip {
				return node, true
			}
		}
	}
	return types.ClusterNode{}, false
}

func recordIP(record inventory.Record) string {
	value, ok := record.Fields["ip"]
	if !ok {
		return ""
	}
	return inventory.Stringify(value)
}

// hostnameVariants returns the lowercase FQDN and its short form, with any
// trailing dot stripped.
func hostnameVariants(value string) []string {
	full := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(value), "."))
	if full == "" {
		return nil
	}
	variants := []string{full}
	if idx := strings.Index(full, "."); idx > 0 {
		variants = append(variants, full[:idx])
	}
	return variants
}

func overlaps(left, right []string) bool {
	for _, l := range left {
		for _, r := range right {
			if l == r {
				return true
			}
		}
	}
	return false
}

func normalizeIP(value string) string {
	ip := net.ParseIP(strings.TrimSpace(value))
	if ip == nil {
		return ""
	}
	if v4 := ip.To4(); v4 != nil {
		return v4.String()
	}
	return ip.String()
}
