package types

import "time"

// ClusterNode is a normalized view of a Kubernetes node.
type ClusterNode struct {
	Name        string            `json:"name" yaml:"name"`
	Ready       bool              `json:"ready" yaml:"ready"`
	Status      string            `json:"status" yaml:"status"`
	Version     string            `json:"version" yaml:"version"`
	Created     time.Time         `json:"created" yaml:"created"`
	Labels      map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	InternalIPs []string          `json:"internalIPs,omitempty" yaml:"internalIPs,omitempty"`
	ExternalIPs []string          `json:"externalIPs,omitempty" yaml:"externalIPs,omitempty"`
}

// Age returns how long the node has been registered with the cluster.
func (n ClusterNode) Age(now time.Time) time.Duration {
	if n.Created.IsZero() {
		return 0
	}
	age := now.Sub(n.Created)
	if age < 0 {
		return 0
	}
	return age
}
