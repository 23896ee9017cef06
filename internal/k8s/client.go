// Package k8s wraps the cluster API behind a small client that normalizes
// nodes into the view the reports need: readiness, kubelet version, age,
// and addresses.
package k8s

import (
	"context"
	"time"

	"github.com/jfox91/gimme/internal/types"
	v1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"
)

type Client struct {
	clientset kubernetes.Interface
	timeout   time.Duration
}

// NewClient builds a cluster client. The timeout bounds every call; it is
// taken from the configuration file (GIMME_K8S_TIMEOUT, default 5s).
func NewClient(clientConfig clientcmd.ClientConfig, timeout time.Duration) (*Client, error) {
	config, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, &ConfigError{Kind: ErrKubeconfigInvalid, Err: err}
	}
	config.Timeout = timeout
	clientset, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, &APIError{Kind: ErrUnknown, Err: err}
	}
	return &Client{clientset: clientset, timeout: timeout}, nil
}

func (c *Client) ListNodes(ctx context.Context, selector labels.Selector) ([]types.ClusterNode, error) {
	if selector == nil {
		selector = labels.Everything()
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	nodes, err := c.clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{LabelSelector: selector.String()})
	if err != nil {
		return nil, classifyAPIError(err)
	}
	return normalizeNodes(nodes.Items), nil
}

func normalizeNodes(items []v1.Node) []types.ClusterNode {
	out := make([]types.ClusterNode, 0, len(items))
	for _, node := range items {
		out = append(out, normalizeNode(node))
	}
	return out
}

func normalizeNode(node v1.Node) types.ClusterNode {
	ready, status := readyStatus(node)

	internalIPs := []string{}
	externalIPs := []string{}
	for _, addr := range node.Status.Addresses {
		switch addr.Type {
		case v1.NodeInternalIP:
			internalIPs = append(internalIPs, addr.Address)
		case v1.NodeExternalIP:
			externalIPs = append(externalIPs, addr.Address)
		}
	}

	nodeLabels := map[string]string{}
	for key, value := range node.Labels {
		nodeLabels[key] = value
	}

	return types.ClusterNode{
		Name:        node.Name,
		Ready:       ready,
		Status:      status,
		Version:     node.Status.NodeInfo.KubeletVersion,
		Created:     node.CreationTimestamp.Time,
		Labels:      nodeLabels,
		InternalIPs: internalIPs,
		ExternalIPs: externalIPs,
	}
}

func readyStatus(node v1.Node) (bool, string) {
	ready := false
	status := "Unknown"
	for _, cond := range node.Status.Conditions {
		if cond.Type != v1.NodeReady {
			continue
		}
		switch cond.Status {
		case v1.ConditionTrue:
			ready = true
			status = "Ready"
		case v1.ConditionFalse:
			status = "NotReady"
		default:
			status = "Unknown"
		}
	}
	if node.Spec.Unschedulable {
		status += ",SchedulingDisabled"
	}
	return ready, status
}
