// internal/match/dimensions.go
//
// One matcher per requirement dimension. Worker tag and namespace are
// pool-level facts and never come back MAYBE; the other six inspect the
// pool's node list.

package match

import (
	"sort"
	"strings"

	"github.com/kingrea/gridctl/internal/platform"
)

// Property names in fixed report order.
const (
	PropWorkerTag    = "Worker Tag"
	PropNamespace    = "Namespace"
	PropInstanceType = "Instance Type"
	PropProvider     = "Provider"
	PropRegion       = "Region"
	PropRAM          = "RAM (GiB)"
	PropTaskType     = "Task Type"
	PropVCPU         = "vCPUs"
)

// classify maps a matching-node count onto the four-valued result. Callers
// guarantee total > 0.
func classify(matching, total int) MatchType {
	switch {
	case matching == 0:
		return No
	case matching == total:
		return Yes
	}
	return Partial
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func matchWorkerTag(req Requirement, pool platform.WorkerPool) PropertyMatch {
	pm := PropertyMatch{
		Property: PropWorkerTag,
		Required: formatSet(req.WorkerTags),
		Offered:  displayNone,
	}
	if strings.TrimSpace(pool.WorkerTag) != "" {
		pm.Offered = pool.WorkerTag
	}
	if len(req.WorkerTags) == 0 || contains(req.WorkerTags, pool.WorkerTag) {
		pm.Result = Yes
	} else {
		pm.Result = No
	}
	return pm
}

func matchNamespace(req Requirement, pool platform.WorkerPool) PropertyMatch {
	pm := PropertyMatch{
		Property: PropNamespace,
		Required: formatSet(req.Namespaces),
		Offered:  displayNone,
	}
	if strings.TrimSpace(pool.Namespace) != "" {
		pm.Offered = pool.Namespace
	}
	if len(req.Namespaces) == 0 || contains(req.Namespaces, pool.Namespace) {
		pm.Result = Yes
	} else {
		pm.Result = No
	}
	return pm
}

// matchNodeSet is the shared shape for the string-valued node dimensions:
// unconstrained short-circuits to YES, an empty pool is MAYBE, otherwise the
// matching-node count decides.
func matchNodeSet(property string, required []string, nodes []platform.Node, value func(platform.Node) string) PropertyMatch {
	pm := PropertyMatch{
		Property: property,
		Required: formatSet(required),
		Offered:  offeredValues(nodes, value),
	}
	if len(required) == 0 {
		pm.Result = Yes
		return pm
	}
	if len(nodes) == 0 {
		pm.Result = Maybe
		return pm
	}
	matching := 0
	for _, n := range nodes {
		if contains(required, value(n)) {
			matching++
		}
	}
	pm.Result = classify(matching, len(nodes))
	return pm
}

// matchNodeRange is matchNodeSet for the numeric dimensions, with inclusive
// range containment instead of set membership.
func matchNodeRange(property string, required *platform.Range, nodes []platform.Node, value func(platform.Node) float64) PropertyMatch {
	pm := PropertyMatch{
		Property: property,
		Required: formatRange(required),
		Offered:  offeredNumbers(nodes, value),
	}
	if required == nil {
		pm.Result = Yes
		return pm
	}
	if len(nodes) == 0 {
		pm.Result = Maybe
		return pm
	}
	matching := 0
	for _, n := range nodes {
		if required.Contains(value(n)) {
			matching++
		}
	}
	pm.Result = classify(matching, len(nodes))
	return pm
}

func matchInstanceType(req Requirement, nodes []platform.Node) PropertyMatch {
	return matchNodeSet(PropInstanceType, req.InstanceTypes, nodes, func(n platform.Node) string { return n.InstanceType })
}

func matchProvider(req Requirement, nodes []platform.Node) PropertyMatch {
	return matchNodeSet(PropProvider, req.Providers, nodes, func(n platform.Node) string { return n.Provider })
}

func matchRegion(req Requirement, nodes []platform.Node) PropertyMatch {
	return matchNodeSet(PropRegion, req.Regions, nodes, func(n platform.Node) string { return n.Region })
}

func matchRAM(req Requirement, nodes []platform.Node) PropertyMatch {
	return matchNodeRange(PropRAM, req.RAM, nodes, func(n platform.Node) float64 { return n.RAMGiB })
}

func matchVCPU(req Requirement, nodes []platform.Node) PropertyMatch {
	return matchNodeRange(PropVCPU, req.VCPUs, nodes, func(n platform.Node) float64 { return n.VCPUs })
}

// matchTaskTypes differs from the other node dimensions in two ways: a node
// matches only when it supports every required task type, and an empty pool
// is MAYBE even when the requirement is unconstrained (a pool with no nodes
// advertises no task types at all).
func matchTaskTypes(req Requirement, nodes []platform.Node) PropertyMatch {
	pm := PropertyMatch{
		Property: PropTaskType,
		Required: formatSet(req.TaskTypes),
		Offered:  offeredTaskTypes(nodes),
	}
	if len(nodes) == 0 {
		pm.Result = Maybe
		return pm
	}
	matching := 0
	for _, n := range nodes {
		if subset(req.TaskTypes, n.SupportedTaskTypes) {
			matching++
		}
	}
	pm.Result = classify(matching, len(nodes))
	return pm
}

// subset reports whether every element of required appears in supported.
// An empty required set is trivially a subset.
func subset(required, supported []string) bool {
	for _, r := range required {
		if !contains(supported, r) {
			return false
		}
	}
	return true
}

func offeredTaskTypes(nodes []platform.Node) string {
	if len(nodes) == 0 {
		return displayUnknown
	}
	seen := map[string]struct{}{}
	var distinct []string
	for _, n := range nodes {
		for _, t := range n.SupportedTaskTypes {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			distinct = append(distinct, t)
		}
	}
	sort.Strings(distinct)
	return formatSet(distinct)
}
