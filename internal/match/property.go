package match

import (
	"sort"
	"strconv"
	"strings"

	"github.com/kingrea/gridctl/internal/platform"
)

// Display placeholders used in report tables.
const (
	// displayNone marks an unconstrained requirement or a pool-side value
	// known to be empty.
	displayNone = "NONE"
	// displayUnknown marks pool-side values that cannot be read yet because
	// no nodes have registered.
	displayUnknown = "NOT YET KNOWN"
)

// PropertyMatch is one dimension's classification plus the two operands as
// the report tables print them.
type PropertyMatch struct {
	Property string
	Required string
	Offered  string
	Result   MatchType
}

func formatSet(values []string) string {
	var kept []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return displayNone
	}
	return strings.Join(kept, ", ")
}

func formatRange(r *platform.Range) string {
	if r == nil {
		return displayNone
	}
	return formatNumber(r.Min) + "-" + formatNumber(r.Max)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// offeredValues renders the distinct node-side string values of one
// dimension, or the unknown placeholder when the pool has no nodes.
func offeredValues(nodes []platform.Node, value func(platform.Node) string) string {
	if len(nodes) == 0 {
		return displayUnknown
	}
	seen := map[string]struct{}{}
	var distinct []string
	for _, n := range nodes {
		v := strings.TrimSpace(value(n))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Strings(distinct)
	return formatSet(distinct)
}

// offeredNumbers is offeredValues for the numeric dimensions.
func offeredNumbers(nodes []platform.Node, value func(platform.Node) float64) string {
	if len(nodes) == 0 {
		return displayUnknown
	}
	seen := map[float64]struct{}{}
	var distinct []float64
	for _, n := range nodes {
		v := value(n)
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		distinct = append(distinct, v)
	}
	sort.Float64s(distinct)
	parts := make([]string, len(distinct))
	for i, v := range distinct {
		parts[i] = formatNumber(v)
	}
	return strings.Join(parts, ", ")
}
