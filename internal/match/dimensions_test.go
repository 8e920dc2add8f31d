package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/gridctl/internal/platform"
)

func node(instanceType, provider, region string, ram, vcpus float64, taskTypes ...string) platform.Node {
	return platform.Node{
		InstanceType:       instanceType,
		Provider:           provider,
		Region:             region,
		RAMGiB:             ram,
		VCPUs:              vcpus,
		SupportedTaskTypes: taskTypes,
	}
}

func rng(min, max float64) *platform.Range {
	return &platform.Range{Min: min, Max: max}
}

func TestWorkerTagDimension(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		pool platform.WorkerPool
		want MatchType
	}{
		{"unconstrained", nil, platform.WorkerPool{WorkerTag: "gpu"}, Yes},
		{"unconstrained untagged pool", nil, platform.WorkerPool{}, Yes},
		{"tag in set", []string{"gpu", "large"}, platform.WorkerPool{WorkerTag: "gpu"}, Yes},
		{"tag not in set", []string{"gpu"}, platform.WorkerPool{WorkerTag: "small"}, No},
		{"constrained untagged pool", []string{"gpu"}, platform.WorkerPool{}, No},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := matchWorkerTag(Requirement{WorkerTags: tt.tags}, tt.pool)
			assert.Equal(t, tt.want, pm.Result)
		})
	}
}

func TestNamespaceDimension(t *testing.T) {
	pool := platform.WorkerPool{Namespace: "prod"}
	assert.Equal(t, Yes, matchNamespace(Requirement{}, pool).Result)
	assert.Equal(t, Yes, matchNamespace(Requirement{Namespaces: []string{"prod", "dev"}}, pool).Result)
	assert.Equal(t, No, matchNamespace(Requirement{Namespaces: []string{"dev"}}, pool).Result)
}

// Pool-level dimensions never depend on nodes, so they are never MAYBE even
// for an empty pool.
func TestPoolLevelDimensionsNeverMaybe(t *testing.T) {
	pool := platform.WorkerPool{}
	for _, pm := range []PropertyMatch{
		matchWorkerTag(Requirement{WorkerTags: []string{"x"}}, pool),
		matchNamespace(Requirement{Namespaces: []string{"x"}}, pool),
	} {
		assert.NotEqual(t, Maybe, pm.Result, pm.Property)
	}
}

func TestNodeDimensionsZeroNodes(t *testing.T) {
	constrained := Requirement{
		InstanceTypes: []string{"m5.large"},
		Providers:     []string{"aws"},
		Regions:       []string{"eu-west-1"},
		RAM:           rng(4, 16),
		VCPUs:         rng(2, 8),
	}
	for _, pm := range []PropertyMatch{
		matchInstanceType(constrained, nil),
		matchProvider(constrained, nil),
		matchRegion(constrained, nil),
		matchRAM(constrained, nil),
		matchVCPU(constrained, nil),
	} {
		assert.Equal(t, Maybe, pm.Result, pm.Property)
		assert.Equal(t, displayUnknown, pm.Offered, pm.Property)
	}

	unconstrained := Requirement{}
	for _, pm := range []PropertyMatch{
		matchInstanceType(unconstrained, nil),
		matchProvider(unconstrained, nil),
		matchRegion(unconstrained, nil),
		matchRAM(unconstrained, nil),
		matchVCPU(unconstrained, nil),
	} {
		assert.Equal(t, Yes, pm.Result, pm.Property)
		assert.Equal(t, displayNone, pm.Required, pm.Property)
	}
}

// Task type is the odd one out: zero nodes is MAYBE even when nothing is
// required. This behavior is load-bearing for callers that treat MAYBE as
// "try again once nodes register", so it is pinned here.
func TestTaskTypeZeroNodesAlwaysMaybe(t *testing.T) {
	assert.Equal(t, Maybe, matchTaskTypes(Requirement{}, nil).Result)
	assert.Equal(t, Maybe, matchTaskTypes(Requirement{TaskTypes: []string{"docker"}}, nil).Result)
}

func TestNodeSetCounting(t *testing.T) {
	req := Requirement{InstanceTypes: []string{"m5.large"}}
	all := []platform.Node{node("m5.large", "aws", "eu", 8, 2), node("m5.large", "aws", "eu", 8, 2)}
	none := []platform.Node{node("m5.xlarge", "aws", "eu", 16, 4)}
	some := append(append([]platform.Node{}, all...), none...)

	assert.Equal(t, Yes, matchInstanceType(req, all).Result)
	assert.Equal(t, No, matchInstanceType(req, none).Result)
	assert.Equal(t, Partial, matchInstanceType(req, some).Result)
}

func TestInstanceTypeScenario(t *testing.T) {
	req := Requirement{InstanceTypes: []string{"m5.large"}}
	nodes := []platform.Node{
		node("m5.large", "aws", "eu-west-1", 8, 2),
		node("m5.large", "aws", "eu-west-1", 8, 2),
		node("m5.xlarge", "aws", "eu-west-1", 16, 4),
	}
	pm := matchInstanceType(req, nodes)
	assert.Equal(t, Partial, pm.Result)
	assert.Equal(t, "m5.large", pm.Required)
	assert.Equal(t, "m5.large, m5.xlarge", pm.Offered)
}

func TestRAMScenario(t *testing.T) {
	nodes := []platform.Node{
		node("", "aws", "", 2, 1),
		node("", "aws", "", 8, 2),
		node("", "aws", "", 32, 8),
	}
	pm := matchRAM(Requirement{RAM: rng(4, 16)}, nodes)
	assert.Equal(t, Partial, pm.Result)
	assert.Equal(t, "4-16", pm.Required)
	assert.Equal(t, "2, 8, 32", pm.Offered)

	pm = matchRAM(Requirement{}, nodes)
	assert.Equal(t, Yes, pm.Result)
	assert.Equal(t, displayNone, pm.Required)
}

func TestRangeBoundsAreInclusive(t *testing.T) {
	nodes := []platform.Node{node("", "aws", "", 4, 2), node("", "aws", "", 16, 2)}
	assert.Equal(t, Yes, matchRAM(Requirement{RAM: rng(4, 16)}, nodes).Result)
}

func TestTaskTypeSubsetRule(t *testing.T) {
	nodes := []platform.Node{
		node("", "aws", "", 8, 2, "docker", "bash"),
		node("", "aws", "", 8, 2, "bash"),
	}
	// A node matches only when it supports every required type.
	pm := matchTaskTypes(Requirement{TaskTypes: []string{"docker", "bash"}}, nodes)
	require.Equal(t, Partial, pm.Result)
	assert.Equal(t, "bash, docker", pm.Offered)

	// Empty requirement is trivially a subset once nodes exist.
	assert.Equal(t, Yes, matchTaskTypes(Requirement{}, nodes).Result)

	assert.Equal(t, No, matchTaskTypes(Requirement{TaskTypes: []string{"slurm"}}, nodes).Result)
}

func TestOfferedDisplayValues(t *testing.T) {
	// Known-empty pool-side values render as NONE.
	pm := matchWorkerTag(Requirement{}, platform.WorkerPool{})
	assert.Equal(t, displayNone, pm.Offered)

	// Nodes that have not reported an attribute are skipped in the display.
	nodes := []platform.Node{node("", "aws", "", 8, 2), node("m5.large", "aws", "eu", 8, 2)}
	assert.Equal(t, "m5.large", matchInstanceType(Requirement{}, nodes).Offered)
}
