package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingrea/gridctl/internal/platform"
)

type warnRecorder struct {
	messages []string
}

func (w *warnRecorder) Warn(format string, args ...any) {
	w.messages = append(w.messages, fmt.Sprintf(format, args...))
}

func reportWith(log WarnLogger, results ...MatchType) *Report {
	props := make([]PropertyMatch, len(results))
	for i, r := range results {
		props[i] = PropertyMatch{Property: fmt.Sprintf("dim-%d", i), Result: r}
	}
	return &Report{Pool: platform.WorkerPool{ID: "wp-1", Name: "pool"}, Properties: props, log: log}
}

func TestSummaryPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		results []MatchType
		want    MatchType
	}{
		{"all yes", []MatchType{Yes, Yes, Yes, Yes, Yes, Yes, Yes, Yes}, Yes},
		{"single no dominates", []MatchType{Yes, Yes, Yes, Yes, Yes, Yes, Yes, No}, No},
		{"no beats partial and maybe", []MatchType{Partial, Maybe, No, Yes, Yes, Yes, Yes, Yes}, No},
		{"yes and partial", []MatchType{Yes, Partial, Yes, Yes, Yes, Yes, Yes, Yes}, Partial},
		{"all partial", []MatchType{Partial, Partial, Partial, Partial, Partial, Partial, Partial, Partial}, Partial},
		{"yes and maybe", []MatchType{Yes, Yes, Yes, Yes, Yes, Yes, Maybe, Yes}, Maybe},
		{"all maybe", []MatchType{Maybe, Maybe, Maybe, Maybe, Maybe, Maybe, Maybe, Maybe}, Maybe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := reportWith(nil, tt.results...)
			assert.Equal(t, tt.want, r.Summary())
		})
	}
}

// A tuple mixing PARTIAL and MAYBE matches none of the aggregation rules.
// It must come back NO, and it must warn so operators can tell it apart
// from a genuine incompatibility.
func TestSummaryFallbackWarnsAndReturnsNo(t *testing.T) {
	log := &warnRecorder{}
	r := reportWith(log, Yes, Yes, Yes, Yes, Yes, Yes, Partial, Maybe)
	require.Equal(t, No, r.Summary())
	require.Len(t, log.messages, 1)
	assert.Contains(t, log.messages[0], "unclassifiable")
	assert.Contains(t, log.messages[0], "wp-1")
}

func TestSummaryIsMemoized(t *testing.T) {
	log := &warnRecorder{}
	r := reportWith(log, Partial, Maybe, Yes, Yes, Yes, Yes, Yes, Yes)
	first := r.Summary()
	second := r.Summary()
	assert.Equal(t, first, second)
	// The fallback warning fires once, not per call.
	assert.Len(t, log.messages, 1)
}

func TestEvaluatePropertyOrder(t *testing.T) {
	r := Evaluate(Requirement{}, platform.WorkerPool{ID: "wp-1"}, nil, nil)
	require.Len(t, r.Properties, PropertyCount)
	order := make([]string, len(r.Properties))
	for i, pm := range r.Properties {
		order[i] = pm.Property
	}
	assert.Equal(t, []string{
		PropWorkerTag, PropNamespace, PropInstanceType, PropProvider,
		PropRegion, PropRAM, PropTaskType, PropVCPU,
	}, order)
}

// Fully unconstrained requirement against an empty pool: every dimension is
// YES except task type, whose lone MAYBE drags the overall result to MAYBE.
func TestEvaluateEmptyPoolUnconstrained(t *testing.T) {
	r := Evaluate(Requirement{}, platform.WorkerPool{ID: "wp-1"}, nil, nil)
	for _, pm := range r.Properties {
		if pm.Property == PropTaskType {
			assert.Equal(t, Maybe, pm.Result)
			continue
		}
		assert.Equal(t, Yes, pm.Result, pm.Property)
	}
	assert.Equal(t, Maybe, r.Summary())
}
