package match

import "github.com/kingrea/gridctl/internal/platform"

// Requirement is an immutable snapshot of a task group's run specification,
// taken once when the task group is resolved. Empty sets and nil ranges mean
// the dimension is unconstrained.
type Requirement struct {
	WorkerTags    []string
	TaskTypes     []string
	InstanceTypes []string
	Providers     []string
	Regions       []string
	Namespaces    []string
	RAM           *platform.Range
	VCPUs         *platform.Range
}

// NewRequirement copies the run specification so later mutation of the
// fetched task group cannot leak into cached reports.
func NewRequirement(spec platform.RunSpec) Requirement {
	return Requirement{
		WorkerTags:    copyStrings(spec.WorkerTags),
		TaskTypes:     copyStrings(spec.TaskTypes),
		InstanceTypes: copyStrings(spec.InstanceTypes),
		Providers:     copyStrings(spec.Providers),
		Regions:       copyStrings(spec.Regions),
		Namespaces:    copyStrings(spec.Namespaces),
		RAM:           copyRange(spec.RAM),
		VCPUs:         copyRange(spec.VCPUs),
	}
}

func copyStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

func copyRange(r *platform.Range) *platform.Range {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}
