// internal/platform/types.go
//
// Wire types for the compute platform REST API. These mirror what the
// platform returns; the match engine derives its own requirement snapshot
// from RunSpec rather than reading these structs directly.

package platform

// Range is an inclusive numeric interval, used for RAM (GiB) and vCPU
// constraints in a run specification.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v falls inside the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// RunSpec is the set of placement constraints a task group declares for the
// compute it runs on. Empty slices and nil ranges mean "unconstrained".
type RunSpec struct {
	WorkerTags    []string `json:"workerTags,omitempty"`
	TaskTypes     []string `json:"taskTypes,omitempty"`
	InstanceTypes []string `json:"instanceTypes,omitempty"`
	Providers     []string `json:"providers,omitempty"`
	Regions       []string `json:"regions,omitempty"`
	Namespaces    []string `json:"namespaces,omitempty"`
	RAM           *Range   `json:"ram,omitempty"`
	VCPUs         *Range   `json:"vcpus,omitempty"`
}

// TaskGroup is a named subdivision of a work requirement carrying a run
// specification.
type TaskGroup struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	RunSpec RunSpec `json:"runSpecification"`
}

// WorkRequirement groups one or more task groups under a namespace.
type WorkRequirement struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Namespace  string      `json:"namespace"`
	TaskGroups []TaskGroup `json:"taskGroups"`
}

// WorkerPool identifies a provisioned pool of compute nodes. WorkerTag is
// the single tag the pool advertises; empty means the pool has none.
type WorkerPool struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Namespace string `json:"namespace"`
	WorkerTag string `json:"workerTag,omitempty"`
}

// Node is one registered compute instance inside a worker pool.
// InstanceType and Region may be empty when the provider has not reported
// them yet.
type Node struct {
	ID                 string   `json:"id"`
	InstanceType       string   `json:"instanceType,omitempty"`
	Provider           string   `json:"provider"`
	Region             string   `json:"region,omitempty"`
	RAMGiB             float64  `json:"ram"`
	VCPUs              float64  `json:"vcpus"`
	SupportedTaskTypes []string `json:"supportedTaskTypes,omitempty"`
}
