// internal/match/registry.go
//
// WorkerPoolRegistry: owns the candidate pool set for one CLI run, caches
// each pool's node list, and drives report evaluation across candidates.

package match

import (
	"context"
	"fmt"

	"github.com/kingrea/gridctl/internal/platform"
)

// CandidateSource supplies the worker pools to compare against. Two
// implementations exist: explicit identifiers resolved directly, and the
// interactive picker over the full pool listing.
type CandidateSource interface {
	Candidates(ctx context.Context) ([]platform.WorkerPool, error)
}

// NodeLister is the slice of the platform client the registry needs.
// platform.Client satisfies it.
type NodeLister interface {
	ListNodes(ctx context.Context, poolID string) ([]platform.Node, error)
}

// PoolResolver resolves explicit worker-pool identifiers.
type PoolResolver interface {
	GetWorkerPool(ctx context.Context, id string) (platform.WorkerPool, error)
}

// ExplicitSource resolves a caller-supplied identifier list, in order.
type ExplicitSource struct {
	IDs    []string
	Client PoolResolver
}

func (s *ExplicitSource) Candidates(ctx context.Context) ([]platform.WorkerPool, error) {
	pools := make([]platform.WorkerPool, 0, len(s.IDs))
	for _, id := range s.IDs {
		pool, err := s.Client.GetWorkerPool(ctx, id)
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

// Registry holds the candidate set and the per-pool node cache for the life
// of the process. Evaluation is sequential and read-only, so a plain map is
// enough.
type Registry struct {
	source    CandidateSource
	nodes     NodeLister
	log       WarnLogger
	pools     []platform.WorkerPool
	nodeCache map[string][]platform.Node
}

// NewRegistry wires a registry to its candidate source and node lister.
func NewRegistry(source CandidateSource, nodes NodeLister, log WarnLogger) *Registry {
	return &Registry{
		source:    source,
		nodes:     nodes,
		log:       log,
		nodeCache: map[string][]platform.Node{},
	}
}

// Populate establishes the candidate set. It is idempotent: once a non-empty
// set exists it is reused for every later task group in the run. An empty
// selection is an error and the caller must not proceed to Check.
func (r *Registry) Populate(ctx context.Context) error {
	if len(r.pools) > 0 {
		return nil
	}
	pools, err := r.source.Candidates(ctx)
	if err != nil {
		return err
	}
	if len(pools) == 0 {
		return fmt.Errorf("match: no worker pools selected")
	}
	r.pools = pools
	return nil
}

// Pools returns the established candidate set, in order.
func (r *Registry) Pools() []platform.WorkerPool {
	return r.pools
}

// FetchNodes returns the pool's node list, hitting the platform only on the
// first request for each identifier. A fetch failure is not cached.
func (r *Registry) FetchNodes(ctx context.Context, poolID string) ([]platform.Node, error) {
	if nodes, ok := r.nodeCache[poolID]; ok {
		return nodes, nil
	}
	nodes, err := r.nodes.ListNodes(ctx, poolID)
	if err != nil {
		return nil, err
	}
	r.nodeCache[poolID] = nodes
	return nodes, nil
}

// Check evaluates one task-group requirement against every candidate pool
// and returns the reports in candidate order. A node-fetch failure aborts
// the whole evaluation.
func (r *Registry) Check(ctx context.Context, req Requirement) ([]*Report, error) {
	if len(r.pools) == 0 {
		return nil, fmt.Errorf("match: registry is not populated")
	}
	reports := make([]*Report, 0, len(r.pools))
	for _, pool := range r.pools {
		nodes, err := r.FetchNodes(ctx, pool.ID)
		if err != nil {
			return nil, fmt.Errorf("match: fetch nodes for pool %s: %w", pool.ID, err)
		}
		reports = append(reports, Evaluate(req, pool, nodes, r.log))
	}
	return reports, nil
}
