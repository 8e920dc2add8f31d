// internal/match/report.go
//
// Per-pool match report: the eight dimension results in fixed order plus a
// memoized overall classification.

package match

import "github.com/kingrea/gridctl/internal/platform"

// PropertyCount is the number of dimensions every report carries.
const PropertyCount = 8

// WarnLogger receives internal-invariant warnings. *logbook.Logbook
// satisfies it; tests capture the calls.
type WarnLogger interface {
	Warn(format string, args ...any)
}

// Report holds one (task group, worker pool) evaluation. All fields are
// fixed at construction; Summary is computed once on first call.
type Report struct {
	Pool       platform.WorkerPool
	Properties []PropertyMatch

	log        WarnLogger
	overall    MatchType
	overallSet bool
}

// Evaluate runs the eight dimension matchers against one candidate pool and
// its (possibly empty) node list. Report order: worker tag, namespace,
// instance type, provider, region, RAM, task type, vCPU.
func Evaluate(req Requirement, pool platform.WorkerPool, nodes []platform.Node, log WarnLogger) *Report {
	return &Report{
		Pool: pool,
		Properties: []PropertyMatch{
			matchWorkerTag(req, pool),
			matchNamespace(req, pool),
			matchInstanceType(req, nodes),
			matchProvider(req, nodes),
			matchRegion(req, nodes),
			matchRAM(req, nodes),
			matchTaskTypes(req, nodes),
			matchVCPU(req, nodes),
		},
		log: log,
	}
}

// Summary derives the overall classification from the eight dimension
// results. Precedence: all YES wins; any NO dominates; then all-{YES,PARTIAL}
// and all-{YES,MAYBE}. A tuple mixing PARTIAL and MAYBE falls through every
// rule and is reported as NO with a distinct warning, so operators can tell
// it apart from a genuine incompatibility.
func (r *Report) Summary() MatchType {
	if r.overallSet {
		return r.overall
	}
	r.overall = r.aggregate()
	r.overallSet = true
	return r.overall
}

func (r *Report) aggregate() MatchType {
	var yes, no, maybe, partial int
	for _, pm := range r.Properties {
		switch pm.Result {
		case Yes:
			yes++
		case No:
			no++
		case Maybe:
			maybe++
		case Partial:
			partial++
		}
	}
	total := len(r.Properties)
	switch {
	case yes == total:
		return Yes
	case no > 0:
		return No
	case yes+partial == total:
		return Partial
	case yes+maybe == total:
		return Maybe
	}
	if r.log != nil {
		r.log.Warn("match: pool %s: unclassifiable result tuple (%d YES, %d MAYBE, %d PARTIAL); reporting NO",
			r.Pool.ID, yes, maybe, partial)
	}
	return No
}
