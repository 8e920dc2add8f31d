// internal/match/matchtype.go
//
// The four-valued compatibility classification shared by every dimension
// matcher and by the per-pool summary.

package match

// MatchType classifies compatibility along one dimension or overall.
type MatchType int

const (
	// Yes: the pool definitely satisfies the requirement.
	Yes MatchType = iota
	// No: the pool definitely cannot satisfy the requirement.
	No
	// Maybe: undetermined, because no nodes have registered yet.
	Maybe
	// Partial: some of the pool's nodes satisfy the requirement, but not all.
	Partial
)

// String renders the classification the way the report tables print it.
func (t MatchType) String() string {
	switch t {
	case Yes:
		return "YES"
	case No:
		return "NO"
	case Maybe:
		return "MAYBE"
	case Partial:
		return "PARTIAL"
	}
	return "UNKNOWN"
}
