package attr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/planguard/planguard/pkg/tfplan"
)

// MaxPathDepth caps the number of segments Evaluate will walk. Paths
// come from check configuration, which may be attacker-influenced in
// hosted setups, so the walk is an explicit loop with a hard bound.
const MaxPathDepth = 32

var indexPattern = regexp.MustCompile(`^[0-9]+$`)

// Evaluate resolves a dot-delimited attribute path against root and
// returns the resolved value, nil when the final container exists but
// lacks the key, or Absent when the path is structurally invalid for
// the data.
//
// Segments matching ^[0-9]+$ index into sequences; all other segments
// key into mappings. A *tfplan.ResourceChange (or value) root is
// resolved against its post-change attributes, so callers may pass
// either a resource record or an already-unwrapped attribute tree.
//
// Evaluate is pure: it never mutates root and never fails.
func Evaluate(root any, path string) any {
	current := unwrapRoot(root)
	if path == "" {
		return current
	}

	segments := strings.Split(path, ".")
	if len(segments) > MaxPathDepth {
		return Absent
	}

	for i, seg := range segments {
		if indexPattern.MatchString(seg) {
			if Classify(current) != KindSequence {
				return Absent
			}
			seq := current.([]any)
			idx, err := strconv.Atoi(seg)
			if err != nil || idx >= len(seq) {
				return Absent
			}
			current = seq[idx]
			continue
		}

		if Classify(current) != KindMapping {
			return Absent
		}
		val, ok := current.(map[string]any)[seg]
		if !ok {
			// Container exists but the key does not. On the final
			// segment this is a Null finding rather than Absent; any
			// further segment falls through the mapping check above.
			if i < len(segments)-1 {
				return Absent
			}
			return nil
		}
		current = val
	}

	return current
}

// unwrapRoot maps a resource-record root onto its post-change attribute
// tree. The union of accepted roots is explicit: typed resource changes
// unwrap, everything else is treated as a raw attribute value.
func unwrapRoot(root any) any {
	switch r := root.(type) {
	case *tfplan.ResourceChange:
		if r == nil {
			return nil
		}
		return r.Change.After
	case tfplan.ResourceChange:
		return r.Change.After
	default:
		return root
	}
}
