package review

import "sort"

// UnwrapStrategy records which heuristic located the answer map inside a
// submission envelope.
type UnwrapStrategy string

const (
	StrategyActivityEntry UnwrapStrategy = "activity_entry"
	StrategyFlat          UnwrapStrategy = "flat"
	StrategyRecursive     UnwrapStrategy = "recursive"
	StrategyNone          UnwrapStrategy = "none"
)

// maxUnwrapDepth bounds the recursive fallback search. Legacy producers have
// nested the answer map up to four levels deep; five covers them all.
const maxUnwrapDepth = 5

// metadataKeys are sibling keys that never identify an item.
var metadataKeys = map[string]struct{}{
	"score":      {},
	"status":     {},
	"answers":    {},
	"time_spent": {},
	"attempts":   {},
}

// isActivityIndexKey reports whether k is a small numeric string ("0"-"9")
// used by some producers as an activity position inside the envelope.
func isActivityIndexKey(k string) bool {
	return len(k) == 1 && k[0] >= '0' && k[0] <= '9'
}

func isNumericKey(k string) bool {
	if k == "" {
		return false
	}
	for i := 0; i < len(k); i++ {
		if k[i] < '0' || k[i] > '9' {
			return false
		}
	}
	return true
}

func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// answerKeyCount counts the keys of m that could identify an item, i.e.
// everything that is neither envelope metadata nor an activity index.
func answerKeyCount(m map[string]any) int {
	n := 0
	for k := range m {
		if _, meta := metadataKeys[k]; meta {
			continue
		}
		if isActivityIndexKey(k) {
			continue
		}
		n++
	}
	return n
}

// isAnswerPrimitive reports whether v has a shape an item answer can take:
// a scalar, a word list, or a word-builder style {answer, attempts} object.
func isAnswerPrimitive(v any) bool {
	switch v.(type) {
	case string, float64, bool, int, int64, []any, []string:
		return true
	}
	return false
}

// looksLikeAnswerMap is the named predicate behind the recursive fallback:
// the node must carry at least one non-metadata key and at least one of those
// keys must hold a primitive-shaped value.
func looksLikeAnswerMap(m map[string]any) bool {
	if answerKeyCount(m) == 0 {
		return false
	}
	for k, v := range m {
		if _, meta := metadataKeys[k]; meta {
			continue
		}
		if isActivityIndexKey(k) {
			continue
		}
		if isAnswerPrimitive(v) {
			return true
		}
	}
	return false
}

// Unwrap locates the innermost item_id -> raw answer mapping inside a
// submission envelope of unknown shape. Heuristics run from most specific to
// most general:
//
//  1. a single top-level object value is treated as the activity entry
//     (models envelopes keyed by an activity index such as "0"),
//  2. within the entry, an "answers" object is preferred, and a doubly
//     nested "answers.answers" object is preferred over that,
//  3. the same steps are retried on the envelope itself for flat payloads,
//  4. finally a depth-bounded recursive search covers everything older
//     producers have ever sent.
//
// Unwrap never fails: when nothing plausible is found it returns an empty
// map, which callers must score as "everything unanswered".
func Unwrap(envelope map[string]any) (map[string]any, UnwrapStrategy) {
	if len(envelope) == 0 {
		return map[string]any{}, StrategyNone
	}

	if len(envelope) == 1 {
		for _, v := range envelope {
			if entry, ok := asObject(v); ok {
				if m, found := unwrapEntry(entry); found {
					return m, StrategyActivityEntry
				}
			}
		}
	}

	if m, found := unwrapEntry(envelope); found {
		return m, StrategyFlat
	}

	if m, found := searchAnswerMap(envelope, maxUnwrapDepth); found {
		return m, StrategyRecursive
	}

	return map[string]any{}, StrategyNone
}

// unwrapEntry applies the answers / answers.answers / direct precedence to a
// single candidate object.
func unwrapEntry(entry map[string]any) (map[string]any, bool) {
	if inner, ok := asObject(entry["answers"]); ok {
		if innermost, ok := asObject(inner["answers"]); ok && answerKeyCount(innermost) > 0 {
			return innermost, true
		}
		if answerKeyCount(inner) > 0 {
			return inner, true
		}
	}
	if answerKeyCount(entry) > 0 {
		return entry, true
	}
	return nil, false
}

// searchAnswerMap walks the envelope looking for something that passes
// looksLikeAnswerMap, descending only through "answers" keys and
// numeric-keyed children. The budget decrements per level; at zero the walk
// stops regardless of what is below.
func searchAnswerMap(node map[string]any, budget int) (map[string]any, bool) {
	if budget < 0 {
		return nil, false
	}
	if looksLikeAnswerMap(node) {
		return node, true
	}
	if inner, ok := asObject(node["answers"]); ok {
		if m, found := searchAnswerMap(inner, budget-1); found {
			return m, true
		}
	}

	// Numeric-keyed children are visited in sorted order so the result is
	// deterministic across calls.
	var numeric []string
	for k := range node {
		if isNumericKey(k) {
			numeric = append(numeric, k)
		}
	}
	sort.Strings(numeric)
	for _, k := range numeric {
		if child, ok := asObject(node[k]); ok {
			if m, found := searchAnswerMap(child, budget-1); found {
				return m, true
			}
		}
	}
	return nil, false
}

// answerFor looks up the raw submitted value for one item.
func answerFor(answers map[string]any, itemID string) (any, bool) {
	if itemID == "" {
		return nil, false
	}
	v, ok := answers[itemID]
	return v, ok
}
