// Package review implements the answer-extraction and scoring engine for
// submitted activities. It turns a stored activity configuration (the answer
// key) and a raw, loosely-structured submission payload into a typed per-item
// review. All functions here are pure: they never write to storage, never
// throw, and treat broken submissions as "unanswered", not as errors.
package review

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// toIndex converts a raw answer value into an option index. Numbers are
// accepted directly (but never silently truncated), numeric strings are
// parsed base-10. Anything else is not an index.
func toIndex(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

// toStringList converts a raw answer value into a word list. Real arrays are
// taken as-is; strings are accepted when they hold a JSON-encoded array
// (legacy clients stringify before submitting).
func toStringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []any:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = toAnswerString(e)
		}
		return out, true
	case string:
		var raw []any
		if err := json.Unmarshal([]byte(t), &raw); err != nil {
			return nil, false
		}
		out := make([]string, len(raw))
		for i, e := range raw {
			out[i] = toAnswerString(e)
		}
		return out, true
	}
	return nil, false
}

// toAnswerString returns the value as a string, or "" for any non-string
// shape. The empty sentinel (rather than a failure flag) is deliberate: every
// string comparison rule treats "" as simply not correct. Trimming is left to
// the individual comparison rules.
func toAnswerString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// textMatches is the shared trimmed, case-insensitive comparison used by the
// short-answer style rules.
func textMatches(submitted, correct string) bool {
	submitted = strings.TrimSpace(submitted)
	if submitted == "" {
		return false
	}
	return strings.EqualFold(submitted, strings.TrimSpace(correct))
}
