package review

import "github.com/alperyazir/dream-lms-sub000/internal/models"

// SupportedActivityTypes is the single source of truth for which activity
// types have a detailed-review parser, in registry order.
var SupportedActivityTypes = models.ActivityTypes()

// SupportsDetailedReview reports whether a per-item review is available for
// submissions of the given activity type. Calling UIs use this to decide
// between the detailed review screen and the plain score fallback.
func SupportsDetailedReview(tag string) bool {
	for _, t := range SupportedActivityTypes {
		if string(t) == tag {
			return true
		}
	}
	return false
}
