package converter

import (
	"strings"

	"github.com/nconklindev/exclar/internal/types"
)

var categoryKeywords = map[types.Category]string{
	types.CategoryException:     "exception",
	types.CategoryClarification: "clarification",
}

// InCategory reports whether text mentions the category keyword, ignoring case.
func InCategory(text string, c types.Category) bool {
	kw, ok := categoryKeywords[c]
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(text), kw)
}

// Classify splits texts into exceptions and clarifications, keeping their
// relative order. A text that mentions both keywords is returned in both
// lists; one that mentions neither is dropped.
func Classify(texts []string) (exceptions, clarifications []string) {
	for _, t := range texts {
		if InCategory(t, types.CategoryException) {
			exceptions = append(exceptions, t)
		}
		if InCategory(t, types.CategoryClarification) {
			clarifications = append(clarifications, t)
		}
	}
	return exceptions, clarifications
}
