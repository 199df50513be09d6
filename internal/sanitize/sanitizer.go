// Package sanitize strips HTML markup from inbound quote request fields
// before they are persisted.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// Sanitizer removes HTML markup from field values. All tags are stripped;
// for most elements the inner text survives, but anchor elements are dropped
// together with their text content so that link bait never reaches the store
// in any form.
//
// A Sanitizer is an explicitly constructed dependency: build one with
// [NewSanitizer] and pass it to the service layer instead of relying on a
// package-level instance.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer constructs a Sanitizer with the policy described above.
// The returned value is safe for concurrent use.
func NewSanitizer() *Sanitizer {
	policy := bluemonday.StrictPolicy()
	policy.SkipElementsContent("a")

	return &Sanitizer{policy: policy}
}

// Clean returns value with all HTML markup removed. Anchor tags lose their
// text content as well; other removed elements keep theirs.
func (s *Sanitizer) Clean(value string) string {
	return s.policy.Sanitize(value)
}
