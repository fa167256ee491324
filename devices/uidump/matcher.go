package uidump

import "strings"

// Criteria filters an element list. Nil fields impose no constraint; all set
// fields must match (AND). The NormalizeWhitespace and CaseInsensitive flags
// apply to every string comparison in the same criteria object: prose fields
// (text, content description) honor both, identifier fields (class, resource
// id) honor case folding only.
type Criteria struct {
	Text                *string `json:"text,omitempty"`
	TextContains        *string `json:"textContains,omitempty"`
	ContentDesc         *string `json:"contentDesc,omitempty"`
	ContentDescContains *string `json:"contentDescContains,omitempty"`
	ResourceID          *string `json:"resourceId,omitempty"`
	ResourceIDContains  *string `json:"resourceIdContains,omitempty"`
	Class               *string `json:"class,omitempty"`
	Checkable           *bool   `json:"checkable,omitempty"`
	Clickable           *bool   `json:"clickable,omitempty"`
	NormalizeWhitespace bool    `json:"normalizeWhitespace,omitempty"`
	CaseInsensitive     bool    `json:"caseInsensitive,omitempty"`
}

// IsEmpty reports whether no constraint is set. Empty criteria match every
// element.
func (c Criteria) IsEmpty() bool {
	return c.Text == nil && c.TextContains == nil &&
		c.ContentDesc == nil && c.ContentDescContains == nil &&
		c.ResourceID == nil && c.ResourceIDContains == nil &&
		c.Class == nil && c.Checkable == nil && c.Clickable == nil
}

// Find returns the subset of elements satisfying the criteria, preserving
// the original order. Zero matches is a normal result, not an error.
func Find(elements []Element, c Criteria) []Element {
	matched := make([]Element, 0, len(elements))
	for _, e := range elements {
		if c.Matches(e) {
			matched = append(matched, e)
		}
	}
	return matched
}

// Matches reports whether a single element satisfies every set field.
func (c Criteria) Matches(e Element) bool {
	if c.Text != nil && c.prose(e.Text) != c.prose(*c.Text) {
		return false
	}
	if c.TextContains != nil && !strings.Contains(c.prose(e.Text), c.prose(*c.TextContains)) {
		return false
	}
	if c.ContentDesc != nil && c.prose(e.ContentDesc) != c.prose(*c.ContentDesc) {
		return false
	}
	if c.ContentDescContains != nil && !strings.Contains(c.prose(e.ContentDesc), c.prose(*c.ContentDescContains)) {
		return false
	}
	if c.ResourceID != nil && c.ident(e.ResourceID) != c.ident(*c.ResourceID) {
		return false
	}
	if c.ResourceIDContains != nil && !strings.Contains(c.ident(e.ResourceID), c.ident(*c.ResourceIDContains)) {
		return false
	}
	if c.Class != nil && c.ident(e.Class) != c.ident(*c.Class) {
		return false
	}
	if c.Checkable != nil && e.Checkable != *c.Checkable {
		return false
	}
	if c.Clickable != nil && e.Clickable != *c.Clickable {
		return false
	}
	return true
}

// prose canonicalizes free-text values before comparison.
func (c Criteria) prose(s string) string {
	if c.NormalizeWhitespace {
		s = strings.Join(strings.Fields(s), " ")
	}
	if c.CaseInsensitive {
		s = strings.ToLower(s)
	}
	return s
}

// ident canonicalizes identifier values; identifiers are not treated as
// prose, so whitespace normalization does not apply.
func (c Criteria) ident(s string) string {
	if c.CaseInsensitive {
		return strings.ToLower(s)
	}
	return s
}
