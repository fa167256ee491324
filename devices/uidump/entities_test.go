package uidump

import "testing"

func TestDecodeEntities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no entities", "plain text", "plain text"},
		{"empty string", "", ""},
		{"amp", "&amp;", "&"},
		{"lt and gt", "&lt;tag&gt;", "<tag>"},
		{"quot", "say &quot;hi&quot;", `say "hi"`},
		{"apos", "it&apos;s", "it's"},
		{"decimal", "&#65;", "A"},
		{"hex", "&#x41;", "A"},
		{"hex lowercase digits", "&#x6a;", "j"},
		{"unknown named entity", "&unknownEntity;", ""},
		{"unknown in context", "a&nbsp;b", "ab"},
		{"malformed numeric", "&#xZZ;", ""},
		{"empty numeric", "&#;", ""},
		{"mixed", "Tom &amp; Jerry &#33;", "Tom & Jerry !"},
		{"bare ampersand untouched", "a & b", "a & b"},
		{"missing semicolon untouched", "&amp", "&amp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeEntities(tt.input); got != tt.want {
				t.Errorf("DecodeEntities(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
