package uidump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func matcherFixture() []Element {
	return []Element{
		{Index: 0, Text: "Log  in", Class: "android.widget.Button", ResourceID: "com.app:id/login", Clickable: true},
		{Index: 1, Text: "Settings", Class: "android.widget.TextView", ContentDesc: "Open settings"},
		{Index: 2, Class: "android.widget.CheckBox", ResourceID: "com.app:id/remember", Checkable: true, Clickable: true},
		{Index: 3, Text: "LOG IN", Class: "android.widget.Button", Clickable: true},
	}
}

func TestFind_EmptyCriteriaIsIdentity(t *testing.T) {
	elements := matcherFixture()
	got := Find(elements, Criteria{})
	assert.Equal(t, elements, got, "no constraint means identity filter, order preserved")
}

func TestFind_ExactText(t *testing.T) {
	elements := matcherFixture()

	got := Find(elements, Criteria{Text: strPtr("Settings")})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Index)

	// exact match is strict about whitespace by default
	assert.Empty(t, Find(elements, Criteria{Text: strPtr("Log in")}))
}

func TestFind_NormalizeWhitespace(t *testing.T) {
	elements := matcherFixture()

	got := Find(elements, Criteria{Text: strPtr("  Log in "), NormalizeWhitespace: true})
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Index)
}

func TestFind_CaseInsensitiveText(t *testing.T) {
	elements := matcherFixture()

	got := Find(elements, Criteria{Text: strPtr("log in"), CaseInsensitive: true, NormalizeWhitespace: true})
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Index)
	assert.Equal(t, 3, got[1].Index)
}

func TestFind_TextContains(t *testing.T) {
	elements := matcherFixture()

	got := Find(elements, Criteria{TextContains: strPtr("Set")})
	require.Len(t, got, 1)
	assert.Equal(t, "Settings", got[0].Text)
}

func TestFind_ContentDesc(t *testing.T) {
	elements := matcherFixture()

	assert.Len(t, Find(elements, Criteria{ContentDesc: strPtr("Open settings")}), 1)
	assert.Len(t, Find(elements, Criteria{ContentDescContains: strPtr("settings")}), 1)
	assert.Empty(t, Find(elements, Criteria{ContentDesc: strPtr("open settings")}))
}

func TestFind_ClassCaseInsensitive(t *testing.T) {
	elements := matcherFixture()

	got := Find(elements, Criteria{Class: strPtr("ANDROID.WIDGET.BUTTON"), CaseInsensitive: true})
	assert.Len(t, got, 2)

	// identifiers never get whitespace normalization
	got = Find(elements, Criteria{Class: strPtr("android.widget. Button"), CaseInsensitive: true, NormalizeWhitespace: true})
	assert.Empty(t, got)
}

func TestFind_ResourceID(t *testing.T) {
	elements := matcherFixture()

	got := Find(elements, Criteria{ResourceID: strPtr("com.app:id/login")})
	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].Index)

	got = Find(elements, Criteria{ResourceIDContains: strPtr(":id/")})
	assert.Len(t, got, 2)
}

func TestFind_BooleanFields(t *testing.T) {
	elements := matcherFixture()

	assert.Len(t, Find(elements, Criteria{Checkable: boolPtr(true)}), 1)
	assert.Len(t, Find(elements, Criteria{Clickable: boolPtr(true)}), 3)
	assert.Len(t, Find(elements, Criteria{Clickable: boolPtr(false)}), 1)
}

func TestFind_CriteriaAreANDCombined(t *testing.T) {
	elements := matcherFixture()

	got := Find(elements, Criteria{
		Class:     strPtr("android.widget.Button"),
		Clickable: boolPtr(true),
		Text:      strPtr("LOG IN"),
	})
	require.Len(t, got, 1)
	assert.Equal(t, 3, got[0].Index)
}

func TestCriteria_IsEmpty(t *testing.T) {
	assert.True(t, Criteria{}.IsEmpty())
	assert.True(t, Criteria{CaseInsensitive: true, NormalizeWhitespace: true}.IsEmpty(), "modifiers alone impose no constraint")
	assert.False(t, Criteria{Text: strPtr("")}.IsEmpty())
	assert.False(t, Criteria{Clickable: boolPtr(false)}.IsEmpty())
}
