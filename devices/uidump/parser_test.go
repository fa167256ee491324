package uidump

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDump = `<?xml version='1.0' encoding='UTF-8' standalone='yes' ?>
<hierarchy rotation="0">
  <node index="0" text="" resource-id="" class="android.widget.FrameLayout" package="com.app" content-desc="" checkable="false" checked="false" clickable="false" enabled="true" focused="false" scrollable="false" selected="false" bounds="[0,0][1080,2400]">
    <node index="0" text="Hello &amp; World" resource-id="com.app:id/title" class="android.widget.TextView" content-desc="" checkable="false" checked="false" clickable="false" enabled="true" focused="false" scrollable="false" selected="false" bounds="[10,20][110,220]"/>
    <node index="1" text="" resource-id="com.app:id/login" class="android.widget.Button" content-desc="Log in" checkable="false" checked="false" clickable="true" enabled="true" focused="false" scrollable="false" selected="false" bounds="[100,300][500,400]"/>
  </node>
</hierarchy>`

func TestParse_SampleDump(t *testing.T) {
	elements := Parse(sampleDump)
	require.Len(t, elements, 3)

	title := elements[1]
	assert.Equal(t, "Hello & World", title.Text)
	assert.Equal(t, "com.app:id/title", title.ResourceID)
	assert.Equal(t, "android.widget.TextView", title.Class)
	assert.Equal(t, Bounds{X1: 10, Y1: 20, X2: 110, Y2: 220}, title.Bounds)
	assert.Equal(t, Point{X: 60, Y: 120}, title.Center)
	assert.False(t, title.Clickable)
	assert.True(t, title.Enabled)

	button := elements[2]
	assert.Equal(t, "Log in", button.ContentDesc)
	assert.True(t, button.Clickable)
	assert.Equal(t, Point{X: 300, Y: 350}, button.Center)
}

func TestParse_ElementCountAndPositionIndex(t *testing.T) {
	dump := ""
	for i := 0; i < 5; i++ {
		dump += fmt.Sprintf(`<node text="item %d" bounds="[0,0][10,10]"/>`, i)
	}

	elements := Parse(dump)
	require.Len(t, elements, 5)
	for i, e := range elements {
		assert.Equal(t, i, e.Index, "element %d should use its encounter position", i)
	}
}

func TestParse_MalformedBoundsFallBack(t *testing.T) {
	dump := `<node text="First" bounds="[0,0][1,1]"/><node text="Second" bounds="[x,y][z,w]"/>`

	elements := Parse(dump)
	require.Len(t, elements, 2)

	assert.Equal(t, 0, elements[0].Index)
	assert.Equal(t, Point{X: 1, Y: 1}, elements[0].Center)

	assert.Equal(t, 1, elements[1].Index)
	assert.Equal(t, Bounds{}, elements[1].Bounds)
	assert.False(t, elements[1].Bounds.Valid())
	assert.Equal(t, Point{}, elements[1].Center)
}

func TestParse_ExplicitIndexWins(t *testing.T) {
	dump := `<node index="7" text="a"/><node text="b"/><node index="bogus" text="c"/>`

	elements := Parse(dump)
	require.Len(t, elements, 3)
	assert.Equal(t, 7, elements[0].Index)
	assert.Equal(t, 1, elements[1].Index, "fallback counter tracks encounter position")
	assert.Equal(t, 2, elements[2].Index, "unparseable index falls back to position")
}

func TestParse_BooleanAttributes(t *testing.T) {
	dump := `<node clickable="true" checkable="True" scrollable="1" enabled="true" selected="false"/>`

	elements := Parse(dump)
	require.Len(t, elements, 1)
	e := elements[0]
	assert.True(t, e.Clickable)
	assert.False(t, e.Checkable, `only the literal "true" counts`)
	assert.False(t, e.Scrollable)
	assert.True(t, e.Enabled)
	assert.False(t, e.Selected)
}

func TestParse_NegativeBounds(t *testing.T) {
	dump := `<node bounds="[-10,-20][10,20]"/>`

	elements := Parse(dump)
	require.Len(t, elements, 1)
	assert.Equal(t, Bounds{X1: -10, Y1: -20, X2: 10, Y2: 20}, elements[0].Bounds)
	assert.Equal(t, Point{X: 0, Y: 0}, elements[0].Center)
	assert.True(t, elements[0].Bounds.Valid())
}

func TestParse_EmptyAndGarbageInput(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("ERROR: could not get idle state"))
	assert.Empty(t, Parse("<hierarchy rotation=\"0\"></hierarchy>"))
}

func TestBounds_CenterMidpointRule(t *testing.T) {
	tests := []struct {
		bounds Bounds
		want   Point
	}{
		{Bounds{0, 0, 100, 50}, Point{50, 25}},
		{Bounds{10, 20, 110, 220}, Point{60, 120}},
		{Bounds{0, 0, 1, 1}, Point{1, 1}},
		{Bounds{0, 0, 0, 0}, Point{0, 0}},
		{Bounds{5, 5, 10, 10}, Point{8, 8}},
	}

	for _, tt := range tests {
		if got := tt.bounds.Center(); got != tt.want {
			t.Errorf("Center(%v) = %v, want %v", tt.bounds, got, tt.want)
		}
	}
}
