package uidump

import (
	"regexp"
	"strconv"
)

// The dump grammar is deliberately narrow: flat <node ...> tags with
// key="value" attribute lists, no namespaces, no CDATA. A tag scanner is
// enough; a full XML parser would only reject malformed dumps that the
// scanner happily tolerates.
var (
	nodePattern   = regexp.MustCompile(`<node\b[^>]*>`)
	attrPattern   = regexp.MustCompile(`([A-Za-z0-9_:-]+)="([^"]*)"`)
	boundsPattern = regexp.MustCompile(`\[(-?\d+),(-?\d+)\]\[(-?\d+),(-?\d+)\]`)
)

// Parse extracts the flat, ordered element list from the text of a UI
// hierarchy dump. Parsing is total: malformed attributes degrade to empty or
// zero-valued fields, never to an error.
func Parse(dump string) []Element {
	tags := nodePattern.FindAllString(dump, -1)
	elements := make([]Element, 0, len(tags))

	for i, tag := range tags {
		attrs := make(map[string]string)
		for _, kv := range attrPattern.FindAllStringSubmatch(tag, -1) {
			attrs[kv[1]] = DecodeEntities(kv[2])
		}

		bounds := parseBounds(attrs["bounds"])
		elem := Element{
			Index:       parseIndex(attrs["index"], i),
			Text:        attrs["text"],
			Class:       attrs["class"],
			ResourceID:  attrs["resource-id"],
			ContentDesc: attrs["content-desc"],
			Bounds:      bounds,
			Center:      bounds.Center(),
			Checkable:   attrs["checkable"] == "true",
			Checked:     attrs["checked"] == "true",
			Clickable:   attrs["clickable"] == "true",
			Enabled:     attrs["enabled"] == "true",
			Focused:     attrs["focused"] == "true",
			Scrollable:  attrs["scrollable"] == "true",
			Selected:    attrs["selected"] == "true",
		}
		elements = append(elements, elem)
	}

	return elements
}

// parseIndex prefers the dump's own index attribute; when it is absent or
// unparseable the 0-based position of the element in this parse is used.
func parseIndex(value string, position int) int {
	if value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return position
}

// parseBounds parses the "[x1,y1][x2,y2]" attribute format. Missing or
// malformed bounds fall back to the zero rectangle.
func parseBounds(value string) Bounds {
	m := boundsPattern.FindStringSubmatch(value)
	if m == nil {
		return Bounds{}
	}

	x1, err1 := strconv.Atoi(m[1])
	y1, err2 := strconv.Atoi(m[2])
	x2, err3 := strconv.Atoi(m[3])
	y2, err4 := strconv.Atoi(m[4])
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Bounds{}
	}

	return Bounds{X1: x1, Y1: y1, X2: x2, Y2: y2}
}
