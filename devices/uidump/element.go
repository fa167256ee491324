// Package uidump parses Android UI hierarchy dumps into a flat element list
// and provides criteria-based element matching on top of it.
package uidump

import (
	"fmt"
	"math"
)

// Point is a pixel coordinate, top-left origin.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Bounds is an axis-aligned rectangle in screen pixels. A degenerate
// rectangle (zero or negative width/height) marks malformed or missing
// bounds in the source dump.
type Bounds struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Center returns the midpoint of the rectangle, rounded.
func (b Bounds) Center() Point {
	return Point{
		X: int(math.Round(float64(b.X1+b.X2) / 2)),
		Y: int(math.Round(float64(b.Y1+b.Y2) / 2)),
	}
}

// Valid reports whether the rectangle has positive area, i.e. whether it is
// usable as a tap target.
func (b Bounds) Valid() bool {
	return b.X2 > b.X1 && b.Y2 > b.Y1
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d,%d][%d,%d]", b.X1, b.Y1, b.X2, b.Y2)
}

// Element is one widget node from a UI hierarchy dump. Elements are created
// fresh on every parse and are not mutated afterwards; Center is always
// derived from Bounds at parse time.
type Element struct {
	Index       int    `json:"index"`
	Text        string `json:"text"`
	Class       string `json:"class"`
	ResourceID  string `json:"resourceId"`
	ContentDesc string `json:"contentDesc"`
	Bounds      Bounds `json:"bounds"`
	Center      Point  `json:"center"`
	Checkable   bool   `json:"checkable"`
	Checked     bool   `json:"checked"`
	Clickable   bool   `json:"clickable"`
	Enabled     bool   `json:"enabled"`
	Focused     bool   `json:"focused"`
	Scrollable  bool   `json:"scrollable"`
	Selected    bool   `json:"selected"`
}

// Interactive reports whether the element accepts some form of user input.
func (e Element) Interactive() bool {
	return e.Clickable || e.Checkable || e.Scrollable
}

// Label returns the best human-readable identifier for the element: the
// first non-empty of text, content description, resource id and class,
// falling back to the element index.
func (e Element) Label() string {
	for _, s := range []string{e.Text, e.ContentDesc, e.ResourceID, e.Class} {
		if s != "" {
			return s
		}
	}
	return fmt.Sprintf("#%d", e.Index)
}
