package collide

import (
	"fmt"
	"strings"
)

// Alignment names a point of a rectangle that another, smaller rectangle can
// be aligned to.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignNorth
	AlignNorthEast
	AlignEast
	AlignSouthEast
	AlignSouth
	AlignSouthWest
	AlignWest
	AlignNorthWest
)

var alignmentNames = [...]string{
	AlignCenter:    "c",
	AlignNorth:     "n",
	AlignNorthEast: "ne",
	AlignEast:      "e",
	AlignSouthEast: "se",
	AlignSouth:     "s",
	AlignSouthWest: "sw",
	AlignWest:      "w",
	AlignNorthWest: "nw",
}

func (a Alignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
	return alignmentNames[a]
}

// ParseAlignment parses the compass abbreviations produced by
// [Alignment.String], ignoring case. It returns AlignCenter and false for
// unknown input.
func ParseAlignment(s string) (Alignment, bool) {
	for i, name := range alignmentNames {
		if strings.EqualFold(s, name) {
			return Alignment(i), true
		}
	}
	return AlignCenter, false
}

// AlignmentOffset returns the position of the top-left corner of a rectangle
// of the given size when it is aligned to r according to a. North is up.
func (r Rect) AlignmentOffset(a Alignment, size Vec2) Vec2 {
	left := r.X
	hcenter := r.X + (r.Width-size.X)/2
	right := r.X + r.Width - size.X
	top := r.Y
	vcenter := r.Y + (r.Height-size.Y)/2
	bottom := r.Y + r.Height - size.Y

	switch a {
	case AlignCenter:
		return Vec(hcenter, vcenter)
	case AlignNorth:
		return Vec(hcenter, top)
	case AlignNorthEast:
		return Vec(right, top)
	case AlignEast:
		return Vec(right, vcenter)
	case AlignSouthEast:
		return Vec(right, bottom)
	case AlignSouth:
		return Vec(hcenter, bottom)
	case AlignSouthWest:
		return Vec(left, bottom)
	case AlignWest:
		return Vec(left, vcenter)
	case AlignNorthWest:
		return Vec(left, top)
	default:
		return Vec2{}
	}
}
