package gingerbread

import "math/rand"

// ShapeType is the outline of a placed piece.
type ShapeType int

const (
	Square ShapeType = iota
	Triangle
	Circle
)

var shapeTypeNames = [...]string{"square", "triangle", "circle"}

func (t ShapeType) String() string {
	if int(t) < len(shapeTypeNames) {
		return shapeTypeNames[t]
	}
	return "unknown"
}

// ShapeColor is the icing color of a piece.
type ShapeColor int

const (
	Red ShapeColor = iota
	Green
	Gold
)

var shapeColorNames = [...]string{"red", "green", "gold"}

func (c ShapeColor) String() string {
	if int(c) < len(shapeColorNames) {
		return shapeColorNames[c]
	}
	return "unknown"
}

// Icon is an optional decoration drawn on top of a piece.
type Icon int

const (
	NoIcon Icon = iota
	Window
	Door
)

var iconNames = [...]string{"none", "window", "door"}

func (i Icon) String() string {
	if int(i) < len(iconNames) {
		return iconNames[i]
	}
	return "unknown"
}

// Shape is one building piece.
type Shape struct {
	Type  ShapeType
	Color ShapeColor
	Icon  Icon
}

// RandomShape picks type, color and icon independently. Windows and doors
// only exist on square pieces, so any icon forces the type to Square.
func RandomShape(rng *rand.Rand) Shape {
	s := Shape{
		Type:  ShapeType(rng.Intn(3)),
		Color: ShapeColor(rng.Intn(3)),
		Icon:  Icon(rng.Intn(3)),
	}
	if s.Icon != NoIcon {
		s.Type = Square
	}
	return s
}
