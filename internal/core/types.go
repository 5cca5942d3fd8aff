package core

import "strconv"

// Size describes the dimensions of the drawing surface in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether the size has no drawable area.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// CellKey identifies a grid cell by row and column.
type CellKey struct {
	Row int
	Col int
}

// String renders the key in the "row-col" form used by hosts.
func (k CellKey) String() string {
	return strconv.Itoa(k.Row) + "-" + strconv.Itoa(k.Col)
}

// In reports whether the key lies inside a square grid of the given side.
func (k CellKey) In(gridSize int) bool {
	return k.Row >= 0 && k.Row < gridSize && k.Col >= 0 && k.Col < gridSize
}

// Cell is one paintable grid square and the color it expects.
type Cell struct {
	Row            int    `json:"row" yaml:"row" toml:"row"`
	Col            int    `json:"col" yaml:"col" toml:"col"`
	TargetColorHex string `json:"targetColorHex" yaml:"targetColorHex" toml:"targetColorHex"`
}

// Key returns the lookup key for the cell.
func (c Cell) Key() CellKey { return CellKey{Row: c.Row, Col: c.Col} }

// CellPainted is the outbound notification for a paint attempt.
type CellPainted struct {
	Row     int  `json:"row"`
	Col     int  `json:"col"`
	Correct bool `json:"correct"`
}
