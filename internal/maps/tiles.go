package maps

import "strconv"

// TileCode is the small integer stored in each grid cell.
type TileCode uint8

// Known tile codes.
const (
	Floor TileCode = 0
	Wall  TileCode = 1
)

// TileDef describes a known tile code.
type TileDef struct {
	Code     TileCode
	Name     string
	Walkable bool
	Char     rune
}

// Tiles is the fixed tile set, indexed by code.
var Tiles = []TileDef{
	Floor: {Code: Floor, Name: "floor", Walkable: true, Char: '.'},
	Wall:  {Code: Wall, Name: "wall", Walkable: false, Char: '#'},
}

// Known reports whether code belongs to the tile set.
func (c TileCode) Known() bool {
	return int(c) < len(Tiles)
}

// Def returns the tile definition for c.
// Unknown codes get a non-walkable "unknown" definition.
func (c TileCode) Def() TileDef {
	if !c.Known() {
		return TileDef{Code: c, Name: "unknown", Char: '?'}
	}
	return Tiles[c]
}

func (c TileCode) String() string {
	if c.Known() {
		return Tiles[c].Name
	}
	return "tile(" + strconv.Itoa(int(c)) + ")"
}
