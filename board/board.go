// Package board renders the tiles of a chessboard.
package board

import "strings"

type (
	// Color is the shade of a tile.
	Color int

	// Tile is a single square of the board.
	Tile struct {
		// File is the index of the column of the tile, from 0 (a) to 7 (h).
		File int
		// Rank is the index of the row of the tile, from 0 (1) to 7 (8).
		Rank int
		// Color is the shade the tile is painted.
		Color Color
		// Label is the text displayed on the tile, such as "a 8".
		Label string
	}
)

const (
	// Black tiles are at even file+rank sums, such as a1 and h8.
	Black Color = iota
	// White tiles are at odd file+rank sums.
	White
)

const (
	// Size is the number of files and ranks on the board.
	Size = 8
	// NumTiles is the number of tiles on the board.
	NumTiles = Size * Size
	// TileClassName is the style class every tile has.
	TileClassName = "tile"
	// labelSeparator is between the file and the rank of a tile label.
	labelSeparator = " "
)

var (
	files = [Size]string{"a", "b", "c", "d", "e", "f", "g", "h"}
	ranks = [Size]string{"1", "2", "3", "4", "5", "6", "7", "8"}
)

// Files returns the labels of the columns of the board, from left to right.
func Files() [Size]string {
	return files
}

// Ranks returns the labels of the rows of board, from bottom to top.
func Ranks() [Size]string {
	return ranks
}

// ColorAt applies the parity rule to determine the color of the tile at the file and rank indexes.
func ColorAt(file, rank int) Color {
	if (file+rank)%2 == 0 {
		return Black
	}
	return White
}

// Label creates the text of the tile at the file and rank indexes.
func Label(file, rank int) string {
	return files[file] + labelSeparator + ranks[rank]
}

// Render creates the tiles of the board in display order.
// The eighth rank is first, from file a to h, and the first rank is last.
func Render() []Tile {
	tiles := make([]Tile, 0, NumTiles)
	for rank := Size - 1; rank >= 0; rank-- {
		for file := 0; file < Size; file++ {
			t := Tile{
				File:  file,
				Rank:  rank,
				Color: ColorAt(file, rank),
				Label: Label(file, rank),
			}
			tiles = append(tiles, t)
		}
	}
	return tiles
}

// String returns the name of the color.
func (c Color) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "?"
}

// ClassName is the style class for tiles of the color.
func (c Color) ClassName() string {
	return c.String() + "-tile"
}

// ClassNames returns the space-separated style classes of the tile.
func (t Tile) ClassNames() string {
	classNames := []string{
		TileClassName,
		t.Color.ClassName(),
	}
	return strings.Join(classNames, " ")
}

// FileLabel is the letter of the column of the tile.
func (t Tile) FileLabel() string {
	return files[t.File]
}

// RankLabel is the number of the row of the tile.
func (t Tile) RankLabel() string {
	return ranks[t.Rank]
}
