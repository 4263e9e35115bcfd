package board

import (
	"encoding/json"
	"fmt"
)

// jsonTile is used for serialization with the json/encoding package
type jsonTile struct {
	File  string `json:"file"`
	Rank  string `json:"rank"`
	Color Color  `json:"color"`
	Label string `json:"label"`
}

// MarshalJSON implements the encoding/json.Marshaler interface to marshal colors into their names.
func (c Color) MarshalJSON() ([]byte, error) {
	switch c {
	case Black, White:
		return json.Marshal(c.String())
	}
	return nil, fmt.Errorf("unknown color: %d", int(c))
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface to unmarshal colors from their names.
func (c *Color) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch s {
	case Black.String():
		*c = Black
	case White.String():
		*c = White
	default:
		return fmt.Errorf("unknown color: %q", s)
	}
	return nil
}

// MarshalJSON implements the encoding/json.Marshaler interface.
// Tiles are written with the labels of their file and rank rather than indexes.
func (t Tile) MarshalJSON() ([]byte, error) {
	if !validIndex(t.File) || !validIndex(t.Rank) {
		return nil, fmt.Errorf("tile off board: file index %v, rank index %v", t.File, t.Rank)
	}
	jt := jsonTile{
		File:  t.FileLabel(),
		Rank:  t.RankLabel(),
		Color: t.Color,
		Label: t.Label,
	}
	return json.Marshal(jt)
}

// UnmarshalJSON implements the encoding/json.Unmarshaler interface.
// The file and rank indexes are derived from their labels.
// The label and color must be the ones the board renders for the tile.
func (t *Tile) UnmarshalJSON(b []byte) error {
	var jt jsonTile
	if err := json.Unmarshal(b, &jt); err != nil {
		return err
	}
	file, ok := indexOf(files, jt.File)
	if !ok {
		return fmt.Errorf("unknown file: %q", jt.File)
	}
	rank, ok := indexOf(ranks, jt.Rank)
	if !ok {
		return fmt.Errorf("unknown rank: %q", jt.Rank)
	}
	if want := Label(file, rank); jt.Label != want {
		return fmt.Errorf("label of tile %v is %q", want, jt.Label)
	}
	if want := ColorAt(file, rank); jt.Color != want {
		return fmt.Errorf("tile %v is %v, not %v", jt.Label, want, jt.Color)
	}
	*t = Tile{
		File:  file,
		Rank:  rank,
		Color: jt.Color,
		Label: jt.Label,
	}
	return nil
}

// validIndex determines if the file or rank index is on the board.
func validIndex(i int) bool {
	return i >= 0 && i < Size
}

// indexOf finds the index of the label in the axis.
func indexOf(axis [Size]string, label string) (int, bool) {
	for i, l := range axis {
		if l == label {
			return i, true
		}
	}
	return 0, false
}
