// Package term paints the tiles of a chessboard for terminals.
package term

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/jacobpatterson1549/chessboard/board"
	"github.com/jacobpatterson1549/chessboard/theme"
)

// tileWidth is the number of columns each tile takes, including padding around the label.
const tileWidth = 5

// Style holds the lipgloss styles to paint the board with.
type Style struct {
	BlackTile lipgloss.Style
	WhiteTile lipgloss.Style
	Axis      lipgloss.Style
	// Axes adds the rank numbers to the left of the board and the file letters below it when true.
	Axes bool
}

// NewStyle creates the styles for the colors using the renderer.
func NewStyle(r *lipgloss.Renderer, c theme.Colors) Style {
	tile := r.NewStyle().
		Width(tileWidth).
		Align(lipgloss.Center).
		Foreground(lipgloss.Color(c.Text))
	s := Style{
		BlackTile: tile.
			Background(lipgloss.Color(c.BlackTile)),
		WhiteTile: tile.
			Background(lipgloss.Color(c.WhiteTile)),
		Axis: r.NewStyle().
			Bold(true),
	}
	return s
}

// Render paints the tiles as rows of the board.
// The tiles are expected to be in the order of board.Render.
func (s Style) Render(tiles []board.Tile) (string, error) {
	if len(tiles) != board.NumTiles {
		return "", fmt.Errorf("wanted %v tiles to render, got %v", board.NumTiles, len(tiles))
	}
	rows := make([]string, 0, board.Size+1)
	for i := 0; i < len(tiles); i += board.Size {
		row := tiles[i : i+board.Size]
		rows = append(rows, s.renderRow(row))
	}
	if s.Axes {
		rows = append(rows, s.renderFiles())
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...), nil
}

// renderRow joins the painted tiles of a rank, prefixed by the rank number if axes are shown.
func (s Style) renderRow(row []board.Tile) string {
	cells := make([]string, 0, len(row)+1)
	if s.Axes {
		rank := s.Axis.Width(2).Render(row[0].RankLabel())
		cells = append(cells, rank)
	}
	for _, t := range row {
		cell := s.tileStyle(t.Color).Render(t.Label)
		cells = append(cells, cell)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderFiles creates the footer of file letters, aligned under the tiles.
func (s Style) renderFiles() string {
	files := board.Files()
	cells := make([]string, 0, len(files)+1)
	cells = append(cells, s.Axis.Width(2).Render(""))
	fileStyle := s.Axis.Width(tileWidth).Align(lipgloss.Center)
	for _, f := range files {
		cells = append(cells, fileStyle.Render(f))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// tileStyle is the style of tiles of the color.
func (s Style) tileStyle(c board.Color) lipgloss.Style {
	if c == board.Black {
		return s.BlackTile
	}
	return s.WhiteTile
}
