// Package main prints the chessboard to the terminal.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jacobpatterson1549/chessboard/board"
	"github.com/jacobpatterson1549/chessboard/board/term"
	"github.com/jacobpatterson1549/chessboard/theme"
)

// mainFlags are the options used to print the board.
type mainFlags struct {
	themeFile string
	axes      bool
	json      bool
}

// main prints the board to standard output.
func main() {
	log := log.New(os.Stderr, "", log.Lmsgprefix)
	m := newMainFlags(os.Args)
	if err := m.print(os.Stdout, os.ReadFile); err != nil {
		log.Fatalf("printing board: %v", err)
	}
}

// newMainFlags parses the command line arguments.
func newMainFlags(osArgs []string) mainFlags {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	var m mainFlags
	fs := flag.NewFlagSet(osArgs[0], flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Prints the chessboard\n")
		fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
		fs.PrintDefaults()
	}
	fs.StringVar(&m.themeFile, "theme-file", "", "The yaml file of colors to paint the board with.")
	fs.BoolVar(&m.axes, "axes", false, "Prints the rank numbers and file letters around the board.")
	fs.BoolVar(&m.json, "json", false, "Prints the tiles as json instead of painting them.")
	fs.Parse(osArgs[1:])
	return m
}

// print renders the board and writes it to w.
func (m mainFlags) print(w io.Writer, readFileFunc func(name string) ([]byte, error)) error {
	tiles := board.Render()
	if m.json {
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(tiles)
	}
	colors, err := m.colors(readFileFunc)
	if err != nil {
		return err
	}
	r := lipgloss.NewRenderer(w)
	s := term.NewStyle(r, *colors)
	s.Axes = m.axes
	text, err := s.Render(tiles)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return fmt.Errorf("writing board: %w", err)
	}
	return nil
}

// colors reads the theme file, if it is specified.  The default colors are used if it is not.
func (m mainFlags) colors(readFileFunc func(name string) ([]byte, error)) (*theme.Colors, error) {
	if len(m.themeFile) == 0 {
		c := theme.Default()
		return &c, nil
	}
	b, err := readFileFunc(m.themeFile)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return theme.Read(bytes.NewReader(b))
}
