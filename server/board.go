package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jacobpatterson1549/chessboard/board"
	"github.com/jacobpatterson1549/chessboard/server/log"
)

// boardJSONHandler renders the board and writes the tiles as a json array.
func boardJSONHandler(log log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tiles := board.Render()
		b, err := json.Marshal(tiles)
		if err != nil {
			err = fmt.Errorf("writing board tiles: %w", err)
			writeInternalError(err, log, w)
			return
		}
		w.Write(b)
	}
}
