package agent

import (
	"encoding/json"
	"errors"
	"net/http"

	"domineering/game"
	"domineering/searcher"

	"github.com/rs/zerolog/log"
)

// FindMoveRequest is the body of POST /findmove. Board rows use the game.ParseBoard
// notation.
type FindMoveRequest struct {
	Board  []string `json:"board"`
	Player string   `json:"player"`
}

// NewAgentHandler serves a.FindMove over HTTP. The response body is the chosen
// game.Coordinate.
func NewAgentHandler(a Agent) http.Handler {
	// Create a local mux rather than using the global DefaultServeMux
	mux := http.NewServeMux()
	mux.HandleFunc("/findmove", func(w http.ResponseWriter, r *http.Request) {
		handleFindMove(a, w, r)
	})
	return mux
}

// StartAgentServer serves the agent on addr until the listener fails.
func StartAgentServer(addr string, a Agent) error {
	log.Info().Msgf("starting agent server on %s...", addr)
	return http.ListenAndServe(addr, NewAgentHandler(a))
}

func handleFindMove(a Agent, w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var payload FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	board, err := game.ParseBoard(payload.Board...)
	if err != nil {
		http.Error(w, "bad board: "+err.Error(), http.StatusBadRequest)
		return
	}
	player, err := game.ParsePlayer(payload.Player)
	if err != nil {
		http.Error(w, "bad player: "+err.Error(), http.StatusBadRequest)
		return
	}

	move, metric, err := a.FindMove(r.Context(), board, player)
	if errors.Is(err, searcher.ErrNoMove) {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("agent failed to find a move")
		http.Error(w, "failed to find move: "+err.Error(), http.StatusInternalServerError)
		return
	}
	log.Info().Msgf("%s plays %s after %s", player, move, metric.Duration)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(move); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
