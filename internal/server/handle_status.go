package server

import (
	"net/http"
	"time"
)

var startTime = time.Now()

// StatusResponse is the body of GET /statusz.
type StatusResponse struct {
	UptimeSeconds   int64  `json:"uptimeSeconds"`
	Catalog         string `json:"catalog"`
	QueueDepth      int    `json:"queueDepth"`
	LastDrainMillis int64  `json:"lastDrainMillis"`
	GuessesServed   int    `json:"guessesServed"`
	RosterSize      int    `json:"rosterSize"`
}

func handleStatus(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := StatusResponse{
			UptimeSeconds: int64(time.Since(startTime).Seconds()),
			Catalog:       "loading",
			QueueDepth:    deps.Events.Len(),
			GuessesServed: deps.Guesses.Value(),
			RosterSize:    deps.Players.Len(),
		}
		if deps.Handle.Loaded() {
			resp.Catalog = deps.catalog(r.Context()).Mode().String()
		}
		if deps.Worker != nil {
			resp.LastDrainMillis = deps.Worker.LastDrainDuration().Milliseconds()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
