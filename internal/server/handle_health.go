package server

import (
	"net/http"
)

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status  string `json:"status"`
	Catalog string `json:"catalog"`
}

func handleHealth(deps *Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: "ok", Catalog: "loading"}
		if deps.Handle.Loaded() {
			resp.Catalog = deps.catalog(r.Context()).Mode().String()
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
