//go:build !js
// +build !js

package main

import (
	_ "embed"
	"encoding/json"
	"net/http"
	"sort"

	"github.com/simukka/thermal-burst/relay"
)

//go:embed index.html
var indexHTML []byte

// newMux wires the page, the relay socket and the JSON endpoints.
func newMux(hub *relay.Hub, staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	mux.Handle(relay.Path, hub)

	// Connected peers (for debugging)
	mux.HandleFunc("/api/peers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*")

		ids := hub.PeerIDs()
		sort.Strings(ids)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"peers": ids,
			"count": len(ids),
		})
	})

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}
