package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError rejects a request from middleware (auth, rate limit) with
// the same {"error": ...} envelope shape the dealer-facing handlers emit.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
