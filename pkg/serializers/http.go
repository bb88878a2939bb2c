package serializers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// Detail mirrors the {"detail": "..."} error body shape used across the
// API. External probes assert on this exact shape.
type Detail struct {
	Detail string `json:"detail"`
}

// RespondJSON writes a JSON response with the given status code and data.
func RespondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode JSON response: %v\n", err)
	}
}

// RespondDetail writes a {"detail": msg} JSON body with the given status.
func RespondDetail(w http.ResponseWriter, statusCode int, msg string) {
	RespondJSON(w, statusCode, Detail{Detail: msg})
}
