// Package httpjson holds the small JSON request/response conventions shared
// by the API handlers: bodies are decoded with a size cap, responses carry
// application/json, and errors are `{"detail": "..."}` objects (the shape
// the journal frontend reads).
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies. Day-stage payloads are short free-text
// forms; anything near this size is not a journal entry.
const maxBodyBytes = 1 << 20 // 1 MiB

var ErrEmptyBody = errors.New("empty request body")

// Decode reads the request body as JSON into dst. Unknown fields are
// accepted; use this for envelopes whose extras should be ignored.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}

// Write sends v as a JSON response with the given status code.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error sends a `{"detail": ...}` error body with the given status code.
func Error(w http.ResponseWriter, status int, detail string) {
	Write(w, status, map[string]string{"detail": detail})
}
