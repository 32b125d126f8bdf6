package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by DecodeJSON when the request carries no body
// at all. Callers distinguish this from malformed JSON so the validation
// layer can synthesize its "body required" message.
var ErrEmptyBody = errors.New("request body is empty")

// DecodeJSON decodes the request body into the given struct.
// Returns ErrEmptyBody for an absent or empty body.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyBody
		}
		return err
	}
	return nil
}
