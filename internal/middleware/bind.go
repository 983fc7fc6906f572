package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"guardDuty/pkg/validator"
)

const maxBodyBytes = 1 << 20

// Bind decodes and validates the JSON body into a fresh T per request. An
// empty body decodes to the zero value, which still has to validate.
func Bind[T any](next func(w http.ResponseWriter, r *http.Request, req T)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req T
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid JSON")
			return
		}

		if err := validator.ValidateStruct(req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		next(w, r, req)
	}
}
