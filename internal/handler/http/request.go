package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cmlabs-hris/manager-portal-go/internal/handler/http/response"
	"github.com/cmlabs-hris/manager-portal-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// pathID parses the {id} URL parameter and writes a 400 when it is not a positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := validator.ParseID(chi.URLParam(r, "id"))
	if !ok {
		response.ValidationError(w, map[string]string{"id": "id must be a positive integer"})
		return 0, false
	}
	return id, true
}

// decodeJSON reads a bounded JSON body and writes a 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return false
	}
	return true
}

// queryBool reads an optional boolean query parameter.
func queryBool(r *http.Request, key string) (bool, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, true
	}
	v, err := strconv.ParseBool(raw)
	return v, err == nil
}
