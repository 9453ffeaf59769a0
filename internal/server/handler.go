package server

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/mesh-intelligence/itinerary/internal/grouping"
	"github.com/mesh-intelligence/itinerary/internal/records"
	"github.com/mesh-intelligence/itinerary/internal/render"
	"github.com/mesh-intelligence/itinerary/pkg/types"
)

// ContentTypeNDJSON selects the JSON Lines reader for POST /v1/trips.
const ContentTypeNDJSON = "application/x-ndjson"

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorDetail `json:"error"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// trips handles POST /v1/trips?home=XXX. The body is a reservation log, or
// JSON Lines when sent as application/x-ndjson. Trips are rendered as JSON.
func (s *Server) trips(w http.ResponseWriter, r *http.Request) {
	home := r.URL.Query().Get("home")
	if home == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", types.ErrHomeMissing.Error())
		return
	}

	opts := []records.Option{
		records.WithKinds(s.cfg.TravelKinds, s.cfg.StayKinds),
		records.WithLogger(s.logger),
	}
	var src records.Source
	if isNDJSON(r.Header.Get("Content-Type")) {
		src = records.NewJSONL(r.Body, opts...)
	} else {
		src = records.NewText(r.Body, opts...)
	}

	segments, err := src.Segments(r.Context())
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
		case errors.Is(err, types.ErrMalformedRecord):
			writeError(w, http.StatusBadRequest, "malformed_record", err.Error())
		default:
			s.logger.ErrorContext(r.Context(), "reading segments", "error", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "could not read request body")
		}
		return
	}

	trips := grouping.New(home, grouping.WithLogger(s.logger)).Trips(segments)
	writeJSON(w, http.StatusOK, render.Views(trips))
}

func isNDJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == ContentTypeNDJSON
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}
