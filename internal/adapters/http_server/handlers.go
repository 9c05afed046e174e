package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"property_booking/internal/app"
	"property_booking/internal/domain"
)

const maxBookingBody = 1 << 20

type Handlers struct {
	Q *app.QueryService
	B *app.BookingService
}

type envelope struct {
	Success    bool        `json:"success"`
	Data       any         `json:"data,omitempty"`
	Pagination *pagination `json:"pagination,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/properties", h.listProperties)
	s.mux.Get("/properties/{id}", h.getProperty)
	s.mux.Get("/properties/{id}/reviews", h.listReviews)
	// every verb lands here so the 405 can name the one that works
	s.mux.HandleFunc("/bookings", h.createBooking)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// fail maps service errors onto the response: validation → 400, missing → 404,
// anything else → 500 with the detail kept in the log.
func fail(w http.ResponseWriter, r *http.Request, err error, notFoundMsg, internalMsg string) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeError(w, http.StatusBadRequest, ve.Msg)
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMsg)
	default:
		log.Error().Err(err).
			Str("request_id", chimw.GetReqID(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeError(w, http.StatusInternalServerError, internalMsg)
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return "", nil, err
	}
	sum := sha1.Sum(body)
	return `W/"` + hex.EncodeToString(sum[:]) + `"`, body, nil
}

// writeCacheable sends v with a weak ETag and answers 304 when the client
// already holds that version.
func writeCacheable(w http.ResponseWriter, r *http.Request, v any) {
	etag, body, err := calcETagAndBody(v)
	if err != nil {
		fail(w, r, err, "", "Internal server error")
		return
	}
	w.Header().Set("ETag", etag)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(append(body, '\n')); err != nil {
		log.Error().Err(err).Msg("write cacheable body failed")
	}
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := intParam(q.Get("page"), 1)
	if err != nil || page < 1 {
		writeError(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	limit, err := intParam(q.Get("limit"), app.DefaultPageLimit)
	if err != nil || limit < 1 || limit > app.MaxPageLimit {
		writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and "+strconv.Itoa(app.MaxPageLimit))
		return
	}

	c := domain.FilterCriteria{
		Location: q.Get("location"),
		Category: q.Get("category"),
	}
	for _, f := range []struct {
		name string
		dst  **float64
	}{
		{"minPrice", &c.MinPrice},
		{"maxPrice", &c.MaxPrice},
		{"minRating", &c.MinRating},
	} {
		v, err := floatParam(q.Get(f.name))
		if err != nil {
			writeError(w, http.StatusBadRequest, f.name+" must be a number")
			return
		}
		*f.dst = v
	}

	res, err := h.Q.ListProperties(r.Context(), c, domain.PageRequest{Page: page, Limit: limit})
	if err != nil {
		fail(w, r, err, "Not found", "Internal server error")
		return
	}

	writeCacheable(w, r, envelope{
		Success: true,
		Data:    res.Items,
		Pagination: &pagination{
			Total:      res.Total,
			Page:       res.Page,
			Limit:      res.Limit,
			TotalPages: res.TotalPages,
		},
	})
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Q.GetProperty(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err, "Property not found", "Internal server error")
		return
	}
	writeCacheable(w, r, envelope{Success: true, Data: p})
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	rs, err := h.Q.ListReviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err, "Property not found", "Internal server error")
		return
	}
	writeCacheable(w, r, envelope{Success: true, Data: rs})
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed. Use POST.")
		return
	}

	var b domain.Booking
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBookingBody)).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	conf, err := h.B.Book(r.Context(), b)
	if err != nil {
		fail(w, r, err, "Not found", "Internal server error. Please try again later.")
		return
	}
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: conf})
}

// intParam parses a base-10 query value; empty means def.
func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// floatParam parses an optional finite number; empty means unset.
func floatParam(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, strconv.ErrSyntax
	}
	return &f, nil
}
