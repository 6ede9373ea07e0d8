package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/dgnsrekt/resonator-go/internal/rawpcm"
	"github.com/dgnsrekt/resonator-go/internal/synth"
)

// Response headers carrying waveform metadata alongside the raw payload.
// The body itself is headerless float32 PCM and holds no metadata.
const (
	HeaderFragment   = "X-Memory-Fragment"
	HeaderSampleRate = "X-Sample-Rate"
)

// ResonateRequest represents the request body for /v1/resonate.
type ResonateRequest struct {
	Input string `json:"input"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the response body for /v1/healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealthz handles GET /v1/healthz requests.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// handleResonate handles POST /v1/resonate requests. It synthesizes a
// waveform and fragment from the input text and returns the raw float32
// PCM bytes with the fragment and sample rate in response headers.
func (s *Server) handleResonate(w http.ResponseWriter, r *http.Request) {
	var req ResonateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.logger.Warn("failed to decode resonate request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// Empty input is valid; the synthesizers are total over strings.
	if len(req.Input) > s.cfg.MaxTextLength {
		s.logger.Warn("input exceeds max length", "length", len(req.Input), "max", s.cfg.MaxTextLength)
		writeError(w, http.StatusBadRequest, "input exceeds maximum length")
		return
	}

	requestID := uuid.New().String()

	samples, sampleRate, err := synth.WaveformWith(req.Input, s.cfg.Duration, s.cfg.SampleRate)
	if err != nil {
		if errors.Is(err, synth.ErrDegenerateBuffer) {
			s.logger.Error("degenerate waveform buffer", "request_id", requestID)
			writeError(w, http.StatusInternalServerError, "waveform could not be normalized")
			return
		}
		s.logger.Error("waveform synthesis failed", "request_id", requestID, "error", err)
		writeError(w, http.StatusInternalServerError, "synthesis failed")
		return
	}

	fragment := synth.Fragment(req.Input)
	payload := rawpcm.Encode(samples)

	s.logger.Info("resonate request served",
		"request_id", requestID,
		"input_length", len(req.Input),
		"samples", len(samples),
		"payload_bytes", len(payload),
		"fragment", fragment,
	)

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set(HeaderFragment, fragment)
	w.Header().Set(HeaderSampleRate, strconv.Itoa(sampleRate))
	w.Write(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
