package api

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/rs/zerolog/log"

	"github.com/SebaMedina172/Anki-App/app/clients/ankiconnect"
	"github.com/SebaMedina172/Anki-App/app/config"
)

// ankiService relays automation calls to the local flashcard service.
type ankiService struct {
	cfg    *config.Config
	client ankiconnect.Client
}

// allowedAnkiURL accepts only a local AnkiConnect endpoint, preventing the
// proxy from being used to reach arbitrary hosts.
func allowedAnkiURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	host := parsed.Hostname()
	if host != "localhost" && host != "127.0.0.1" {
		return false
	}
	port := parsed.Port()
	return port == "" || port == "8765"
}

// Proxy handles POST /anki-proxy. The target comes from the x-anki-url
// header; the body is the AnkiConnect {action, version, params} payload,
// relayed verbatim.
func (s ankiService) Proxy(w http.ResponseWriter, r *http.Request) {
	target := r.Header.Get("x-anki-url")
	if target == "" {
		target = s.cfg.AnkiConnectURL
	}
	if !allowedAnkiURL(target) {
		writeError(w, http.StatusBadRequest, "AnkiConnect URL is not allowed")
		return
	}

	var req ankiconnect.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if req.Action == "" {
		writeError(w, http.StatusBadRequest, "Missing action")
		return
	}

	body, err := s.client.Invoke(r.Context(), target, req)
	if err != nil {
		log.Error().Err(err).Str("action", req.Action).Msg("ankiconnect call failed")
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	if _, err := w.Write(body); err != nil {
		log.Warn().Err(err).Msg("failed to write response")
	}
}
