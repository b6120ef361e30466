package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/SebaMedina172/Anki-App/app/media"
)

// mediaService implements the save-image endpoint
type mediaService struct {
	store media.Store
}

type saveImageRequest struct {
	URL string `json:"url"`
}

type saveImageResponse struct {
	Filename string `json:"filename"`
}

// SaveImage handles POST /save-image. The body is either a multipart form
// with a "file" part (user upload) or a JSON {"url": ...} to download.
func (s mediaService) SaveImage(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "Missing file in form")
			return
		}
		defer file.Close()
		filename, err := s.store.SaveUpload(file, header.Filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to store uploaded image")
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, saveImageResponse{Filename: filename})
		return
	}

	var req saveImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeError(w, http.StatusBadRequest, "Missing url in body")
		return
	}
	filename, err := s.store.SaveFromURL(r.Context(), req.URL)
	if err != nil {
		log.Error().Err(err).Str("url", req.URL).Msg("failed to download image")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, saveImageResponse{Filename: filename})
}
