package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/SebaMedina172/Anki-App/app/clients/pixabay"
	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/images"
)

// imageService implements the image search endpoint
type imageService struct {
	cfg      *config.Config
	builder  images.QueryBuilder
	resolver images.Resolver
}

type imagesResponse struct {
	Images []pixabay.Image `json:"images"`
}

// SearchImages handles GET /search-image?query=&lang=&page=. The optional
// example and meaning parameters let the client hand over the full triple
// so the query builder can pick its base text.
func (s imageService) SearchImages(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	query := strings.TrimSpace(params.Get("query"))
	lang := config.Language(strings.ToLower(strings.TrimSpace(params.Get("lang"))))
	if lang == "" {
		lang = config.English
	}
	if query == "" {
		writeError(w, http.StatusBadRequest, "Missing query parameter")
		return
	}
	if !s.cfg.Supported(lang) {
		writeError(w, http.StatusBadRequest, "Language '"+string(lang)+"' is not supported for image search")
		return
	}
	page, err := strconv.Atoi(params.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	built := s.builder.Build(r.Context(), query, params.Get("example"), params.Get("meaning"), lang)
	results := s.resolver.Resolve(r.Context(), built, query, lang, page)
	writeJSON(w, imagesResponse{Images: results})
}
