package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/SebaMedina172/Anki-App/app/clients/ankiconnect"
	"github.com/SebaMedina172/Anki-App/app/config"
	"github.com/SebaMedina172/Anki-App/app/images"
	"github.com/SebaMedina172/Anki-App/app/media"
)

// Server exposes the lookup/image/media pipelines to the web client.
type Server struct {
	router chi.Router
}

func (s *Server) Run(port int) error {
	return http.ListenAndServe(fmt.Sprintf(":%d", port), s.router)
}

// Handler returns the underlying router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func setJSONContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// allowBrowser sets the permissive CORS headers the local web client needs.
func allowBrowser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, x-anki-url")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func NewServer(
	cfg *config.Config,
	searcher WordSearcher,
	builder images.QueryBuilder,
	resolver images.Resolver,
	store media.Store,
	anki ankiconnect.Client,
) *Server {
	s := &Server{}
	search := searchService{cfg: cfg, searcher: searcher}
	image := imageService{cfg: cfg, builder: builder, resolver: resolver}
	mediaSvc := mediaService{store: store}
	proxy := ankiService{cfg: cfg, client: anki}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(allowBrowser)

	r.Group(func(r chi.Router) {
		r.Use(setJSONContentType)
		r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, map[string]string{"message": "pong"})
		})
		r.Get("/search", search.SearchWord)
		r.Get("/search-image", image.SearchImages)
		r.Post("/save-image", mediaSvc.SaveImage)
		r.Post("/anki-proxy", proxy.Proxy)
	})
	r.Handle("/media/*", http.StripPrefix("/media/", http.FileServer(http.Dir(store.Dir()))))

	s.router = r
	return s
}
