package pixabay

// SearchResponse holds an API response
type SearchResponse struct {
	Total     int   `json:"total"`
	TotalHits int   `json:"totalHits"`
	Hits      []Hit `json:"hits"`
}

type Hit struct {
	ID            int    `json:"id"`
	PreviewURL    string `json:"previewURL"`
	WebformatURL  string `json:"webformatURL"`
	LargeImageURL string `json:"largeImageURL"`
	Tags          string `json:"tags"`
}

// Image is one usable search hit: a hit with both a preview and a full
// size URL.
type Image struct {
	ID         int    `json:"id"`
	PreviewURL string `json:"previewURL"`
	FullURL    string `json:"fullURL"`
}
