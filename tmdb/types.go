package tmdb

// searchResponse is the raw shape of a /search/movie response.
type searchResponse struct {
	Page         int           `json:"page"`
	Results      []movieResult `json:"results"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
}

// movieResult is a single raw movie record. Most fields are optional
// upstream; normalization fills the documented defaults.
type movieResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	PosterPath  string  `json:"poster_path"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// configResponse is the raw shape of the /configuration response.
type configResponse struct {
	Images struct {
		BaseURL       string `json:"base_url"`
		SecureBaseURL string `json:"secure_base_url"`
	} `json:"images"`
}

// Movie is the normalized, display-ready record produced from a raw result.
//
// Defaults for missing optional fields: Title "Unknown Title", Overview
// "No overview available", PosterURL empty, ReleaseYear "Unknown",
// VoteAverage 0, VoteCount 0.
type Movie struct {
	ID          int64
	Title       string
	Overview    string
	PosterURL   string
	ReleaseYear string
	VoteAverage float64
	VoteCount   int
}

// SearchResult is a normalized page of search results. Zero results is a
// successful result with an empty Movies slice, not an error.
type SearchResult struct {
	Movies       []Movie
	Page         int
	TotalPages   int
	TotalResults int
}

// HasNextPage reports whether another page can be requested.
func (r *SearchResult) HasNextPage() bool {
	return r.Page < r.TotalPages
}

// HasPrevPage reports whether a previous page exists.
func (r *SearchResult) HasPrevPage() bool {
	return r.Page > 1
}
