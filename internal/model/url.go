package model

// MaxCodeLength is the longest short code the registry accepts.
const MaxCodeLength = 36

type Code string

func (c Code) String() string {
	return string(c)
}

type URL string

func (U URL) String() string {
	return string(U)
}

// URLMapping is a stored short code -> original URL record
type URLMapping struct {
	Code        Code   `json:"short_code"`
	OriginalURL URL    `json:"original_url"`
	Owner       string `json:"owner,omitempty"`
}

// ShortenRequest is the body of POST /shorten_url
type ShortenRequest struct {
	OriginalURL string `json:"original_url" validate:"required"`
	CustomURL   string `json:"custom_url,omitempty" validate:"omitempty,max=36"`
}

// ShortenResponse describes a freshly created mapping
type ShortenResponse struct {
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
	ShortURL    string `json:"short_url"`
}

// URLListItem is one element of GET /list_urls
type URLListItem struct {
	ShortCode   string `json:"short_code"`
	OriginalURL string `json:"original_url"`
}
