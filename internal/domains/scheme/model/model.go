package model

const (
	CacheKeyGet    = "scheme:get"
	CacheKeyGetAll = "scheme:gets"
)

// Scheme is a government support programme shown on the information pages.
type Scheme struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Benefits    string `json:"benefits"`
	Eligibility string `json:"eligibility"`
	ApplyLink   string `json:"applyLink"`
}
