package models

import "strings"

type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// ParsePriority maps user input onto a Priority, defaulting to PriorityMedium.
func ParsePriority(s string) Priority {
	switch Priority(strings.ToUpper(strings.TrimSpace(s))) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

type Film struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration,omitempty"`
	Year          int      `json:"year,omitempty"`
	Rating        float64  `json:"rating"`
	ImageURL      string   `json:"image_url,omitempty"`
	WatchPriority Priority `json:"watch_priority"`
}

// HasImage reports whether the film carries an image URL.
func (f Film) HasImage() bool {
	return f.ImageURL != ""
}

// Category names in the order the catalog merges them.
const (
	CategoryTrending    = "trending"
	CategoryPopular     = "popular"
	CategoryNewReleases = "new-releases"
	CategoryAction      = "action"
	CategoryComedy      = "comedy"
)

// CategoryOrder is the fixed merge order; earlier categories win on duplicate ids.
var CategoryOrder = []string{
	CategoryTrending,
	CategoryPopular,
	CategoryNewReleases,
	CategoryAction,
	CategoryComedy,
}

type Category struct {
	Name  string `json:"name"`
	Films []Film `json:"films"`
}

type SortKey string

const (
	SortNone   SortKey = ""
	SortTitle  SortKey = "title"
	SortRating SortKey = "rating"
	SortYear   SortKey = "year"
)

// ParseSortKey returns the key and whether it is one of title, rating or year.
func ParseSortKey(s string) (SortKey, bool) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortTitle, SortRating, SortYear:
		return k, true
	default:
		return SortNone, false
	}
}

// FilmForm is the add/edit submission. A zero ID asks for a new film; a known ID edits it.
type FilmForm struct {
	ID          int      `json:"id"`
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description"`
	Duration    string   `json:"duration"`
	ImageURL    string   `json:"image_url"`
	Rating      *float64 `json:"rating" validate:"required,gte=1,lte=10"`
	Year        *int     `json:"year" validate:"required,gte=1900,lte=2030"`
	Priority    string   `json:"watch_priority"`
}
