package video

import (
	"net/url"
	"strings"
	"time"
)

// CreateVideoDTO is the transport shape for publishing a video.
type CreateVideoDTO struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	PublishedAt time.Time `json:"published_at"`
}

// ValidationError represents a simple validation error from DTO validation.
type ValidationError struct {
	Msg string
}

func (v ValidationError) Error() string { return v.Msg }

func (d CreateVideoDTO) Validate() error {
	if d.Title == "" {
		return ValidationError{Msg: "El título es obligatorio"}
	}
	if d.URL == "" {
		return ValidationError{Msg: "La URL es obligatoria"}
	}
	parsed, err := url.Parse(d.URL)
	if err != nil || !strings.HasPrefix(parsed.Scheme, "http") || parsed.Host == "" {
		return ValidationError{Msg: "La URL no es válida"}
	}
	if d.Category == "" {
		return ValidationError{Msg: "La categoría es obligatoria"}
	}
	return nil
}
