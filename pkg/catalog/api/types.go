package api

import "time"

type HealthStatus struct {
	Status     string                     `json:"status"`
	Version    string                     `json:"version,omitempty"`
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentStatus `json:"components,omitempty"`
}

type ComponentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// CreateComicRequest is the JSON body of POST /api/comics.
type CreateComicRequest struct {
	Title     string `json:"title"`
	Issue     string `json:"issue"`
	Publisher string `json:"publisher"`
	ImageURL  string `json:"imageUrl"`
}

type CleanupResponse struct {
	Message string    `json:"message"`
	Deleted int       `json:"deleted"`
	Before  time.Time `json:"before"`
}
