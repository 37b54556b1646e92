// Package models defines the wire-level request and response shapes for the
// relay API.
package models

// WebSource is a single cited web page backing part of a summary.
type WebSource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
}

// SearchResponse is the body returned by GET /api/search.
type SearchResponse struct {
	SessionID string      `json:"sessionId"`
	Summary   string      `json:"summary"`
	Sources   []WebSource `json:"sources"`
}

// FollowUpRequest is the body accepted by POST /api/follow-up.
type FollowUpRequest struct {
	SessionID string `json:"sessionId"`
	Query     string `json:"query"`
}

// FollowUpResponse is the body returned by POST /api/follow-up. It omits the
// session identifier since the caller already holds it.
type FollowUpResponse struct {
	Summary string      `json:"summary"`
	Sources []WebSource `json:"sources"`
}

// ErrorResponse is the body returned on any handled failure.
type ErrorResponse struct {
	Message string `json:"message"`
}
