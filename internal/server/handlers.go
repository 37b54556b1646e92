package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"search-relay/internal/cache"
	apierrors "search-relay/internal/common/errors"
	"search-relay/internal/common/metrics"
	"search-relay/internal/common/validation"
	"search-relay/internal/gemini"
	"search-relay/internal/models"
	"search-relay/internal/sources"
)

const (
	searchFallback   = "Failed to process search query"
	followUpFallback = "An error occurred while processing your follow-up question"
)

// handleSearch opens a new grounded conversation for the query, registers it
// for follow-ups, and returns the rendered summary with cited sources.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		s.errs.WriteError(w, r, apierrors.NewMissingQueryError("q"))
		return
	}

	s.log.Info("Received search query", map[string]interface{}{"query": query})

	if entry, ok := s.cache.Get(ctx, query); ok {
		if resp, err := s.respondFromCache(ctx, query, entry); err == nil {
			s.writeJSON(w, http.StatusOK, resp)
			return
		} else {
			s.log.Warn("Cache replay failed, falling back to live query", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	conv, err := s.gemini.StartConversation(ctx, nil)
	if err != nil {
		s.failUpstream(w, r, "search", err, searchFallback)
		return
	}

	result, err := conv.SendMessage(ctx, query)
	if err != nil {
		s.failUpstream(w, r, "search", err, searchFallback)
		return
	}
	s.recordUpstream(ctx, "ok")

	cited := sources.Extract(result.Metadata)

	summary, err := s.formatter.ToHTML(result.Text)
	if err != nil {
		s.errs.WriteError(w, r, apierrors.NewUpstreamError(err, searchFallback))
		return
	}

	s.cache.Set(ctx, query, &cache.Entry{RawText: result.Text, Sources: cited})

	s.writeJSON(w, http.StatusOK, models.SearchResponse{
		SessionID: s.sessions.Register(conv),
		Summary:   summary,
		Sources:   cited,
	})
}

// respondFromCache replays a cached first turn. The conversation is re-seeded
// with the cached exchange so the returned session still accepts follow-ups.
func (s *Server) respondFromCache(ctx context.Context, query string, entry *cache.Entry) (*models.SearchResponse, error) {
	conv, err := s.gemini.StartConversation(ctx, []gemini.Turn{
		{Role: "user", Text: query},
		{Role: "model", Text: entry.RawText},
	})
	if err != nil {
		return nil, err
	}

	summary, err := s.formatter.ToHTML(entry.RawText)
	if err != nil {
		return nil, err
	}

	return &models.SearchResponse{
		SessionID: s.sessions.Register(conv),
		Summary:   summary,
		Sources:   entry.Sources,
	}, nil
}

// handleFollowUp continues a registered conversation with another query.
func (s *Server) handleFollowUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var body map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.errs.WriteError(w, r, apierrors.NewInvalidBodyError(
			"Both sessionId and query are required", err.Error()))
		return
	}

	result, err := validation.ValidateFollowUp(body)
	if err != nil {
		s.errs.WriteError(w, r, apierrors.NewUpstreamError(err, followUpFallback))
		return
	}
	if !result.Valid {
		s.errs.WriteError(w, r, apierrors.NewInvalidBodyError(
			"Both sessionId and query are required",
			strings.Join(result.GetErrorMessages(), "; ")))
		return
	}

	req := models.FollowUpRequest{
		SessionID: body["sessionId"].(string),
		Query:     body["query"].(string),
	}

	conv, ok := s.sessions.Lookup(req.SessionID)
	if !ok {
		s.errs.WriteError(w, r, apierrors.NewSessionNotFoundError(req.SessionID))
		return
	}

	reply, err := conv.SendMessage(ctx, req.Query)
	if err != nil {
		s.failUpstream(w, r, "follow-up", err, followUpFallback)
		return
	}
	s.recordUpstream(ctx, "ok")

	cited := sources.Extract(reply.Metadata)

	summary, err := s.formatter.ToHTML(reply.Text)
	if err != nil {
		s.errs.WriteError(w, r, apierrors.NewUpstreamError(err, followUpFallback))
		return
	}

	s.writeJSON(w, http.StatusOK, models.FollowUpResponse{
		Summary: summary,
		Sources: cited,
	})
}

func (s *Server) failUpstream(w http.ResponseWriter, r *http.Request, endpoint string, err error, fallback string) {
	metrics.RelayUpstreamFailures.WithLabelValues(endpoint).Inc()
	s.recordUpstream(r.Context(), "error")

	// Already-typed errors keep their own status and message.
	if apiErr, ok := err.(*apierrors.APIError); ok {
		s.errs.WriteError(w, r, apiErr)
		return
	}
	s.errs.WriteError(w, r, apierrors.NewUpstreamError(err, fallback))
}

func (s *Server) recordUpstream(ctx context.Context, outcome string) {
	if s.obs != nil {
		s.obs.RecordUpstreamCall(ctx, outcome)
	}
}
