// Package sources turns grounding metadata into the cited-source list
// returned alongside each summary.
package sources

import (
	"strings"

	"search-relay/internal/gemini"
	"search-relay/internal/models"
)

// Extract builds the cited-source list from grounding metadata. Chunks without
// both a URI and a title are skipped, duplicate URIs keep their first title,
// and each source's snippet joins the text of every support that references
// its chunk. A nil metadata yields an empty, non-nil slice.
func Extract(metadata *gemini.GroundingMetadata) []models.WebSource {
	sources := make([]models.WebSource, 0)
	if metadata == nil {
		return sources
	}

	seen := make(map[string]bool)
	for i, chunk := range metadata.Chunks {
		if chunk.Web == nil || chunk.Web.URI == "" || chunk.Web.Title == "" {
			continue
		}
		if seen[chunk.Web.URI] {
			continue
		}
		seen[chunk.Web.URI] = true

		sources = append(sources, models.WebSource{
			Title:   chunk.Web.Title,
			URL:     chunk.Web.URI,
			Snippet: snippetFor(metadata.Supports, i),
		})
	}

	return sources
}

// snippetFor joins the segment text of every support citing the chunk index.
// Empty segment texts still take part in the join.
func snippetFor(supports []gemini.GroundingSupport, chunkIndex int) string {
	var parts []string
	for _, support := range supports {
		for _, idx := range support.ChunkIndices {
			if idx == chunkIndex {
				parts = append(parts, support.Segment.Text)
				break
			}
		}
	}
	return strings.Join(parts, " ")
}
