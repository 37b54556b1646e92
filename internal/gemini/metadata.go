package gemini

import "google.golang.org/genai"

// GroundingMetadata is a nil-safe local view of the SDK's grounding payload.
// Handlers and extractors depend on these types instead of the SDK's so tests
// can build them directly.
type GroundingMetadata struct {
	Chunks   []GroundingChunk
	Supports []GroundingSupport
}

// GroundingChunk references a retrieved web document.
type GroundingChunk struct {
	Web *WebReference
}

// WebReference identifies the cited page.
type WebReference struct {
	URI   string
	Title string
}

// GroundingSupport ties a span of the reply text back to the chunks that
// support it.
type GroundingSupport struct {
	Segment          Segment
	ChunkIndices     []int
	ConfidenceScores []float32
}

// Segment is the supported span of reply text.
type Segment struct {
	Text string
}

func fromGenAI(gm *genai.GroundingMetadata) *GroundingMetadata {
	if gm == nil {
		return nil
	}

	out := &GroundingMetadata{}

	for _, chunk := range gm.GroundingChunks {
		var local GroundingChunk
		if chunk != nil && chunk.Web != nil {
			local.Web = &WebReference{
				URI:   chunk.Web.URI,
				Title: chunk.Web.Title,
			}
		}
		out.Chunks = append(out.Chunks, local)
	}

	for _, support := range gm.GroundingSupports {
		if support == nil {
			continue
		}
		local := GroundingSupport{
			ConfidenceScores: support.ConfidenceScores,
		}
		if support.Segment != nil {
			local.Segment = Segment{Text: support.Segment.Text}
		}
		for _, idx := range support.GroundingChunkIndices {
			local.ChunkIndices = append(local.ChunkIndices, int(idx))
		}
		out.Supports = append(out.Supports, local)
	}

	return out
}
