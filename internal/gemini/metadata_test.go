package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestFromGenAINil(t *testing.T) {
	assert.Nil(t, fromGenAI(nil))
}

func TestFromGenAIConvertsChunksAndSupports(t *testing.T) {
	in := &genai.GroundingMetadata{
		GroundingChunks: []*genai.GroundingChunk{
			{Web: &genai.GroundingChunkWeb{URI: "https://a.example", Title: "A"}},
			{Web: nil},
		},
		GroundingSupports: []*genai.GroundingSupport{
			{
				Segment:               &genai.Segment{Text: "cited span"},
				GroundingChunkIndices: []int32{0, 1},
				ConfidenceScores:      []float32{0.9, 0.4},
			},
			nil,
		},
	}

	out := fromGenAI(in)

	require.NotNil(t, out)
	require.Len(t, out.Chunks, 2)
	require.NotNil(t, out.Chunks[0].Web)
	assert.Equal(t, "https://a.example", out.Chunks[0].Web.URI)
	assert.Equal(t, "A", out.Chunks[0].Web.Title)
	assert.Nil(t, out.Chunks[1].Web)

	require.Len(t, out.Supports, 1)
	assert.Equal(t, "cited span", out.Supports[0].Segment.Text)
	assert.Equal(t, []int{0, 1}, out.Supports[0].ChunkIndices)
	assert.Equal(t, []float32{0.9, 0.4}, out.Supports[0].ConfidenceScores)
}

func TestFromGenAIMissingSegment(t *testing.T) {
	in := &genai.GroundingMetadata{
		GroundingSupports: []*genai.GroundingSupport{
			{GroundingChunkIndices: []int32{0}},
		},
	}

	out := fromGenAI(in)

	require.Len(t, out.Supports, 1)
	assert.Equal(t, "", out.Supports[0].Segment.Text)
}
