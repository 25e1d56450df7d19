package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Ahtty/diary-statistics/internal/llm"
)

// NarrativeService composes natural-language output from a digest. Both
// operations block until the external service answers; failures come back
// wrapped so the caller can show them without aborting the session.
type NarrativeService interface {
	// MonthlyNarrative returns the service's free-text summary verbatim.
	MonthlyNarrative(ctx context.Context, digest MonthlyDigest) (*Narrative, error)

	// MonthlyHighlights returns the structured highlights companion.
	MonthlyHighlights(ctx context.Context, digest MonthlyDigest) (*MonthlyHighlights, error)
}

type narrativeService struct {
	client llm.Client
}

// NewNarrativeService creates a NarrativeService backed by a completion
// client.
func NewNarrativeService(client llm.Client) NarrativeService {
	return &narrativeService{client: client}
}

var highlightsSchema = llm.GenerateSchema[MonthlyHighlights]()

func (s *narrativeService) MonthlyNarrative(ctx context.Context, digest MonthlyDigest) (*Narrative, error) {
	prompt, err := digestPrompt(digest)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		SystemPrompt: narrativeSystemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("generating monthly narrative: %w", err)
	}

	return &Narrative{Text: resp.Text, Model: resp.Model}, nil
}

func (s *narrativeService) MonthlyHighlights(ctx context.Context, digest MonthlyDigest) (*MonthlyHighlights, error) {
	prompt, err := digestPrompt(digest)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Complete(ctx, llm.CompleteRequest{
		SystemPrompt: highlightsSystemPrompt,
		UserPrompt:   prompt,
		Schema: &llm.ResponseSchema{
			Name:        "MonthlyHighlights",
			Description: "Structured highlights for one diary selection scope",
			Definition:  highlightsSchema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generating monthly highlights: %w", err)
	}

	highlights, err := llm.ExtractJSON[MonthlyHighlights](resp.Text)
	if err != nil {
		return nil, fmt.Errorf("generating monthly highlights: %w", err)
	}
	return &highlights, nil
}

// digestPrompt serializes the digest. The digest contains only slices and
// scalars, so the JSON encoding is byte-stable for identical input.
func digestPrompt(digest MonthlyDigest) (string, error) {
	b, err := json.MarshalIndent(digest, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing digest: %w", err)
	}
	return "Here is the diary digest:\n\n" + string(b), nil
}
