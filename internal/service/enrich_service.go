//go:generate mockery --name EnrichService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"strings"

	"vocab_forge/internal/lookup"
	"vocab_forge/internal/model"

	"github.com/google/uuid"
)

// Placeholder explanations reported when the translation service could not
// produce a distinct result.
const (
	CannotTranslateExplanation = "Could not translate this explanation."
	CannotTranslateWord        = "Could not translate this word."
)

type EnrichService interface {
	EnrichWords(ctx context.Context, userID uuid.UUID, req *model.EnrichRequest) (*model.EnrichResult, error)
}

type enrichService struct {
	dictionary lookup.Dictionary
	translator lookup.Translator
}

func NewEnrichService(dictionary lookup.Dictionary, translator lookup.Translator) EnrichService {
	return &enrichService{
		dictionary: dictionary,
		translator: translator,
	}
}

// splitWords tokenizes raw comma separated input. Blank tokens are dropped,
// duplicates are kept.
func splitWords(input string) []string {
	var words []string
	for _, token := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

func (s *enrichService) EnrichWords(ctx context.Context, userID uuid.UUID, req *model.EnrichRequest) (*model.EnrichResult, error) {
	words := splitWords(req.Words)
	if len(words) == 0 {
		return nil, model.NewAppError("INVALID_INPUT", "No valid words were provided.", "words", model.ErrInvalidInput)
	}

	result := &model.EnrichResult{
		Order:   words,
		Results: make(map[string][]model.EnrichedRecord, len(words)),
	}
	for _, word := range words {
		if _, seen := result.Results[word]; !seen {
			result.Results[word] = []model.EnrichedRecord{}
		}
		result.Results[word] = append(result.Results[word], s.enrichOne(ctx, word, &userID))
	}
	return result, nil
}

func (s *enrichService) enrichOne(ctx context.Context, word string, userID *uuid.UUID) model.EnrichedRecord {
	details, err := s.dictionary.Lookup(ctx, word, userID)
	if err != nil {
		// Unknown word. The word itself stands in for the definition and the
		// translation targets the word directly.
		definitionVI := CannotTranslateWord
		if translated := s.translator.Translate(ctx, word, userID); differsFrom(translated, word) {
			definitionVI = translated
		}
		return model.EnrichedRecord{
			WordType:     model.NotAvailable,
			DefinitionEN: word,
			DefinitionVI: definitionVI,
			ExampleEN:    model.NotAvailable,
			IPA:          model.NotAvailable,
		}
	}

	definitionVI := CannotTranslateExplanation
	if details.DefinitionEN != "" && !strings.EqualFold(details.DefinitionEN, model.NotAvailable) {
		if !strings.EqualFold(details.DefinitionEN, word) {
			if translated := s.translator.Translate(ctx, details.DefinitionEN, userID); differsFrom(translated, details.DefinitionEN) {
				definitionVI = translated
			}
		} else {
			// The definition degenerates to the word itself, so translate the
			// word instead of echoing it back.
			if translated := s.translator.Translate(ctx, word, userID); differsFrom(translated, word) {
				definitionVI = translated
			}
		}
	}

	return model.EnrichedRecord{
		WordType:     orNotAvailable(details.Type),
		DefinitionEN: details.DefinitionEN,
		DefinitionVI: definitionVI,
		ExampleEN:    orNotAvailable(details.ExampleEN),
		IPA:          orNotAvailable(details.IPA),
	}
}

// differsFrom reports whether a translation is usable, meaning non-blank and
// not just the source text echoed back.
func differsFrom(translated, source string) bool {
	if strings.TrimSpace(translated) == "" {
		return false
	}
	return !strings.EqualFold(strings.TrimSpace(translated), strings.TrimSpace(source))
}

func orNotAvailable(s string) string {
	if s == "" {
		return model.NotAvailable
	}
	return s
}
