// internal/service/enrich_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"vocab_forge/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDictionary serves canned lookups; unknown words miss.
type fakeDictionary struct {
	entries map[string]*model.WordDetails
	calls   []string
}

func (f *fakeDictionary) Lookup(ctx context.Context, word string, userID *uuid.UUID) (*model.WordDetails, error) {
	f.calls = append(f.calls, word)
	if details, ok := f.entries[word]; ok {
		copied := *details
		return &copied, nil
	}
	return nil, errors.New("no usable definition or pronunciation")
}

// fakeTranslator maps known texts; anything else echoes back unchanged,
// which is the fail-soft contract.
type fakeTranslator struct {
	translations map[string]string
	calls        []string
}

func (f *fakeTranslator) Translate(ctx context.Context, text string, userID *uuid.UUID) string {
	f.calls = append(f.calls, text)
	if translated, ok := f.translations[text]; ok {
		return translated
	}
	return text
}

func (f *fakeTranslator) TranslateBatch(ctx context.Context, texts []string, userID *uuid.UUID) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = f.Translate(ctx, text, userID)
	}
	return out
}

func Test_enrichService_EnrichWords(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	dict := &fakeDictionary{entries: map[string]*model.WordDetails{
		"cat": {
			Type:         "noun",
			DefinitionEN: "a small domesticated feline",
			ExampleEN:    "the cat sat on the mat",
			IPA:          "/kæt/",
		},
	}}
	trans := &fakeTranslator{translations: map[string]string{
		"a small domesticated feline": "một con mèo nhỏ đã thuần hóa",
		"gibberishword":               "gibberishword", // echo, no real translation
	}}
	svc := NewEnrichService(dict, trans)

	result, err := svc.EnrichWords(ctx, userID, &model.EnrichRequest{Words: "cat, gibberishword"})
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "gibberishword"}, result.Order)

	catRecords := result.Results["cat"]
	require.Len(t, catRecords, 1)
	assert.Equal(t, "noun", catRecords[0].WordType)
	assert.Equal(t, "a small domesticated feline", catRecords[0].DefinitionEN)
	assert.Equal(t, "một con mèo nhỏ đã thuần hóa", catRecords[0].DefinitionVI)
	assert.Equal(t, "the cat sat on the mat", catRecords[0].ExampleEN)
	assert.Equal(t, "/kæt/", catRecords[0].IPA)

	// The miss falls back to the word itself plus placeholders.
	missRecords := result.Results["gibberishword"]
	require.Len(t, missRecords, 1)
	assert.Equal(t, model.NotAvailable, missRecords[0].WordType)
	assert.Equal(t, "gibberishword", missRecords[0].DefinitionEN)
	assert.Equal(t, CannotTranslateWord, missRecords[0].DefinitionVI)
	assert.Equal(t, model.NotAvailable, missRecords[0].ExampleEN)
	assert.Equal(t, model.NotAvailable, missRecords[0].IPA)
}

func Test_enrichService_EnrichWords_DuplicatesPreserved(t *testing.T) {
	ctx := context.Background()
	dict := &fakeDictionary{entries: map[string]*model.WordDetails{}}
	trans := &fakeTranslator{}
	svc := NewEnrichService(dict, trans)

	result, err := svc.EnrichWords(ctx, uuid.New(), &model.EnrichRequest{Words: "echo, echo, echo"})
	require.NoError(t, err)

	assert.Equal(t, []string{"echo", "echo", "echo"}, result.Order)
	assert.Len(t, result.Results["echo"], 3)
	// Every occurrence triggers its own lookup.
	assert.Len(t, dict.calls, 3)
}

func Test_enrichService_EnrichWords_DefinitionEqualsWord(t *testing.T) {
	ctx := context.Background()
	dict := &fakeDictionary{entries: map[string]*model.WordDetails{
		"solo": {Type: "noun", DefinitionEN: "Solo"},
	}}
	trans := &fakeTranslator{translations: map[string]string{
		"solo": "đơn độc",
	}}
	svc := NewEnrichService(dict, trans)

	result, err := svc.EnrichWords(ctx, uuid.New(), &model.EnrichRequest{Words: "solo"})
	require.NoError(t, err)

	records := result.Results["solo"]
	require.Len(t, records, 1)
	// The degenerate definition redirects translation to the word itself.
	assert.Equal(t, "đơn độc", records[0].DefinitionVI)
	assert.Equal(t, []string{"solo"}, trans.calls)
}

func Test_enrichService_EnrichWords_UntranslatableDefinition(t *testing.T) {
	ctx := context.Background()
	dict := &fakeDictionary{entries: map[string]*model.WordDetails{
		"stone": {Type: "noun", DefinitionEN: "a hard mineral mass"},
	}}
	// The translator echoes everything back, as it does on outage.
	trans := &fakeTranslator{}
	svc := NewEnrichService(dict, trans)

	result, err := svc.EnrichWords(ctx, uuid.New(), &model.EnrichRequest{Words: "stone"})
	require.NoError(t, err)

	records := result.Results["stone"]
	require.Len(t, records, 1)
	assert.Equal(t, CannotTranslateExplanation, records[0].DefinitionVI)
}

func Test_enrichService_EnrichWords_BlankInput(t *testing.T) {
	ctx := context.Background()
	dict := &fakeDictionary{}
	trans := &fakeTranslator{}
	svc := NewEnrichService(dict, trans)

	_, err := svc.EnrichWords(ctx, uuid.New(), &model.EnrichRequest{Words: " , , "})
	assert.ErrorIs(t, err, model.ErrInvalidInput)
	// Nothing was looked up for blank tokens.
	assert.Empty(t, dict.calls)
	assert.Empty(t, trans.calls)
}

func Test_splitWords(t *testing.T) {
	assert.Equal(t, []string{"cat", "dog"}, splitWords(" cat , dog "))
	assert.Equal(t, []string{"a b"}, splitWords("a b"))
	assert.Nil(t, splitWords(",,  ,"))
}
