// internal/lookup/dictionary_test.go
package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vocab_forge/internal/config"
	"vocab_forge/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAuditor captures audit records in memory.
type recordingAuditor struct {
	entries []*model.APILog
}

func (a *recordingAuditor) Record(ctx context.Context, entry *model.APILog) {
	a.entries = append(a.entries, entry)
}

func newDictionaryTestClient(serverURL string, auditor Auditor) Dictionary {
	cfg := &config.Config{}
	cfg.Dictionary.BaseURL = serverURL
	cfg.Dictionary.Timeout = 2 * time.Second
	return NewDictionaryClient(cfg, auditor)
}

func Test_dictionaryClient_Lookup_PrefersDefinitionWithExample(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cat", r.URL.Path)
		w.Write([]byte(`[{
			"phonetics": [{"text": ""}, {"text": "/kæt/"}],
			"meanings": [
				{"partOfSpeech": "noun", "definitions": [
					{"definition": "first definition without example"},
					{"definition": "second definition", "example": "an example sentence"}
				]}
			]
		}]`))
	}))
	defer server.Close()

	auditor := &recordingAuditor{}
	client := newDictionaryTestClient(server.URL, auditor)

	details, err := client.Lookup(context.Background(), "cat", nil)
	require.NoError(t, err)
	assert.Equal(t, "noun", details.Type)
	assert.Equal(t, "second definition", details.DefinitionEN)
	assert.Equal(t, "an example sentence", details.ExampleEN)
	assert.Equal(t, "/kæt/", details.IPA)

	require.Len(t, auditor.entries, 1)
	assert.Equal(t, APINameDictionary, auditor.entries[0].APIName)
	assert.True(t, auditor.entries[0].Success)
}

func Test_dictionaryClient_Lookup_FallsBackToFirstDefinition(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"phonetics": [],
			"meanings": [
				{"partOfSpeech": "verb", "definitions": [
					{"definition": "first plain definition"},
					{"definition": "second plain definition"}
				]}
			]
		}]`))
	}))
	defer server.Close()

	client := newDictionaryTestClient(server.URL, &recordingAuditor{})

	details, err := client.Lookup(context.Background(), "run", nil)
	require.NoError(t, err)
	assert.Equal(t, "verb", details.Type)
	assert.Equal(t, "first plain definition", details.DefinitionEN)
	assert.Empty(t, details.ExampleEN)
	assert.Empty(t, details.IPA)
}

func Test_dictionaryClient_Lookup_IPAOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"phonetics": [{"text": "/hm/"}], "meanings": []}]`))
	}))
	defer server.Close()

	auditor := &recordingAuditor{}
	client := newDictionaryTestClient(server.URL, auditor)

	// A pronunciation alone still counts as a hit.
	details, err := client.Lookup(context.Background(), "hm", nil)
	require.NoError(t, err)
	assert.Equal(t, NoDefinitionFound, details.DefinitionEN)
	assert.Equal(t, "/hm/", details.IPA)
	assert.Empty(t, details.Type)

	require.Len(t, auditor.entries, 1)
	assert.True(t, auditor.entries[0].Success)
}

func Test_dictionaryClient_Lookup_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	auditor := &recordingAuditor{}
	client := newDictionaryTestClient(server.URL, auditor)

	userID := uuid.New()
	_, err := client.Lookup(context.Background(), "gibberish", &userID)
	require.Error(t, err)

	require.Len(t, auditor.entries, 1)
	entry := auditor.entries[0]
	assert.False(t, entry.Success)
	require.NotNil(t, entry.StatusCode)
	assert.Equal(t, http.StatusNotFound, *entry.StatusCode)
	require.NotNil(t, entry.UserID)
	assert.Equal(t, userID, *entry.UserID)
}

func Test_dictionaryClient_Lookup_EmptyPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	auditor := &recordingAuditor{}
	client := newDictionaryTestClient(server.URL, auditor)

	_, err := client.Lookup(context.Background(), "ghost", nil)
	require.Error(t, err)
	require.Len(t, auditor.entries, 1)
	assert.False(t, auditor.entries[0].Success)
}
