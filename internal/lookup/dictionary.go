//go:generate mockery --name Dictionary --output ./mocks --outpkg mocks --case=underscore
package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"vocab_forge/internal/config"
	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"

	"github.com/google/uuid"
)

// APINameDictionary identifies dictionary calls in the audit trail.
const APINameDictionary = "dictionary_api"

// NoDefinitionFound is reported when the dictionary knows the word but
// carries no textual definition for it.
const NoDefinitionFound = "No definition found."

// Dictionary resolves a single word into its lexical details.
type Dictionary interface {
	Lookup(ctx context.Context, word string, userID *uuid.UUID) (*model.WordDetails, error)
}

// dictionaryEntry mirrors the relevant parts of the dictionaryapi.dev payload.
type dictionaryEntry struct {
	Phonetics []struct {
		Text string `json:"text"`
	} `json:"phonetics"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
			Example    string `json:"example"`
		} `json:"definitions"`
	} `json:"meanings"`
}

type dictionaryClient struct {
	baseURL string
	client  *http.Client
	auditor Auditor
}

func NewDictionaryClient(cfg *config.Config, auditor Auditor) Dictionary {
	return &dictionaryClient{
		baseURL: cfg.Dictionary.BaseURL,
		client:  &http.Client{Timeout: cfg.Dictionary.Timeout},
		auditor: auditor,
	}
}

func (c *dictionaryClient) Lookup(ctx context.Context, word string, userID *uuid.UUID) (*model.WordDetails, error) {
	logger := middleware.GetLogger(ctx)

	audit := &model.APILog{
		APIName: APINameDictionary,
		UserID:  userID,
	}
	requestDetails := fmt.Sprintf("word=%s", word)
	audit.RequestDetails = &requestDetails
	defer c.auditor.Record(ctx, audit)

	endpoint := c.baseURL + "/" + url.PathEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		msg := err.Error()
		audit.ErrorMessage = &msg
		return nil, fmt.Errorf("dictionaryClient.Lookup: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn("Dictionary request failed", "word", word, "error", err)
		msg := err.Error()
		audit.ErrorMessage = &msg
		return nil, fmt.Errorf("dictionaryClient.Lookup: %w", err)
	}
	defer resp.Body.Close()

	audit.StatusCode = &resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		audit.ErrorMessage = &msg
		return nil, fmt.Errorf("dictionaryClient.Lookup: %s", msg)
	}

	var entries []dictionaryEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		logger.Warn("Dictionary response malformed", "word", word, "error", err)
		msg := err.Error()
		audit.ErrorMessage = &msg
		return nil, fmt.Errorf("dictionaryClient.Lookup: %w", err)
	}

	details := extractWordDetails(entries)
	if details == nil {
		msg := "no usable definition or pronunciation"
		audit.ErrorMessage = &msg
		return nil, fmt.Errorf("dictionaryClient.Lookup: %s", msg)
	}

	audit.Success = true
	return details, nil
}

// extractWordDetails picks the best definition from the first entry of the
// payload. The first definition that carries an example sentence wins; with no
// examples anywhere the first definition in document order is used. Returns
// nil when the payload has neither a definition nor a pronunciation.
func extractWordDetails(entries []dictionaryEntry) *model.WordDetails {
	if len(entries) == 0 {
		return nil
	}
	entry := entries[0]

	var ipa string
	for _, ph := range entry.Phonetics {
		if ph.Text != "" {
			ipa = ph.Text
			break
		}
	}

	var firstWithoutExample *model.WordDetails
	for _, meaning := range entry.Meanings {
		for _, def := range meaning.Definitions {
			if def.Definition == "" {
				continue
			}
			details := &model.WordDetails{
				Type:         meaning.PartOfSpeech,
				DefinitionEN: def.Definition,
				ExampleEN:    def.Example,
				IPA:          ipa,
			}
			if def.Example != "" {
				return details
			}
			if firstWithoutExample == nil {
				firstWithoutExample = details
			}
		}
	}
	if firstWithoutExample != nil {
		return firstWithoutExample
	}

	if ipa == "" {
		return nil
	}
	return &model.WordDetails{DefinitionEN: NoDefinitionFound, IPA: ipa}
}
