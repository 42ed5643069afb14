//go:generate mockery --name Translator --output ./mocks --outpkg mocks --case=underscore
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"vocab_forge/internal/config"
	"vocab_forge/internal/middleware"
	"vocab_forge/internal/model"

	"github.com/google/uuid"
)

// APINameTranslator identifies translation calls in the audit trail.
const APINameTranslator = "translation_api"

// Translator converts English text into the configured target language.
// Both methods fail soft: when the service is unreachable or the payload is
// unusable the input text comes back unchanged.
type Translator interface {
	Translate(ctx context.Context, text string, userID *uuid.UUID) string
	TranslateBatch(ctx context.Context, texts []string, userID *uuid.UUID) []string
}

type translateRequest struct {
	Q      interface{} `json:"q"`
	Source string      `json:"source"`
	Target string      `json:"target"`
	Format string      `json:"format"`
}

type translatorClient struct {
	url         string
	sourceLang  string
	targetLang  string
	client      *http.Client
	batchClient *http.Client
	auditor     Auditor
}

func NewTranslatorClient(cfg *config.Config, auditor Auditor) Translator {
	return &translatorClient{
		url:         cfg.Translator.URL,
		sourceLang:  cfg.Translator.SourceLang,
		targetLang:  cfg.Translator.TargetLang,
		client:      &http.Client{Timeout: cfg.Translator.Timeout},
		batchClient: &http.Client{Timeout: cfg.Translator.BatchTimeout},
		auditor:     auditor,
	}
}

func (c *translatorClient) Translate(ctx context.Context, text string, userID *uuid.UUID) string {
	// Blank input is returned unchanged without a call or an audit record.
	if strings.TrimSpace(text) == "" {
		return text
	}

	audit := &model.APILog{APIName: APINameTranslator, UserID: userID}
	requestDetails := fmt.Sprintf("q=%s", text)
	audit.RequestDetails = &requestDetails
	defer c.auditor.Record(ctx, audit)

	var result struct {
		TranslatedText string `json:"translatedText"`
	}
	if err := c.post(ctx, c.client, text, audit, &result); err != nil {
		return text
	}
	if result.TranslatedText == "" {
		msg := "empty translation in response"
		audit.ErrorMessage = &msg
		audit.Success = false
		return text
	}

	audit.Success = true
	return result.TranslatedText
}

func (c *translatorClient) TranslateBatch(ctx context.Context, texts []string, userID *uuid.UUID) []string {
	if len(texts) == 0 {
		return texts
	}

	audit := &model.APILog{APIName: APINameTranslator, UserID: userID}
	requestDetails := fmt.Sprintf("batch of %d texts", len(texts))
	audit.RequestDetails = &requestDetails
	defer c.auditor.Record(ctx, audit)

	var result struct {
		TranslatedTexts []string `json:"translatedTexts"`
	}
	if err := c.post(ctx, c.batchClient, texts, audit, &result); err != nil {
		return texts
	}

	// A response of the wrong shape cannot be mapped back to its inputs.
	if len(result.TranslatedTexts) != len(texts) {
		msg := fmt.Sprintf("expected %d translations, got %d", len(texts), len(result.TranslatedTexts))
		audit.ErrorMessage = &msg
		audit.Success = false
		return texts
	}

	audit.Success = true
	return result.TranslatedTexts
}

func (c *translatorClient) post(ctx context.Context, client *http.Client, q interface{}, audit *model.APILog, out interface{}) error {
	logger := middleware.GetLogger(ctx)

	payload := translateRequest{
		Q:      q,
		Source: c.sourceLang,
		Target: c.targetLang,
		Format: "text",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		msg := err.Error()
		audit.ErrorMessage = &msg
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		msg := err.Error()
		audit.ErrorMessage = &msg
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		logger.Warn("Translation request failed", "error", err)
		msg := err.Error()
		audit.ErrorMessage = &msg
		return err
	}
	defer resp.Body.Close()

	audit.StatusCode = &resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("unexpected status %d", resp.StatusCode)
		audit.ErrorMessage = &msg
		return fmt.Errorf("translatorClient.post: %s", msg)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Warn("Translation response malformed", "error", err)
		msg := err.Error()
		audit.ErrorMessage = &msg
		return err
	}
	return nil
}
