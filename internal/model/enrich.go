package model

// NotAvailable marks an enrichment field the external services could not
// fill in.
const NotAvailable = "N/A"

// WordDetails is the normalized outcome of one dictionary lookup.
type WordDetails struct {
	Type         string
	DefinitionEN string
	ExampleEN    string
	IPA          string
}

type EnrichRequest struct {
	Words string `json:"words" validate:"required"`
}

// EnrichedRecord is one processed word ready for user review.
type EnrichedRecord struct {
	WordType     string `json:"word_type"`
	DefinitionEN string `json:"definition_en"`
	DefinitionVI string `json:"definition_vi"`
	ExampleEN    string `json:"example_en"`
	IPA          string `json:"ipa"`
}

// EnrichResult keeps every occurrence of every input word: Order lists
// the tokens as processed (duplicates intact) and Results appends one
// record per occurrence under the word's key.
type EnrichResult struct {
	Order   []string                    `json:"order"`
	Results map[string][]EnrichedRecord `json:"results"`
}
