package annotate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client annotates sentences through a JSON tagger service (a spaCy
// bridge or the glost-tagger command). One request per sentence,
// fail-fast: any error aborts the split, partial batch output is not
// meaningful.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient returns a Client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{BaseURL: baseURL, HTTP: http.DefaultClient}
}

type annotateRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type annotateResponse struct {
	Tokens []Token `json:"tokens"`
	Error  string  `json:"error,omitempty"`
}

// Annotate implements Annotator.
func (c *Client) Annotate(text, language string) ([]Token, error) {
	body, err := json.Marshal(annotateRequest{Text: text, Language: language})
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Post(c.BaseURL+"/api/annotate", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("annotation service: %w", err)
	}
	defer resp.Body.Close()

	var out annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("annotation service: %w", err)
	}

	if resp.StatusCode == http.StatusUnprocessableEntity {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotation service: status %d: %s", resp.StatusCode, out.Error)
	}

	// Index positions are assigned by the service; normalize lemmas
	// here so all backends agree on the comparison form.
	for i := range out.Tokens {
		out.Tokens[i].Lemma = NormalizeLemma(out.Tokens[i].Lemma)
	}
	return out.Tokens, nil
}
