package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"legalaid-backend/models"

	"github.com/google/generative-ai-go/genai"
)

const (
	defaultModel = "gemini-2.5-flash"

	// Each attempt gets its own deadline; the retry layer above decides how
	// many attempts to spend.
	requestTimeout = 60 * time.Second
)

// Client produces schema-validated structured answers from the Gemini API.
// It is stateless per invocation; every call builds its own prompt and
// validates the reply before returning it.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates a client around an initialized genai connection.
func NewClient(client *genai.Client) *Client {
	return &Client{
		client: client,
		model:  defaultModel,
	}
}

// GenerateAnalysis asks the model to triage a legal question and returns the
// validated structured assessment. Any transport, parse, or schema problem
// comes back as a *GenerationError.
func (c *Client) GenerateAnalysis(ctx context.Context, userPrompt, country string) (*models.LegalAnalysis, error) {
	raw, err := c.generate(ctx, prompt{
		system:      analysisSystemInstruction(country),
		history:     analysisFewShot(),
		user:        "User Query: " + userPrompt,
		temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}
	return decodeAnalysis(raw)
}

// GenerateEverydayLaws asks the model for commonly neglected everyday laws
// in the given country.
func (c *Client) GenerateEverydayLaws(ctx context.Context, country string) ([]models.EverydayLaw, error) {
	raw, err := c.generate(ctx, prompt{
		system:      lawsSystemPrompt,
		user:        "Provide commonly neglected everyday laws for " + country + ".",
		temperature: 0.2,
	})
	if err != nil {
		return nil, err
	}
	return decodeEverydayLaws(raw)
}

// GenerateLegalUpdates asks the model for recent major legal changes in the
// given country.
func (c *Client) GenerateLegalUpdates(ctx context.Context, country string) ([]models.LegalUpdate, error) {
	raw, err := c.generate(ctx, prompt{
		system:      updatesSystemInstruction(country),
		user:        "Give me the latest major legal updates for " + country + ".",
		temperature: 0.3,
	})
	if err != nil {
		return nil, err
	}
	return decodeLegalUpdates(raw)
}

// prompt is one fully assembled generation request: system instruction,
// optional few-shot history, the user turn, and a sampling temperature.
type prompt struct {
	system      string
	history     []*genai.Content
	user        string
	temperature float32
}

func (c *Client) generate(ctx context.Context, p prompt) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(p.system)},
	}
	model.SetTemperature(p.temperature)
	// JSON response mode keeps formatting drift to a minimum
	model.ResponseMIMEType = "application/json"

	session := model.StartChat()
	session.History = p.history

	resp, err := session.SendMessage(ctx, genai.Text(p.user))
	if err != nil {
		return "", transportError(err)
	}

	text := responseText(resp)
	if text == "" {
		return "", transportError(errors.New("model returned no text content"))
	}
	return text, nil
}

// responseText concatenates the text parts of every candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}
	return builder.String()
}
