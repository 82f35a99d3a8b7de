package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultGeminiModel = "gemini-1.5-flash"
const defaultAnthropicModel = "claude-sonnet-4-5-20250929"

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// nutritionPromptTemplate wraps the user message before it is sent to the
// generative provider. The formatting directives keep the answer renderable
// by the same chat UI that shows structured nutrition facts.
const nutritionPromptTemplate = "As a nutrition expert specializing in food composition and dietary information, please answer this question: %s. " +
	"IMPORTANT: Format your response with HTML tags for structure. " +
	"Use <br> for line breaks between paragraphs. " +
	"Use <strong>text</strong> for bold/headings and <em>text</em> for emphasis. " +
	"If you're providing nutrition facts, list them in a structured format with nutrient names and values clearly labeled. " +
	"For example: Calories: 100 kcal<br>Protein: 5g<br>Carbohydrates: 15g<br>Fat: 2g " +
	"Keep the total response concise and easy to scan."

// GenerativeClient produces free-text answers for questions the lookup
// pipeline could not satisfy.
type GenerativeClient struct {
	provider      string // "gemini" or "anthropic"
	model         string
	geminiAPIKey  string
	anthropicKey  string
	geminiBaseURL string
}

func NewGenerativeClient(cfg Config) *GenerativeClient {
	return &GenerativeClient{
		provider:      cfg.LLMProvider,
		model:         cfg.LLMModel,
		geminiAPIKey:  cfg.GeminiAPIKey,
		anthropicKey:  cfg.AnthropicAPIKey,
		geminiBaseURL: geminiBaseURL,
	}
}

// Configured reports whether the selected provider has a credential.
func (g *GenerativeClient) Configured() bool {
	if g == nil {
		return false
	}
	if g.provider == "anthropic" {
		return g.anthropicKey != ""
	}
	return g.geminiAPIKey != ""
}

// Answer wraps the user message in the nutrition prompt template and asks
// the configured provider for prose.
func (g *GenerativeClient) Answer(message string) (string, error) {
	prompt := fmt.Sprintf(nutritionPromptTemplate, message)

	switch g.provider {
	case "anthropic":
		model := g.model
		if model == "" {
			model = defaultAnthropicModel
		}
		log.Printf("llm answer provider=anthropic model=%s", model)
		return g.callAnthropic(model, prompt)
	default:
		model := g.model
		if model == "" {
			model = defaultGeminiModel
		}
		log.Printf("llm answer provider=gemini model=%s", model)
		return g.callGemini(model, prompt)
	}
}

// --- Anthropic ---

func (g *GenerativeClient) callAnthropic(model, prompt string) (string, error) {
	client := anthropic.NewClient(option.WithAPIKey(g.anthropicKey))

	message, err := client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 1024,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		log.Printf("llm anthropic error: %v", err)
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}

	for _, block := range message.Content {
		if block.Type == "text" {
			log.Printf("llm anthropic response size=%d tokens_in=%d tokens_out=%d", len(block.Text), message.Usage.InputTokens, message.Usage.OutputTokens)
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("no text content in Anthropic response")
}

// --- Gemini ---

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GenerativeClient) callGemini(model, prompt string) (string, error) {
	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s", g.geminiBaseURL, model, g.geminiAPIKey)
	req, err := http.NewRequest("POST", apiURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := externalHTTPClient.Do(req)
	if err != nil {
		log.Printf("llm gemini error: %v", err)
		return "", fmt.Errorf("Gemini API error: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(respBody, &geminiResp); err != nil {
		return "", fmt.Errorf("parsing Gemini response: %w", err)
	}

	if geminiResp.Error != nil {
		log.Printf("llm gemini api error: %s", geminiResp.Error.Message)
		return "", fmt.Errorf("Gemini API error: %s", geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no candidates in Gemini response")
	}

	text := geminiResp.Candidates[0].Content.Parts[0].Text
	log.Printf("llm gemini response size=%d", len(text))
	return text, nil
}
