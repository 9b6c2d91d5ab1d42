package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/sandevgo/pdfchat/internal/core"
)

// Gemini wraps the hosted Gemini API. Generation temperature is pinned to 0
// so repeated workshop runs stay as reproducible as the provider allows.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Close() error {
	return g.client.Close()
}

func (g *Gemini) Generate(ctx context.Context, system string, parts []core.Part) (string, error) {
	m := g.newModel(system)

	resp, err := m.GenerateContent(ctx, toGenaiParts(parts)...)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return collectText(resp)
}

func (g *Gemini) Decide(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
	m := g.newModel(system)
	m.Tools = []*genai.Tool{retrievalTool()}

	resp, err := m.GenerateContent(ctx, toGenaiParts(parts)...)
	if err != nil {
		return core.Decision{}, fmt.Errorf("generate decision: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return core.Decision{}, fmt.Errorf("empty candidates in response")
	}

	var decision core.Decision
	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.FunctionCall:
			decision.Tool = core.ToolDecision{
				Kind: core.InvokeTool,
				Name: p.Name,
				Args: stringifyArgs(p.Args),
			}
		case genai.Text:
			text.WriteString(string(p))
		}
	}
	decision.Answer = text.String()
	return decision, nil
}

func (g *Gemini) newModel(system string) *genai.GenerativeModel {
	m := g.client.GenerativeModel(g.model)
	m.SetTemperature(0)
	if system != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(system)},
		}
	}
	return m
}

// retrievalTool declares the single registry entry to the model.
func retrievalTool() *genai.Tool {
	return &genai.Tool{
		FunctionDeclarations: []*genai.FunctionDeclaration{{
			Name: core.RetrievalToolName,
			Description: "Retrieve information using vector search to answer a user query. " +
				"Uses advanced embeddings for enhanced similarity matching.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"user_query": {
						Type:        genai.TypeString,
						Description: "Query string to use for vector search",
					},
				},
				Required: []string{"user_query"},
			},
		}},
	}
}

func toGenaiParts(parts []core.Part) []genai.Part {
	out := make([]genai.Part, 0, len(parts))
	for _, p := range parts {
		if p.IsImage() {
			out = append(out, genai.ImageData(imageFormat(p.MIME), p.Data))
			continue
		}
		if p.Text != "" {
			out = append(out, genai.Text(p.Text))
		}
	}
	return out
}

// imageFormat converts a MIME type to the bare format string the SDK wants.
func imageFormat(mime string) string {
	format := strings.TrimPrefix(mime, "image/")
	if format == "" {
		return "png"
	}
	return format
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty candidates in response")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String(), nil
}

func stringifyArgs(args map[string]any) map[string]string {
	out := make(map[string]string, len(args))
	for k, v := range args {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprintf("%v", v)
	}
	return out
}
