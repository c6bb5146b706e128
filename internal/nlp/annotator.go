package nlp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared/constant"

	"github.com/skilllens/skilllens/skills"
)

// OpenAIAnnotator extracts noun phrases and named entities using a chat
// model. It implements skills.Annotator and is safe for concurrent use.
type OpenAIAnnotator struct {
	client *openai.Client
	model  string
}

// NewOpenAIAnnotator creates an annotator backed by the OpenAI API.
func NewOpenAIAnnotator(apiKey string) *OpenAIAnnotator {
	client := openai.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &OpenAIAnnotator{
		client: &client,
		model:  "gpt-4o-mini",
	}
}

const annotateSystemPrompt = `You are a precise linguistic annotator. Extract noun phrases and named entities from the given text and return ONLY valid JSON.`

const annotateUserPrompt = `Annotate the following text. Return JSON in exactly this structure:

{
  "noun_phrases": string[] (noun chunks as they appear in the text),
  "entities": [{
    "text": string (entity span as it appears),
    "label": string (one of: PRODUCT, ORG, TECH, PERSON, GPE, OTHER)
  }]
}

IMPORTANT:
- Include every technology, tool, product, and organization mention
- Keep spans short (at most 5 words)
- Return ONLY the JSON, no explanatory text

Text:
%s`

// Annotate runs noun-phrase and entity extraction over the text.
func (a *OpenAIAnnotator) Annotate(ctx context.Context, text string) (*skills.Annotation, error) {
	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(annotateSystemPrompt),
			openai.UserMessage(fmt.Sprintf(annotateUserPrompt, text)),
		},
		Model: a.model,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: constant.JSONObject("json_object"),
			},
		},
		Temperature: openai.Float(0.0),
		MaxTokens:   openai.Int(2000),
	})
	if err != nil {
		return nil, fmt.Errorf("openai annotation error: %w", err)
	}

	if len(completion.Choices) == 0 {
		return nil, errors.New("no response from openai")
	}

	var ann skills.Annotation
	if err := json.Unmarshal([]byte(completion.Choices[0].Message.Content), &ann); err != nil {
		return nil, fmt.Errorf("failed to parse annotation JSON: %w", err)
	}

	return &ann, nil
}
