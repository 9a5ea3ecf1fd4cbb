// Package agent asks Gemini to comment on a simulation report.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

const systemInstruction = `
You are a personal-finance analyst. The user gives you the report of a
dollar-cost-averaging simulation: a savings account with daily compound
interest, periodically investing a fixed amount into a basket of
instruments. Explain the outcome in plain language: where the return came
from (interest vs market), whether the cadence left cash idle, and what a
different split between savings and investing might have changed. Do not
give personalized investment advice and do not invent numbers that are not
in the report.`

// Analyst is a single-purpose chat that explains simulation reports.
type Analyst struct {
	chat *genai.Chat
}

// New creates the Gemini client and opens the analyst chat. The client
// reads its API key from the environment (GEMINI_API_KEY).
func New(ctx context.Context) (*Analyst, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, err
	}
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return nil, err
	}
	return &Analyst{chat: chat}, nil
}

// Explain sends the rendered markdown report and returns the commentary.
func (a *Analyst) Explain(ctx context.Context, report string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: report})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
