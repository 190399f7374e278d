package insights

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/google/uuid"

	"recap/internal/analytics"
	"recap/internal/logging"
)

const coachInstructions = `
You are a League of Legends coach writing a year-end recap for one player.
You will receive the player's aggregated season statistics as JSON.

Respond with ONLY a JSON object, no prose around it, in this exact shape:
{"summary": "...", "strengths": ["..."], "improvements": ["..."], "funFact": "..."}

- summary: two sentences on the season, referencing concrete numbers.
- strengths: 2-4 short bullet points, each backed by a statistic.
- improvements: 2-4 short bullet points, each backed by a statistic. Never
  offer generic advice; every suggestion must reference a number from the
  profile.
- funFact: one playful sentence about a highlight match, streak or month.
Keep a light gaming tone. Do not invent statistics that are not in the input.
`

// BedrockGenerator asks an inline Bedrock agent for coaching text.
type BedrockGenerator struct {
	client *bedrockagentruntime.Client
	model  string
}

// NewBedrockGenerator builds a generator for the given foundation model or
// inference profile id.
func NewBedrockGenerator(cfg aws.Config, model string) *BedrockGenerator {
	return &BedrockGenerator{
		client: bedrockagentruntime.NewFromConfig(cfg),
		model:  model,
	}
}

// Generate serializes the profile, invokes the agent and parses its JSON
// reply. Any transport or parse failure surfaces as an error; callers fall
// back to the local generator.
func (g *BedrockGenerator) Generate(ctx context.Context, profile *analytics.PlayerAnalytics) (*Insights, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("marshal profile: %w", err)
	}

	sessionID := uuid.NewString()
	resp, err := g.client.InvokeInlineAgent(ctx, &bedrockagentruntime.InvokeInlineAgentInput{
		FoundationModel:         aws.String(g.model),
		Instruction:             aws.String(coachInstructions),
		SessionId:               aws.String(sessionID),
		InputText:               aws.String(string(payload)),
		IdleSessionTTLInSeconds: aws.Int32(600),
	})
	if err != nil {
		return nil, fmt.Errorf("invoke inline agent: %w", err)
	}

	stream := resp.GetStream()
	defer stream.Close()

	var sb strings.Builder
	for event := range stream.Events() {
		if chunk, ok := event.(*types.InlineAgentResponseStreamMemberChunk); ok {
			sb.Write(chunk.Value.Bytes)
		}
	}
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("agent response stream: %w", err)
	}

	out, err := parseModelReply(sb.String())
	if err != nil {
		logging.Logger().Warnf("unparseable model reply (%d bytes): %v", sb.Len(), err)
		return nil, err
	}
	return out, nil
}

// parseModelReply extracts the JSON object from the model's reply. Models
// occasionally wrap the object in stray text despite the instruction, so
// parse from the first '{' to the last '}'.
func parseModelReply(reply string) (*Insights, error) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in reply")
	}

	var out Insights
	if err := json.Unmarshal([]byte(reply[start:end+1]), &out); err != nil {
		return nil, fmt.Errorf("unmarshal insights: %w", err)
	}
	if out.Summary == "" {
		return nil, fmt.Errorf("model reply missing summary")
	}
	return &out, nil
}
