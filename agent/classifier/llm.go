// Package classifier implements the external classification oracle: the
// boundary that decides which support handlers answer a query. Routing
// is fully delegated to a hosted model; the package only carries the
// instruction prompt and maps the model's tool calls to a route plan.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	statex "github.com/jirasak/zoom-support-agent/agent/state"
	toolx "github.com/jirasak/zoom-support-agent/agent/tool"
)

const recentTurnsInPayload = 5

// LLM routes queries through an OpenAI-compatible tool-calling chat
// model. Tool calls in the model's reply become the route plan; a plain
// text reply becomes a direct answer.
type LLM struct {
	runner  compose.Runnable[map[string]any, *schema.Message]
	allowed map[string]struct{}
}

var _ contractx.Classifier = (*LLM)(nil)

func NewLLM(ctx context.Context, chatModel einomodel.ToolCallingChatModel, systemPrompt string) (*LLM, error) {
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: classifier system prompt", contractx.ErrPromptMissing)
	}

	toolModel, err := chatModel.WithTools(toolx.Infos())
	if err != nil {
		return nil, fmt.Errorf("%w: bind routing tools: %v", contractx.ErrModelInvoke, err)
	}

	runner, err := compileRoutingGraph(ctx, toolModel, systemPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: compile routing graph: %v", contractx.ErrModelInvoke, err)
	}

	return &LLM{
		runner:  runner,
		allowed: toolx.Names(),
	}, nil
}

func (c *LLM) Classify(ctx context.Context, req contractx.ClassifyRequest) (contractx.RoutePlan, error) {
	if strings.TrimSpace(req.Query) == "" {
		return contractx.RoutePlan{}, fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}

	payload, err := json.Marshal(classifyPayload(req))
	if err != nil {
		return contractx.RoutePlan{}, fmt.Errorf("%w: marshal classify payload: %v", contractx.ErrValidation, err)
	}

	msg, err := c.runner.Invoke(ctx, map[string]any{
		"input": string(payload),
	})
	if err != nil {
		return contractx.RoutePlan{}, fmt.Errorf("%w: classify invoke: %v", contractx.ErrModelInvoke, err)
	}
	if msg == nil {
		return contractx.RoutePlan{}, fmt.Errorf("%w: empty classify response", contractx.ErrSchemaViolation)
	}

	return planFromMessage(msg, c.allowed)
}

func classifyPayload(req contractx.ClassifyRequest) map[string]any {
	return map[string]any{
		"query":          req.Query,
		"customer_email": req.CustomerEmail,
		"session":        summarizeSession(req.Session),
	}
}

func summarizeSession(st *statex.SessionState) map[string]any {
	if st == nil {
		return map[string]any{}
	}

	turns := st.RecentTurns(recentTurnsInPayload)
	history := make([]map[string]string, 0, len(turns))
	for _, turn := range turns {
		history = append(history, map[string]string{
			"query": turn.Query,
			"reply": turn.Reply,
		})
	}

	return map[string]any{
		"customer_email":           st.CustomerEmail,
		"history":                  history,
		"last_product_query":       st.LastProductQuery,
		"last_compatibility_query": st.LastCompatibilityQuery,
		"last_warranty_check":      st.LastWarrantyCheck,
	}
}

func planFromMessage(msg *schema.Message, allowed map[string]struct{}) (contractx.RoutePlan, error) {
	calls, err := toToolRequests(msg.ToolCalls)
	if err != nil {
		return contractx.RoutePlan{}, err
	}

	if len(calls) == 0 {
		content := strings.TrimSpace(msg.Content)
		if content == "" {
			return contractx.RoutePlan{}, fmt.Errorf("%w: model returned neither tool calls nor text", contractx.ErrSchemaViolation)
		}
		return contractx.RoutePlan{DirectReply: content}, nil
	}

	for _, call := range calls {
		if _, ok := allowed[call.Tool]; !ok {
			return contractx.RoutePlan{}, fmt.Errorf("%w: tool=%s is not a known handler", contractx.ErrSchemaViolation, call.Tool)
		}
	}

	return contractx.RoutePlan{Calls: calls}, nil
}

func toToolRequests(calls []schema.ToolCall) ([]contractx.ToolRequest, error) {
	if len(calls) == 0 {
		return nil, nil
	}
	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		name := strings.TrimSpace(call.Function.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
		}

		args := map[string]any{}
		rawArgs := strings.TrimSpace(call.Function.Arguments)
		if rawArgs != "" {
			if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
				return nil, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, name, err)
			}
		}

		reqs = append(reqs, contractx.ToolRequest{
			Tool: name,
			Args: args,
		})
	}
	return reqs, nil
}
