package classifier

import (
	"context"
	"errors"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	statex "github.com/jirasak/zoom-support-agent/agent/state"
	toolx "github.com/jirasak/zoom-support-agent/agent/tool"
)

type fakeToolCallingModel struct {
	responses []*schema.Message
	err       error
	idx       int
}

func (f *fakeToolCallingModel) Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.idx >= len(f.responses) {
		return nil, errors.New("no fake response left")
	}
	msg := f.responses[f.idx]
	f.idx++
	return msg, nil
}

func (f *fakeToolCallingModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented in fake model")
}

func (f *fakeToolCallingModel) WithTools(tools []*schema.ToolInfo) (einomodel.ToolCallingChatModel, error) {
	return f, nil
}

func TestClassifyToolCallsBecomeRoutePlan(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						ID:   "call_1",
						Type: "function",
						Function: schema.FunctionCall{
							Name:      toolx.ToolProductLookup,
							Arguments: `{"query":"zoom h6"}`,
						},
					},
					{
						ID:   "call_2",
						Type: "function",
						Function: schema.FunctionCall{
							Name:      toolx.ToolGearSearch,
							Arguments: `{"query":"compatible mics"}`,
						},
					},
				},
			},
		},
	}

	oracle, err := NewLLM(context.Background(), fake, "routing prompt")
	if err != nil {
		t.Fatalf("NewLLM() error = %v", err)
	}

	plan, err := oracle.Classify(context.Background(), contractx.ClassifyRequest{
		Query: "h6 specs and mic recommendations",
	})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if plan.DirectReply != "" {
		t.Fatalf("unexpected direct reply: %q", plan.DirectReply)
	}
	if len(plan.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(plan.Calls))
	}
	if plan.Calls[0].Tool != toolx.ToolProductLookup {
		t.Fatalf("unexpected first tool: %s", plan.Calls[0].Tool)
	}
	if plan.Calls[0].StringArg("query") != "zoom h6" {
		t.Fatalf("unexpected args: %#v", plan.Calls[0].Args)
	}
	if plan.Calls[1].Tool != toolx.ToolGearSearch {
		t.Fatalf("unexpected second tool: %s", plan.Calls[1].Tool)
	}
}

func TestClassifyPlainTextBecomesDirectReply(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{Role: schema.Assistant, Content: "Hello! How can I help with your Zoom gear today?"},
		},
	}

	oracle, err := NewLLM(context.Background(), fake, "routing prompt")
	if err != nil {
		t.Fatalf("NewLLM() error = %v", err)
	}

	plan, err := oracle.Classify(context.Background(), contractx.ClassifyRequest{Query: "hi"})
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if len(plan.Calls) != 0 {
		t.Fatalf("expected no calls, got %#v", plan.Calls)
	}
	if plan.DirectReply == "" {
		t.Fatal("expected direct reply")
	}
}

func TestClassifyUnknownToolIsSchemaViolation(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						ID:   "call_1",
						Type: "function",
						Function: schema.FunctionCall{
							Name:      "billing.refund",
							Arguments: `{}`,
						},
					},
				},
			},
		},
	}

	oracle, err := NewLLM(context.Background(), fake, "routing prompt")
	if err != nil {
		t.Fatalf("NewLLM() error = %v", err)
	}

	_, err = oracle.Classify(context.Background(), contractx.ClassifyRequest{Query: "refund me"})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestClassifyMalformedArgsIsSchemaViolation(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{
		responses: []*schema.Message{
			{
				Role: schema.Assistant,
				ToolCalls: []schema.ToolCall{
					{
						ID:   "call_1",
						Type: "function",
						Function: schema.FunctionCall{
							Name:      toolx.ToolProductLookup,
							Arguments: `{"query":`,
						},
					},
				},
			},
		},
	}

	oracle, err := NewLLM(context.Background(), fake, "routing prompt")
	if err != nil {
		t.Fatalf("NewLLM() error = %v", err)
	}

	_, err = oracle.Classify(context.Background(), contractx.ClassifyRequest{Query: "h6 specs"})
	if !errors.Is(err, contractx.ErrSchemaViolation) {
		t.Fatalf("expected ErrSchemaViolation, got %v", err)
	}
}

func TestClassifyEmptyQueryRejected(t *testing.T) {
	t.Parallel()

	oracle, err := NewLLM(context.Background(), &fakeToolCallingModel{}, "routing prompt")
	if err != nil {
		t.Fatalf("NewLLM() error = %v", err)
	}

	_, err = oracle.Classify(context.Background(), contractx.ClassifyRequest{Query: "   "})
	if !errors.Is(err, contractx.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestClassifyModelErrorWrapped(t *testing.T) {
	t.Parallel()

	fake := &fakeToolCallingModel{err: errors.New("upstream down")}

	oracle, err := NewLLM(context.Background(), fake, "routing prompt")
	if err != nil {
		t.Fatalf("NewLLM() error = %v", err)
	}

	_, err = oracle.Classify(context.Background(), contractx.ClassifyRequest{Query: "h6"})
	if !errors.Is(err, contractx.ErrModelInvoke) {
		t.Fatalf("expected ErrModelInvoke, got %v", err)
	}
}

func TestNewLLMEmptyPromptRejected(t *testing.T) {
	t.Parallel()

	_, err := NewLLM(context.Background(), &fakeToolCallingModel{}, "  ")
	if !errors.Is(err, contractx.ErrPromptMissing) {
		t.Fatalf("expected ErrPromptMissing, got %v", err)
	}
}

func TestSummarizeSessionCapsHistory(t *testing.T) {
	t.Parallel()

	st := statex.NewSessionState("s1", "a@example.com", timeFixed())
	for i := 0; i < 8; i++ {
		st.AppendTurn("q", "r", timeFixed())
	}

	summary := summarizeSession(st)
	history, ok := summary["history"].([]map[string]string)
	if !ok {
		t.Fatalf("unexpected history type: %T", summary["history"])
	}
	if len(history) != recentTurnsInPayload {
		t.Fatalf("expected %d turns in payload, got %d", recentTurnsInPayload, len(history))
	}
}
