package coordinator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	statex "github.com/jirasak/zoom-support-agent/agent/state"
	toolx "github.com/jirasak/zoom-support-agent/agent/tool"
)

var (
	ErrInvalidQuery   = errors.New("query is empty")
	ErrInvalidSession = errors.New("session id is empty")
)

// fallbackReply covers plans whose every handler invocation failed.
const fallbackReply = "I wasn't able to find anything for that request. " +
	"Could you share more detail about the Zoom product or question, " +
	"or contact support@zoom-na.com for direct assistance?"

type GraphInput struct {
	SessionID string
	Query     string
	Email     string
}

type GraphOutput struct {
	Reply string
}

// GraphState flows through the per-turn graph, accumulating the
// session, the classifier's plan, and the handler results.
type GraphState struct {
	SessionID string
	Query     string
	Email     string
	Now       time.Time

	Session *statex.SessionState
	Plan    contractx.RoutePlan
	Results []contractx.ToolResult

	Reply string
}

func validateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	query := strings.TrimSpace(in.Query)
	if query == "" {
		return nil, ErrInvalidQuery
	}

	return &GraphState{
		SessionID: sessionID,
		Query:     query,
		Email:     strings.TrimSpace(in.Email),
		Now:       nowFn().UTC(),
	}, nil
}

func loadOrCreateSession(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	st, err := store.Load(ctx, in.SessionID)
	if err != nil {
		if !errors.Is(err, statex.ErrStateNotFound) {
			return nil, err
		}
		st = statex.NewSessionState(in.SessionID, in.Email, in.Now)
	}

	st.SetEmail(in.Email)
	in.Session = st
	return in, nil
}

func classify(ctx context.Context, in *GraphState, oracle contractx.Classifier) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	plan, err := oracle.Classify(ctx, contractx.ClassifyRequest{
		Query:         in.Query,
		CustomerEmail: in.Session.CustomerEmail,
		Session:       in.Session,
		Now:           in.Now,
	})
	if err != nil {
		return nil, err
	}

	in.Plan = plan
	return in, nil
}

func dispatchHandlers(ctx context.Context, in *GraphState, tools contractx.ToolExecutor) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}
	if len(in.Plan.Calls) == 0 {
		return in, nil
	}

	calls := withDefaultEmail(in.Plan.Calls, in.Session.CustomerEmail)
	results, err := tools.Execute(ctx, calls)
	if err != nil {
		return nil, err
	}

	in.Plan.Calls = calls
	in.Results = results
	return in, nil
}

// withDefaultEmail fills the session's customer email into customer
// tool calls that lack one; the oracle often omits it when the email
// arrived out of band.
func withDefaultEmail(calls []contractx.ToolRequest, email string) []contractx.ToolRequest {
	if strings.TrimSpace(email) == "" {
		return calls
	}
	out := make([]contractx.ToolRequest, len(calls))
	for i, call := range calls {
		out[i] = call
		switch call.Tool {
		case toolx.ToolVerifyPurchase, toolx.ToolRegister:
			if strings.TrimSpace(call.StringArg("email")) == "" {
				args := make(map[string]any, len(call.Args)+1)
				for k, v := range call.Args {
					args[k] = v
				}
				args["email"] = email
				out[i].Args = args
			}
		}
	}
	return out
}

func composeReply(in *GraphState) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	if reply := strings.TrimSpace(in.Plan.DirectReply); reply != "" {
		in.Reply = reply
		return in, nil
	}

	blocks := make([]string, 0, len(in.Results))
	for _, res := range in.Results {
		if text := strings.TrimSpace(res.Text); text != "" {
			blocks = append(blocks, text)
		}
	}
	if len(blocks) == 0 {
		in.Reply = fallbackReply
		return in, nil
	}

	in.Reply = strings.Join(blocks, "\n\n")
	return in, nil
}

func recordTurn(in *GraphState) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	for _, call := range in.Plan.Calls {
		switch call.Tool {
		case toolx.ToolProductLookup:
			in.Session.LastProductQuery = call.StringArg("query")
		case toolx.ToolGearSearch:
			in.Session.LastCompatibilityQuery = call.StringArg("query")
		case toolx.ToolVerifyPurchase:
			in.Session.LastVerification = &statex.VerificationRequest{
				Email:   call.StringArg("email"),
				Product: call.StringArg("product"),
			}
		case toolx.ToolRegister:
			in.Session.LastRegistration = &statex.RegistrationRequest{
				Email:  call.StringArg("email"),
				Serial: call.StringArg("serial"),
			}
		case toolx.ToolCheckWarranty:
			in.Session.LastWarrantyCheck = call.StringArg("serial")
		}
	}

	in.Session.AppendTurn(in.Query, in.Reply, in.Now)
	return in, nil
}

func saveSession(ctx context.Context, in *GraphState, store statex.Store) (*GraphState, error) {
	if in == nil || in.Session == nil {
		return nil, fmt.Errorf("%w: graph session is nil", contractx.ErrValidation)
	}

	if err := in.Session.Validate(); err != nil {
		return nil, fmt.Errorf("session validation failed: %w", err)
	}
	if err := store.Save(ctx, in.Session); err != nil {
		return nil, err
	}
	return in, nil
}

func finalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Reply)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: coordinator produced empty reply", contractx.ErrValidation)
	}
	return GraphOutput{Reply: reply}, nil
}
