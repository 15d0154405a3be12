package contract

import (
	"time"

	statex "github.com/jirasak/zoom-support-agent/agent/state"
)

// ClassifyRequest is what the classification oracle sees for one turn.
type ClassifyRequest struct {
	Query         string               `json:"query"`
	CustomerEmail string               `json:"customer_email,omitempty"`
	Session       *statex.SessionState `json:"session,omitempty"`
	Now           time.Time            `json:"now"`
}

// RoutePlan is the oracle's routing decision: which handler operations
// to invoke, in order, with what arguments. When the model answered the
// customer directly instead of calling a tool, Calls is empty and
// DirectReply carries the answer.
type RoutePlan struct {
	Calls       []ToolRequest `json:"calls,omitempty"`
	DirectReply string        `json:"direct_reply,omitempty"`
}

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult is one handler invocation's outcome. Handler output is
// always descriptive text; Err is set only for plumbing failures such
// as an unknown tool name, never for a missing record.
type ToolResult struct {
	Tool string `json:"tool"`
	Text string `json:"text,omitempty"`
	Err  string `json:"error,omitempty"`
}

// StringArg extracts a string argument, tolerating absent keys.
func (r ToolRequest) StringArg(key string) string {
	if r.Args == nil {
		return ""
	}
	v, _ := r.Args[key].(string)
	return v
}
