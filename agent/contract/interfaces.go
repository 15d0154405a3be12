package contract

import "context"

// Classifier is the external classification oracle: given a query it
// decides which handler operations apply. The coordinator holds no
// routing logic of its own; swap in a stub to test the dispatch path.
type Classifier interface {
	Classify(ctx context.Context, req ClassifyRequest) (RoutePlan, error)
}

// ToolExecutor runs an ordered set of handler invocations.
type ToolExecutor interface {
	Execute(ctx context.Context, reqs []ToolRequest) ([]ToolResult, error)
}
