// Package runner wires the catalog, handlers, and coordinator into a
// ready-to-use support session and exposes the single demo entry point:
// submit a query, receive a response.
package runner

import (
	"context"

	catalogx "github.com/jirasak/zoom-support-agent/agent/catalog"
	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	coordinatorx "github.com/jirasak/zoom-support-agent/agent/coordinator"
	specialistx "github.com/jirasak/zoom-support-agent/agent/specialist"
	statex "github.com/jirasak/zoom-support-agent/agent/state"
	toolx "github.com/jirasak/zoom-support-agent/agent/tool"
)

// DefaultSessionID is the conversation id used by the one-shot entry
// point; repeated calls on one Runner share the same conversation.
const DefaultSessionID = "zoom_support_session"

type Runner struct {
	coord *coordinatorx.Coordinator
	store statex.Store
}

// New builds a Runner around the given classification oracle. Session
// state lives in memory and is gone when the process exits.
func New(classifier contractx.Classifier, customerCfg specialistx.CustomerConfig) (*Runner, error) {
	cat := catalogx.New()
	tools := toolx.NewGateway(
		specialistx.NewProductHandler(cat),
		specialistx.NewCompatibilityHandler(),
		specialistx.NewCustomerHandler(cat, customerCfg),
	)

	store := statex.NewInMemoryStore()
	coord, err := coordinatorx.New(store, classifier, tools)
	if err != nil {
		return nil, err
	}

	return &Runner{
		coord: coord,
		store: store,
	}, nil
}

// RunSupportQuery submits one customer query, with an optional email
// for purchase verification, and returns the coordinator's response.
func (r *Runner) RunSupportQuery(ctx context.Context, query, email string) (string, error) {
	return r.coord.HandleQuery(ctx, DefaultSessionID, query, email)
}

// Reset discards the conversation state.
func (r *Runner) Reset(ctx context.Context) error {
	return r.store.Delete(ctx, DefaultSessionID)
}
