// Package coordinator accepts a customer query plus optional email,
// asks the classification oracle which handlers apply, executes the
// plan, and merges handler outputs into one response string. Each turn
// runs synchronously through a compiled graph.
package coordinator

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	statex "github.com/jirasak/zoom-support-agent/agent/state"
)

type Coordinator struct {
	store      statex.Store
	classifier contractx.Classifier
	tools      contractx.ToolExecutor

	graphRunner compose.Runnable[GraphInput, GraphOutput]

	now func() time.Time
}

func New(
	store statex.Store,
	classifier contractx.Classifier,
	tools contractx.ToolExecutor,
) (*Coordinator, error) {
	if store == nil {
		return nil, errors.New("session store is required")
	}
	if classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if tools == nil {
		return nil, errors.New("tool executor is required")
	}

	c := &Coordinator{
		store:      store,
		classifier: classifier,
		tools:      tools,
		now:        time.Now,
	}

	graphRunner, err := c.compileHandleQueryGraph(context.Background())
	if err != nil {
		return nil, err
	}
	c.graphRunner = graphRunner

	return c, nil
}

// HandleQuery runs one support turn. The email is optional; once a
// session has seen one it is reused for later customer operations.
func (c *Coordinator) HandleQuery(ctx context.Context, sessionID, query, email string) (string, error) {
	out, err := c.graphRunner.Invoke(ctx, GraphInput{
		SessionID: sessionID,
		Query:     query,
		Email:     email,
	})
	if err != nil {
		return "", err
	}

	log.Debug().Str("session_id", sessionID).Int("reply_len", len(out.Reply)).Msg("support turn complete")
	return out.Reply, nil
}
