package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	toolx "github.com/jirasak/zoom-support-agent/agent/tool"
)

// VertexConfig selects between the Vertex AI backend (cloud project +
// location) and the plain Gemini API backend (api key), mirroring the
// GOOGLE_* environment the hosted deployment uses.
type VertexConfig struct {
	UseVertexAI bool          `envconfig:"GENAI_USE_VERTEXAI" split_words:"true" default:"true"`
	Project     string        `envconfig:"CLOUD_PROJECT" split_words:"true"`
	Location    string        `envconfig:"CLOUD_LOCATION" split_words:"true" default:"us-central1"`
	APIKey      string        `envconfig:"GENAI_API_KEY" split_words:"true"`
	Model       string        `envconfig:"GENAI_MODEL" split_words:"true" default:"gemini-2.0-flash"`
	Timeout     time.Duration `envconfig:"GENAI_TIMEOUT" split_words:"true" default:"30s"`
}

func (c VertexConfig) Validate() error {
	if c.UseVertexAI {
		if strings.TrimSpace(c.Project) == "" {
			return fmt.Errorf("%w: cloud project is required for the vertex backend", contractx.ErrValidation)
		}
		return nil
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("%w: api key is required for the gemini api backend", contractx.ErrValidation)
	}
	return nil
}

// Vertex routes queries through Gemini function calling on the GenAI
// SDK. Function call parts become the route plan.
type Vertex struct {
	client       *genai.Client
	model        string
	systemPrompt string
	allowed      map[string]struct{}
}

var _ contractx.Classifier = (*Vertex)(nil)

func NewVertex(ctx context.Context, cfg VertexConfig, systemPrompt string) (*Vertex, error) {
	if strings.TrimSpace(systemPrompt) == "" {
		return nil, fmt.Errorf("%w: classifier system prompt", contractx.ErrPromptMissing)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	clientCfg := &genai.ClientConfig{
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if cfg.UseVertexAI {
		clientCfg.Backend = genai.BackendVertexAI
		clientCfg.Project = strings.TrimSpace(cfg.Project)
		clientCfg.Location = strings.TrimSpace(cfg.Location)
	} else {
		clientCfg.Backend = genai.BackendGeminiAPI
		clientCfg.APIKey = strings.TrimSpace(cfg.APIKey)
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("%w: create genai client: %v", contractx.ErrModelInvoke, err)
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = "gemini-2.0-flash"
	}

	return &Vertex{
		client:       client,
		model:        model,
		systemPrompt: systemPrompt,
		allowed:      toolx.Names(),
	}, nil
}

func (c *Vertex) Classify(ctx context.Context, req contractx.ClassifyRequest) (contractx.RoutePlan, error) {
	if strings.TrimSpace(req.Query) == "" {
		return contractx.RoutePlan{}, fmt.Errorf("%w: query is required", contractx.ErrValidation)
	}

	payload, err := json.Marshal(classifyPayload(req))
	if err != nil {
		return contractx.RoutePlan{}, fmt.Errorf("%w: marshal classify payload: %v", contractx.ErrValidation, err)
	}

	resp, err := c.client.Models.GenerateContent(ctx,
		c.model,
		genai.Text(string(payload)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(c.systemPrompt, genai.RoleUser),
			Tools: []*genai.Tool{
				{FunctionDeclarations: routingDeclarations()},
			},
		},
	)
	if err != nil {
		return contractx.RoutePlan{}, fmt.Errorf("%w: generate content: %v", contractx.ErrModelInvoke, err)
	}
	if resp == nil {
		return contractx.RoutePlan{}, fmt.Errorf("%w: empty genai response", contractx.ErrSchemaViolation)
	}

	return planFromGenAI(resp, c.allowed)
}

func planFromGenAI(resp *genai.GenerateContentResponse, allowed map[string]struct{}) (contractx.RoutePlan, error) {
	calls := resp.FunctionCalls()
	if len(calls) == 0 {
		content := strings.TrimSpace(resp.Text())
		if content == "" {
			return contractx.RoutePlan{}, fmt.Errorf("%w: model returned neither function calls nor text", contractx.ErrSchemaViolation)
		}
		return contractx.RoutePlan{DirectReply: content}, nil
	}

	reqs := make([]contractx.ToolRequest, 0, len(calls))
	for _, call := range calls {
		name := strings.TrimSpace(call.Name)
		if name == "" {
			return contractx.RoutePlan{}, errors.New("function call name is empty")
		}
		if _, ok := allowed[name]; !ok {
			return contractx.RoutePlan{}, fmt.Errorf("%w: tool=%s is not a known handler", contractx.ErrSchemaViolation, name)
		}
		args := call.Args
		if args == nil {
			args = map[string]any{}
		}
		reqs = append(reqs, contractx.ToolRequest{
			Tool: name,
			Args: args,
		})
	}

	return contractx.RoutePlan{Calls: reqs}, nil
}

// routingDeclarations mirrors the eino tool catalog as GenAI function
// declarations so both backends expose the same five operations.
func routingDeclarations() []*genai.FunctionDeclaration {
	return []*genai.FunctionDeclaration{
		{
			Name:        toolx.ToolProductLookup,
			Description: "Identify a Zoom product from a description and return its specifications and features.",
			Parameters: objectSchema(map[string]*genai.Schema{
				"query": {Type: genai.TypeString, Description: "Customer's description of the Zoom product"},
			}, "query"),
		},
		{
			Name:        toolx.ToolGearSearch,
			Description: "Recommend third-party gear (microphones, headphones, cables) compatible with Zoom recorders.",
			Parameters: objectSchema(map[string]*genai.Schema{
				"query": {Type: genai.TypeString, Description: "Compatibility question or gear request"},
			}, "query"),
		},
		{
			Name:        toolx.ToolVerifyPurchase,
			Description: "Verify a customer's purchase record by email and product.",
			Parameters: objectSchema(map[string]*genai.Schema{
				"email":   {Type: genai.TypeString, Description: "Customer email address"},
				"product": {Type: genai.TypeString, Description: "Product name or serial number"},
			}, "email"),
		},
		{
			Name:        toolx.ToolRegister,
			Description: "Register a product by serial number for a customer.",
			Parameters: objectSchema(map[string]*genai.Schema{
				"email":  {Type: genai.TypeString, Description: "Customer email address"},
				"serial": {Type: genai.TypeString, Description: "Product serial number"},
			}, "email", "serial"),
		},
		{
			Name:        toolx.ToolCheckWarranty,
			Description: "Check warranty status for a product serial number.",
			Parameters: objectSchema(map[string]*genai.Schema{
				"serial": {Type: genai.TypeString, Description: "Product serial number"},
			}, "serial"),
		},
	}
}

func objectSchema(props map[string]*genai.Schema, required ...string) *genai.Schema {
	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: props,
		Required:   required,
	}
}
