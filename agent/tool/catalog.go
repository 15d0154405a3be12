// Package tool describes the handler operations the classification
// oracle may invoke by name, and executes the plans it returns.
package tool

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/rs/zerolog/log"

	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	specialistx "github.com/jirasak/zoom-support-agent/agent/specialist"
)

const (
	ToolProductLookup  = "product.lookup"
	ToolGearSearch     = "gear.search"
	ToolVerifyPurchase = "customer.verify_purchase"
	ToolRegister       = "customer.register"
	ToolCheckWarranty  = "customer.check_warranty"
)

// Infos returns the tool descriptors exposed to the model.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolProductLookup,
			Desc: "Identify a Zoom product from a description and return its specifications and features.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {Type: schema.String, Desc: "Customer's description of the Zoom product", Required: true},
			}),
		},
		{
			Name: ToolGearSearch,
			Desc: "Recommend third-party gear (microphones, headphones, cables) compatible with Zoom recorders.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {Type: schema.String, Desc: "Compatibility question or gear request", Required: true},
			}),
		},
		{
			Name: ToolVerifyPurchase,
			Desc: "Verify a customer's purchase record by email and product.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"email":   {Type: schema.String, Desc: "Customer email address", Required: true},
				"product": {Type: schema.String, Desc: "Product name or serial number", Required: false},
			}),
		},
		{
			Name: ToolRegister,
			Desc: "Register a product by serial number for a customer.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"email":  {Type: schema.String, Desc: "Customer email address", Required: true},
				"serial": {Type: schema.String, Desc: "Product serial number", Required: true},
			}),
		},
		{
			Name: ToolCheckWarranty,
			Desc: "Check warranty status for a product serial number.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"serial": {Type: schema.String, Desc: "Product serial number", Required: true},
			}),
		},
	}
}

// Names returns the set of known tool names.
func Names() map[string]struct{} {
	infos := Infos()
	names := make(map[string]struct{}, len(infos))
	for _, info := range infos {
		names[info.Name] = struct{}{}
	}
	return names
}

// Gateway dispatches tool requests into the specialist handlers. It
// implements contract.ToolExecutor.
type Gateway struct {
	products *specialistx.ProductHandler
	gear     *specialistx.CompatibilityHandler
	customer *specialistx.CustomerHandler
}

var _ contractx.ToolExecutor = (*Gateway)(nil)

func NewGateway(
	products *specialistx.ProductHandler,
	gear *specialistx.CompatibilityHandler,
	customer *specialistx.CustomerHandler,
) *Gateway {
	return &Gateway{
		products: products,
		gear:     gear,
		customer: customer,
	}
}

func (g *Gateway) Execute(ctx context.Context, reqs []contractx.ToolRequest) ([]contractx.ToolResult, error) {
	results := make([]contractx.ToolResult, 0, len(reqs))
	for _, req := range reqs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, g.execute(req))
	}
	return results, nil
}

func (g *Gateway) execute(req contractx.ToolRequest) contractx.ToolResult {
	log.Debug().Str("tool", req.Tool).Interface("args", req.Args).Msg("dispatching handler")

	switch req.Tool {
	case ToolProductLookup:
		query := strings.TrimSpace(req.StringArg("query"))
		if query == "" {
			return errResult(req.Tool, "query is required")
		}
		return okResult(req.Tool, g.products.Lookup(query))

	case ToolGearSearch:
		query := strings.TrimSpace(req.StringArg("query"))
		if query == "" {
			return errResult(req.Tool, "query is required")
		}
		return okResult(req.Tool, g.gear.Search(query))

	case ToolVerifyPurchase:
		email := strings.TrimSpace(req.StringArg("email"))
		if email == "" {
			return errResult(req.Tool, "email is required")
		}
		return okResult(req.Tool, g.customer.VerifyPurchase(email, req.StringArg("product")))

	case ToolRegister:
		email := strings.TrimSpace(req.StringArg("email"))
		serial := strings.TrimSpace(req.StringArg("serial"))
		if email == "" || serial == "" {
			return errResult(req.Tool, "email and serial are required")
		}
		return okResult(req.Tool, g.customer.HandleRegistration(email, serial))

	case ToolCheckWarranty:
		serial := strings.TrimSpace(req.StringArg("serial"))
		if serial == "" {
			return errResult(req.Tool, "serial is required")
		}
		return okResult(req.Tool, g.customer.CheckWarranty(serial))

	default:
		return errResult(req.Tool, fmt.Sprintf("tool=%s is not available", req.Tool))
	}
}

func okResult(tool, text string) contractx.ToolResult {
	return contractx.ToolResult{Tool: tool, Text: text}
}

func errResult(tool, msg string) contractx.ToolResult {
	return contractx.ToolResult{Tool: tool, Err: msg}
}
