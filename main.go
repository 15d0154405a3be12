package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	classifierx "github.com/jirasak/zoom-support-agent/agent/classifier"
	contractx "github.com/jirasak/zoom-support-agent/agent/contract"
	promptx "github.com/jirasak/zoom-support-agent/agent/prompt"
	runnerx "github.com/jirasak/zoom-support-agent/agent/runner"
	specialistx "github.com/jirasak/zoom-support-agent/agent/specialist"
	configx "github.com/jirasak/zoom-support-agent/pkg/config"
	gatewayx "github.com/jirasak/zoom-support-agent/pkg/gateway"
	_ "github.com/jirasak/zoom-support-agent/pkg/logger/autoload"
)

type AppConfig struct {
	// ClassifierBackend selects the routing model: "openai" for any
	// OpenAI-compatible endpoint, "vertex" for Vertex AI / Gemini.
	ClassifierBackend string `envconfig:"CLASSIFIER_BACKEND" split_words:"true" default:"openai"`

	SampleQuery string `envconfig:"SAMPLE_QUERY" split_words:"true" default:"I just bought a Zoom H6 but I'm not sure how to register it or find compatible mics"`
	SampleEmail string `envconfig:"SAMPLE_EMAIL" split_words:"true" default:"john.doe@email.com"`
}

func main() {
	ctx := context.Background()
	appCfg := configx.MustNew[AppConfig]("")

	systemPrompt, err := promptx.Coordinator()
	if err != nil {
		log.Fatal().Err(err).Msg("load coordinator prompt")
	}

	oracle := buildClassifier(ctx, appCfg.ClassifierBackend, systemPrompt)

	customerCfg := configx.MustNew[specialistx.CustomerConfig]("SUPPORT")
	support, err := runnerx.New(oracle, *customerCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("build support runner")
	}

	log.Info().
		Str("backend", appCfg.ClassifierBackend).
		Str("query", appCfg.SampleQuery).
		Str("email", appCfg.SampleEmail).
		Msg("running sample support query")

	response, err := support.RunSupportQuery(ctx, appCfg.SampleQuery, appCfg.SampleEmail)
	if err != nil {
		log.Fatal().Err(err).Msg("support query failed")
	}

	fmt.Println(response)
}

func buildClassifier(ctx context.Context, backend, systemPrompt string) contractx.Classifier {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "vertex", "gemini":
		vertexCfg := configx.MustNew[classifierx.VertexConfig]("GOOGLE")
		oracle, err := classifierx.NewVertex(ctx, *vertexCfg, systemPrompt)
		if err != nil {
			log.Fatal().Err(err).Msg("build vertex classifier")
		}
		return oracle

	default:
		gwCfg := configx.MustNew[gatewayx.Config]("LLM")
		if gatewayx.NewClient(*gwCfg) == nil {
			log.Fatal().Msg("llm api key is required")
		}
		chatModel, err := gwCfg.New(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("build chat model")
		}
		oracle, err := classifierx.NewLLM(ctx, chatModel, systemPrompt)
		if err != nil {
			log.Fatal().Err(err).Msg("build llm classifier")
		}
		return oracle
	}
}
