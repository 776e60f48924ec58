package ai

import (
	"context"
	"log"

	"pagegen_server/internal/ai/prompts"
	"pagegen_server/internal/extract"
	"pagegen_server/internal/llm"
	"pagegen_server/internal/types"
)

// Generator runs the shared generation procedure: send the composed
// instruction and system directive to the backend, extract the JSON object
// from the reply, and validate the bundle shape.
type Generator struct {
	backend llm.Client
}

func NewGenerator(backend llm.Client) *Generator {
	return &Generator{backend: backend}
}

// Generate executes one generation for the composed instruction. genID tags
// the log lines for this request. Any backend, extraction, or validation
// failure is returned as a GenerationError for the handler to report
// in-body; there is no internal retry — the frontend drives retries through
// the retry endpoint.
func (g *Generator) Generate(ctx context.Context, genID, instruction string) (*types.CodeBundle, *types.GenerationError) {
	raw, err := g.backend.Generate(ctx, prompts.SystemDirective, instruction)
	if err != nil {
		log.Printf("Generation %s: backend call failed: %v", genID, err)
		msg := "inference backend call failed: " + err.Error()
		if llm.Transient(err) {
			msg += " (the backend error looks temporary; submitting the request again may succeed)"
		}
		return nil, types.NewGenerationError(msg, "")
	}

	var bundle types.CodeBundle
	if err := extract.FirstObject(raw, &bundle); err != nil {
		log.Printf("Generation %s: extraction failed: %v", genID, err)
		return nil, types.NewGenerationError("could not extract JSON from model output: "+err.Error(), raw)
	}

	if err := bundle.Validate(); err != nil {
		log.Printf("Generation %s: bundle validation failed: %v", genID, err)
		return nil, types.NewGenerationError("generated code is incomplete: "+err.Error(), raw)
	}

	log.Printf("Generation %s: succeeded (html=%d css=%d js=%d bytes)",
		genID, len(bundle.HTML), len(bundle.CSS), len(bundle.JS))
	return &bundle, nil
}
