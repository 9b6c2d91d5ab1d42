package agent

import (
	"context"
	"os"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/internal/service/memory"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// Agent runs one question through the answer pipeline: tool selection,
// retrieval, grounded generation. Run never returns an error; every failure
// mode maps to a canned user-facing reply.
type Agent struct {
	gen       core.Generator
	retriever *Retriever
	memory    *memory.Memory
	react     bool

	readFile func(string) ([]byte, error)
}

func New(gen core.Generator, retriever *Retriever, mem *memory.Memory, react bool) *Agent {
	return &Agent{
		gen:       gen,
		retriever: retriever,
		memory:    mem,
		react:     react,
		readFile:  os.ReadFile,
	}
}

func (a *Agent) Run(ctx context.Context, sessionID, query string) string {
	if a.react {
		return a.runReAct(ctx, query)
	}
	return a.runDirect(ctx, sessionID, query)
}

// runDirect is the two-call strategy: one tool-selection call, then one
// grounded generation call with whatever the tool brought back. Session
// memory wraps both calls and records the completed turn afterwards.
func (a *Agent) runDirect(ctx context.Context, sessionID, query string) string {
	logger := log.FromCtx(ctx)

	history := a.memory.History(ctx, sessionID)
	parts := append(append([]core.Part{}, history...), core.TextPart(query))

	decision, err := a.gen.Decide(ctx, toolSelectionPrompt, parts)
	if err != nil {
		logger.Warn().Err(err).Msg("tool selection call failed")
		return directApology
	}

	var keys []string
	if decision.Tool.Kind == core.InvokeTool {
		if err := core.ValidateTool(decision.Tool); err != nil {
			logger.Warn().Err(err).Msg("model selected unrecognized tool")
		} else {
			phrase := decision.Tool.Args["user_query"]
			if phrase == "" {
				phrase = query
			}
			keys = hitKeys(a.retriever.Retrieve(ctx, phrase))
		}
	}

	images := loadImageParts(ctx, a.readFile, keys)
	contents := append(append(append([]core.Part{}, history...), core.TextPart(query)), images...)

	answer, err := a.gen.Generate(ctx, groundingPrompt, contents)
	if err != nil {
		logger.Warn().Err(err).Msg("generation call failed")
		return directApology
	}

	a.memory.Append(ctx, sessionID, core.RoleUser, core.TypeText, query)
	for _, key := range keys {
		a.memory.Append(ctx, sessionID, core.RoleUser, core.TypeImage, key)
	}
	a.memory.Append(ctx, sessionID, core.RoleAgent, core.TypeText, answer)

	return answer
}
