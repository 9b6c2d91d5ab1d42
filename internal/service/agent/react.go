package agent

import (
	"context"
	"strings"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/pkg/log"
)

// maxIterations bounds the reason-act loop. Three rounds of retrieval is
// enough for any question the two-page search window can answer.
const maxIterations = 3

// runReAct is the iterative strategy: the model either calls the retrieval
// tool to gather more pages or emits a final answer, for at most
// maxIterations rounds. Gathered context accumulates across rounds.
//
// ReAct turns are not recorded in session memory; the loop is self-contained
// and its intermediate searches would only pollute the replay.
func (a *Agent) runReAct(ctx context.Context, query string) string {
	logger := log.FromCtx(ctx)
	system := reactPrompt(query)

	var gathered []core.Part
	searched := map[string]bool{} // phrase -> produced results

	for i := 1; i <= maxIterations; i++ {
		logger.Debug().Int("iteration", i).Int("context_parts", len(gathered)).Msg("react step")

		parts := append([]core.Part{core.TextPart(query)}, gathered...)
		decision, err := a.gen.Decide(ctx, system, parts)
		if err != nil {
			logger.Warn().Err(err).Msg("react reasoning call failed")
			return reactApology
		}

		if decision.Tool.Kind == core.InvokeTool {
			gathered = a.reactSearch(ctx, decision.Tool, gathered, searched)
			if gathered == nil {
				return exhaustedReply
			}
			continue
		}

		answer := strings.TrimSpace(decision.Answer)
		if answer == "" {
			logger.Warn().Msg("react step produced neither tool call nor answer")
			gathered = append(gathered, core.TextPart(unclearNote))
			continue
		}
		return finalAnswer(answer)
	}

	return exhaustedReply
}

// reactSearch executes one tool round and returns the grown context. A nil
// return aborts the loop: the model repeated a search that already came back
// empty, so further rounds cannot make progress.
func (a *Agent) reactSearch(ctx context.Context, tool core.ToolDecision, gathered []core.Part, searched map[string]bool) []core.Part {
	logger := log.FromCtx(ctx)

	if err := core.ValidateTool(tool); err != nil {
		logger.Warn().Err(err).Msg("model selected unrecognized tool")
		return append(gathered, core.TextPart(unclearNote))
	}

	phrase := strings.TrimSpace(tool.Args["user_query"])
	if phrase == "" {
		logger.Warn().Msg("tool call carried no search phrase")
		return append(gathered, core.TextPart(unclearNote))
	}

	if found, seen := searched[phrase]; seen {
		logger.Warn().Str("query", phrase).Msg("model repeated a search")
		if !found {
			return nil
		}
		return append(gathered, core.TextPart("Already searched: "+phrase))
	}

	images := loadImageParts(ctx, a.readFile, hitKeys(a.retriever.Retrieve(ctx, phrase)))
	searched[phrase] = len(images) > 0
	if len(images) == 0 {
		return append(gathered, core.TextPart(noResultsNote))
	}
	return append(gathered, images...)
}

// finalAnswer strips a leading ANSWER: marker if the model emitted one.
func finalAnswer(text string) string {
	if idx := strings.Index(text, answerMarker); idx >= 0 {
		return strings.TrimSpace(text[idx+len(answerMarker):])
	}
	return text
}
