package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandevgo/pdfchat/internal/core"
	"github.com/sandevgo/pdfchat/internal/service/memory"
)

func newReactAgent(gen *mockGenerator, hits []core.PageHit) *Agent {
	a := New(gen, stubRetriever(hits), memory.New(false, nil), true)
	a.readFile = func(path string) ([]byte, error) {
		return []byte("img:" + path), nil
	}
	return a
}

func TestReactSearchThenAnswer(t *testing.T) {
	calls := 0
	gen := &mockGenerator{
		decideFunc: func(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
			calls++
			switch calls {
			case 1:
				// First round: only the question, no gathered context yet.
				require.Len(t, parts, 1)
				return toolCall("encoder stack"), nil
			case 2:
				// Second round: question plus the retrieved image.
				require.Len(t, parts, 2)
				assert.True(t, parts[1].IsImage())
				return core.Decision{Answer: "Six identical layers."}, nil
			}
			t.Fatal("unexpected extra reasoning call")
			return core.Decision{}, nil
		},
	}

	a := newReactAgent(gen, []core.PageHit{{Key: "pages/page_002.png"}})

	assert.Equal(t, "Six identical layers.", a.Run(context.Background(), "s1", "how many encoder layers?"))
	assert.Equal(t, 2, calls)
}

func TestReactStripsAnswerMarker(t *testing.T) {
	gen := &mockGenerator{
		decideFunc: func(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
			return core.Decision{Answer: "ANSWER: Six identical layers."}, nil
		},
	}

	a := newReactAgent(gen, nil)

	assert.Equal(t, "Six identical layers.", a.Run(context.Background(), "s1", "q"))
}

func TestReactEmptySearchResultNoted(t *testing.T) {
	calls := 0
	gen := &mockGenerator{
		decideFunc: func(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
			calls++
			if calls == 1 {
				return toolCall("nothing here"), nil
			}
			// The miss is surfaced to the model as context.
			require.Len(t, parts, 2)
			assert.Equal(t, noResultsNote, parts[1].Text)
			return core.Decision{Answer: "I DON'T KNOW"}, nil
		},
	}

	a := newReactAgent(gen, nil)

	assert.Equal(t, "I DON'T KNOW", a.Run(context.Background(), "s1", "q"))
}

func TestReactRepeatedFailedSearchShortCircuits(t *testing.T) {
	calls := 0
	gen := &mockGenerator{
		decideFunc: func(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
			calls++
			return toolCall("same phrase"), nil
		},
	}

	a := newReactAgent(gen, nil)

	// Second identical empty search ends the loop before the budget runs out.
	assert.Equal(t, exhaustedReply, a.Run(context.Background(), "s1", "q"))
	assert.Equal(t, 2, calls)
}

func TestReactBudgetExhausted(t *testing.T) {
	calls := 0
	phrases := []string{"first angle", "second angle", "third angle"}
	gen := &mockGenerator{
		decideFunc: func(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
			calls++
			require.LessOrEqual(t, calls, maxIterations)
			return toolCall(phrases[calls-1]), nil
		},
	}

	a := newReactAgent(gen, []core.PageHit{{Key: "pages/page_001.png"}})

	assert.Equal(t, exhaustedReply, a.Run(context.Background(), "s1", "q"))
	assert.Equal(t, maxIterations, calls)
}

func TestReactUnrecognizedToolNoted(t *testing.T) {
	calls := 0
	gen := &mockGenerator{
		decideFunc: func(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
			calls++
			if calls == 1 {
				return core.Decision{Tool: core.ToolDecision{Kind: core.InvokeTool, Name: "made_up_tool"}}, nil
			}
			require.Len(t, parts, 2)
			assert.Equal(t, unclearNote, parts[1].Text)
			return core.Decision{Answer: "recovered"}, nil
		},
	}

	a := newReactAgent(gen, nil)

	assert.Equal(t, "recovered", a.Run(context.Background(), "s1", "q"))
}

func TestReactApologizesOnProviderError(t *testing.T) {
	gen := &mockGenerator{
		decideFunc: func(ctx context.Context, system string, parts []core.Part) (core.Decision, error) {
			return core.Decision{}, errors.New("quota exceeded")
		},
	}

	a := newReactAgent(gen, nil)

	assert.Equal(t, reactApology, a.Run(context.Background(), "s1", "q"))
}

func TestFinalAnswer(t *testing.T) {
	assert.Equal(t, "plain", finalAnswer("plain"))
	assert.Equal(t, "stripped", finalAnswer("ANSWER: stripped"))
	assert.Equal(t, "stripped", finalAnswer("Thought: done.\nANSWER:   stripped  "))
}
