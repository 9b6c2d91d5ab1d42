package agent

import "fmt"

// System instructions sent to the model. The grounding prompt is the only
// guard against the model answering from its own knowledge, so its wording is
// deliberately blunt.
const (
	toolSelectionPrompt = "You're an AI assistant." +
		" Based on the given information, decide which tool to use." +
		" If the user is asking to explain an image, don't call any tools" +
		" unless that would help you better explain the image."

	groundingPrompt = "Answer the questions based on the provided context only." +
		" If the context is not sufficient, say I DON'T KNOW." +
		" DO NOT use any other information to answer the question."
)

// Canned replies. Provider failures never leak raw errors to the user.
const (
	directApology = "I apologize, but I encountered an error while processing your question."
	reactApology  = "I encountered an error while processing your question with the ReAct approach."

	exhaustedReply = "I couldn't find a definitive answer after exploring the available information. " +
		"Please try rephrasing your question."

	noResultsNote = "No relevant information found for this query."
	unclearNote   = "Unable to determine next action."
)

// answerMarker is tolerated in final answers for models that prefix their
// text even when instructed not to; everything before it is discarded.
const answerMarker = "ANSWER:"

func reactPrompt(query string) string {
	return fmt.Sprintf("You are an AI assistant answering questions about an ingested document."+
		" The user asked: %q\n\n"+
		"On each step either call the retrieval tool with a focused search phrase to gather"+
		" more context, or, once the gathered information is sufficient, reply with your final"+
		" answer as plain text. Base the answer only on the gathered information; if it is not"+
		" sufficient after searching, say I DON'T KNOW.", query)
}
