package openai

import (
	"fmt"
	"strings"

	"github.com/vedicarchive/riksearch/ai"
)

const answerPromptTemplate = `You are an expert on the Rigveda, one of the most ancient and sacred texts of Hinduism.

A user asked: %q

Here are the relevant Rigveda verses that mention this topic:

%s
Based on the above verses:
1. Identify the concept, deity, or topic the user asked about
2. Explain its significance in Vedic literature
3. If relevant, mention how it connects to broader Hindu philosophy
4. Explain the purpose of the cited verses

Keep your answer focused on what is mentioned in these specific verses while providing clear explanations.`

// buildAnswerPrompt renders the user question and retrieved passages
// into the model prompt.
func buildAnswerPrompt(question string, passages []ai.Passage) string {
	var sb strings.Builder
	for _, p := range passages {
		fmt.Fprintf(&sb, "%s (Relevance: %.2f):\n%s\n\n", p.Citation, p.Relevance, p.Text)
	}
	return fmt.Sprintf(answerPromptTemplate, question, sb.String())
}
