// Package prompts assembles the complete instruction payload sent to the
// model provider. The individual blocks are opaque configuration text;
// this package only fixes their order and the retrieved-context framing.
package prompts

import (
	"strings"

	"github.com/kbrown517/Veteran-Compass-Corps/app/models"
)

const (
	contextHeader = "\n\n---\nRETRIEVED KNOWLEDGE CONTEXT:\n"
	contextFooter = "\n---\n"
)

// Compose builds the system prompt for a tier plus optional retrieved
// context. It is a pure function: identical inputs produce byte-identical
// output. Block order is fixed and must not change without product
// sign-off. The retrieved context is wrapped in a delimiter but otherwise
// passed through verbatim; trust in that content is the caller's problem.
func Compose(tier models.Tier, retrievedContext string) string {
	blocks := []string{
		systemPrompt,
		developerPrompt,
		depthDirective(tier),
		voicePrompt,
		membershipPrompt,
		softLimitPrompt,
		responseTemplates,
		knowledgeContextUsage,
	}

	var b strings.Builder
	b.WriteString(strings.Join(blocks, "\n\n"))
	if retrievedContext != "" {
		b.WriteString(contextHeader)
		b.WriteString(retrievedContext)
		b.WriteString(contextFooter)
	}
	return b.String()
}
