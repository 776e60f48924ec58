package prompts

import (
	"fmt"

	"pagegen_server/internal/extract"
)

// BadOutputQuoteLimit caps how much of a failed reply is quoted back to the
// model on a retry.
const BadOutputQuoteLimit = 200

const retryTemplate = `Your previous reply could not be used because it was not valid JSON. It began:
---
%s
---

The original instruction was:
---
%s
---

Respond again to the original instruction with ONLY one valid JSON object in
the {"html", "css", "js"} format — no markdown fences, no commentary.`

// Retry composes the corrective instruction after a failed generation,
// quoting the first BadOutputQuoteLimit characters of the bad output.
func Retry(originalPrompt, badOutput string) string {
	return fmt.Sprintf(retryTemplate, extract.Truncate(badOutput, BadOutputQuoteLimit), originalPrompt)
}
