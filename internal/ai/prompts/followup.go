package prompts

import "fmt"

const followupTemplate = `User's instruction:
---
%s
---

Here is the current page the user wants changed, as a JSON object:
---
%s
---

Apply the instruction to the current page and respond with the complete
updated page as one JSON object in the same {"html", "css", "js"} format.
Return the whole page, not only the changed parts.`

// Followup composes the instruction for a change request against an
// existing page. currentCode is the serialized code bundle.
func Followup(userPrompt, currentCode string) string {
	return fmt.Sprintf(followupTemplate, userPrompt, currentCode)
}
