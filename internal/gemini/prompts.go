package gemini

import "fmt"

// SystemInstruction frames every summarizer call.
const SystemInstruction = "You are OfferShield, an AI that evaluates job offer " +
	"letters for scam risk, quality, and plausibility. Return clear, concise analysis."

// Both prompts demand a trailing "SCORE: <number>" line; the pipeline
// extracts that integer and clamps it to [0,100].

const documentPromptTemplate = `
You are scoring a job offer letter for document integrity and professionalism.

Company: %s
HR email: %s

Offer letter text:
------
%s
------

1. Give a "Document Quality Score" from 0 to 100 (higher is more polished and professional).
2. Briefly explain 4-8 bullet points about:
   - formatting clarity
   - presence/absence of key sections
   - language quality
   - any red flags about how the letter looks or reads (NOT about salary or domain).
3. At the end, write: "SCORE: <number>".

Keep it concise.
`

const rolePromptTemplate = `
You are checking if a job offer letter and interview process are plausible for the stated role.

Role: %s
Interview info (JSON):
%s

Offer letter text:
------
%s
------

1. Give a "Role & Process Plausibility Score" from 0 to 100.
2. Explain briefly why (3-6 bullet points).
3. At the end, write: "SCORE: <number>".

Focus on: whether the described process (interview / lack of it), responsibilities, and tone match typical hiring flows for such roles.
`

// BuildDocumentPrompt renders the document-quality prompt.
func BuildDocumentPrompt(companyName, hrEmail, rawText string) string {
	return fmt.Sprintf(documentPromptTemplate, companyName, hrEmail, rawText)
}

// BuildRolePrompt renders the role-consistency prompt. interviewJSON is
// the serialized interview metadata from the payload.
func BuildRolePrompt(jobRole, interviewJSON, rawText string) string {
	return fmt.Sprintf(rolePromptTemplate, jobRole, interviewJSON, rawText)
}
