package quiz

import (
	"fmt"
	"strings"
)

// Prompt templates. Wording is not load-bearing beyond instructing the model
// correctly; the four-part answer format is what clients parse.

const questionFormat = `Format:
- Question: [question text]
- Options: [if multiple choice]
- Answer: [correct answer]
- Explanation: [detailed explanation]`

func questionPrompt(req QuestionRequest, excerpt string) string {
	var sb strings.Builder

	if excerpt != "" {
		sb.WriteString("Based on this cybersecurity knowledge:\n")
		sb.WriteString(excerpt)
		sb.WriteString("\n...\n\n")
	} else {
		sb.WriteString("Based on the attached cybersecurity reference document.\n\n")
	}

	fmt.Fprintf(&sb, "Generate %d %s level %s question(s) about %s, strictly answerable from the document.\n",
		req.Amount, req.Level, req.Type, req.Topic)
	sb.WriteString(questionFormat)

	return sb.String()
}

func redactPrompt(text string) string {
	return fmt.Sprintf(`Analyze the following text and identify any Personally Identifiable Information (PII).
PII includes, but is not limited to: names, email addresses, phone numbers, physical addresses,
social security numbers, credit card numbers, bank account numbers, dates of birth, driver's license numbers,
IP addresses if they can identify an individual, and any other information that can be used to
uniquely identify, contact, or locate a single person.

Your task is to return the text with all identified PII replaced by a generic placeholder.
For example:
- Replace names with "[REDACTED_NAME]"
- Replace email addresses with "[REDACTED_EMAIL]"
- Replace phone numbers with "[REDACTED_PHONE]"
- Replace physical addresses with "[REDACTED_ADDRESS]"
- Replace social security numbers with "[REDACTED_SSN]"
- Replace financial account numbers with "[REDACTED_ACCOUNT]"
- Replace specific dates of birth with "[REDACTED_DOB]"
- Replace identifying IP addresses with "[REDACTED_IP]"
- Replace any other PII with "[REDACTED_PII]"

Only return the cleaned text. Do not include any preamble or explanation.

Original Text:
"%s"

Cleaned Text:
`, text)
}
