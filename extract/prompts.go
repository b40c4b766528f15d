package extract

import "fmt"

const extractionPromptTemplate = `Extract flight search criteria from the user's question and return them as JSON.

Output ONLY a valid JSON object. Do not include any preamble, explanation,
greeting, or acknowledgment. Start your response directly with the opening brace { and end with the closing
brace }. The object must have exactly these keys, each either a string or null:

{
  "origin": null,
  "destination": null,
  "flight_number": null,
  "date": null,
  "airline": null
}

Rules:
- Use null for every detail the question does not mention. Never invent values and never echo placeholder text such as "City Name".
- "origin" is the departure city, "destination" the arrival city.
- "flight_number" is an alphanumeric code such as "NY100"; keep it exactly as written.
- "date" is the travel date as written in the question.
- "airline" is the carrier name.
- The JSON must parse without errors; no trailing commas, no extra keys, and no extraneous text outside the object.

Example:
Input: "What flights are available from New York to London?"
Output:
{"origin": "New York", "destination": "London", "flight_number": null, "date": null, "airline": null}

Example:
Input: "Show me flight NY100."
Output:
{"origin": null, "destination": null, "flight_number": "NY100", "date": null, "airline": null}

Example (informal, no punctuation):
Input: "any global airways flights on 2025-05-01"
Output:
{"origin": null, "destination": null, "flight_number": null, "date": "2025-05-01", "airline": "Global Airways"}

User Question: %s`

// buildExtractionPrompt renders the strict JSON-only instruction prompt for
// a query.
func buildExtractionPrompt(query string) string {
	return fmt.Sprintf(extractionPromptTemplate, query)
}
