package respond

import (
	"encoding/json"
	"fmt"

	"github.com/poiesic/flightdesk/core"
)

const synthesisPromptTemplate = `User Question: %s

Available Flights Information:
%s

Please provide a concise, natural-language response that summarizes these
flights for the user, naming the flight number, departure time, and airline
for each one. Do not invent flights that are not listed.`

const noResultsPromptTemplate = `User Question: %s

No flights were found matching the user's criteria.

Please provide a short, polite response telling the user that no flights
matched and inviting them to try different criteria.`

// buildSynthesisPrompt serializes the matched flights into the prompt
// context, or renders the explicit no-matches variant for an empty
// sequence.
func buildSynthesisPrompt(query string, flights []core.FlightRecord) (string, error) {
	if len(flights) == 0 {
		return fmt.Sprintf(noResultsPromptTemplate, query), nil
	}

	info, err := json.MarshalIndent(flights, "", "  ")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(synthesisPromptTemplate, query, info), nil
}
