// Package apimsg builds the human-readable error messages returned inside
// error envelopes, so every handler words the same failure the same way.
package apimsg

import "fmt"

const standardAPI = "standard"

// EndpointNotSupported reports that endpoint is not served by the API of the
// given game. An empty game refers to the standard (game-agnostic) API.
func EndpointNotSupported(endpoint, game string) string {
	if game == "" {
		game = standardAPI
	}
	return fmt.Sprintf("The %s API does not support %s. Please refer to the documentation for a list of available endpoints.", game, endpoint)
}

// InvalidIdentifier reports that the identifier parameter name must be an
// integer. value is accepted for callers that have it but is not rendered;
// clients already match on the current wording.
func InvalidIdentifier(name, value string) string {
	return fmt.Sprintf("The given value of %s is invalid. It must be an integer value.", name)
}

// ResourceNotFound reports that no resource of the given kind has id.
func ResourceNotFound(resource, id string) string {
	return fmt.Sprintf("The %s with the given id %s could not be found. Please check your ID and try again.", resource, id)
}
