package suggestionhandlers

import "net/http"

// Handlers defines the HTTP handlers of the suggestion module.
type Handlers interface {
	HandleCreateSuggestion(w http.ResponseWriter, r *http.Request)
	HandleListSuggestions(w http.ResponseWriter, r *http.Request)
	HandleUpdateSuggestionStatus(w http.ResponseWriter, r *http.Request)
	HandleCastVote(w http.ResponseWriter, r *http.Request)
	HandleVoteChart(w http.ResponseWriter, r *http.Request)
}
