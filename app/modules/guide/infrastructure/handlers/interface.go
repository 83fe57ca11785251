package guidehandlers

import "net/http"

// Handlers defines the HTTP handlers of the guide module.
type Handlers interface {
	HandleCreateGuide(w http.ResponseWriter, r *http.Request)
	HandleListApprovedGuides(w http.ResponseWriter, r *http.Request)
	HandleListPendingGuides(w http.ResponseWriter, r *http.Request)
	HandleReviewGuide(w http.ResponseWriter, r *http.Request)
}
