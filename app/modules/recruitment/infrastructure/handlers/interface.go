package recruitmenthandlers

import "net/http"

// Handlers defines the HTTP handlers of the recruitment module.
type Handlers interface {
	HandleCreateApplication(w http.ResponseWriter, r *http.Request)
	HandleListPendingApplications(w http.ResponseWriter, r *http.Request)
	HandleReviewApplication(w http.ResponseWriter, r *http.Request)
}
