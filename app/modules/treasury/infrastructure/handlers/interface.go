package treasuryhandlers

import "net/http"

// Handlers defines the HTTP handlers of the treasury module.
type Handlers interface {
	HandleCreateFee(w http.ResponseWriter, r *http.Request)
	HandleGetCurrentFee(w http.ResponseWriter, r *http.Request)
	HandleSubmitPayment(w http.ResponseWriter, r *http.Request)
}
