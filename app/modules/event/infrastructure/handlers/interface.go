package eventhandlers

import "net/http"

// Handlers defines the HTTP handlers of the event module.
type Handlers interface {
	HandleCreateEvent(w http.ResponseWriter, r *http.Request)
	HandleGetUpcomingEvents(w http.ResponseWriter, r *http.Request)
	HandleGetEventRegistrations(w http.ResponseWriter, r *http.Request)
	HandleRegisterForEvent(w http.ResponseWriter, r *http.Request)
	HandleExportRoster(w http.ResponseWriter, r *http.Request)
}
