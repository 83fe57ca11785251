package teamhandlers

import "net/http"

// Handlers defines the HTTP handlers of the team module.
type Handlers interface {
	HandleCreateTeam(w http.ResponseWriter, r *http.Request)
	HandleListTeams(w http.ResponseWriter, r *http.Request)
	HandleGetTeamMembers(w http.ResponseWriter, r *http.Request)
	HandleJoinTeam(w http.ResponseWriter, r *http.Request)
}
