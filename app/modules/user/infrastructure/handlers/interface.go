package userhandlers

import "net/http"

// Handlers defines the HTTP handlers of the user module.
type Handlers interface {
	HandleCreateUser(w http.ResponseWriter, r *http.Request)
	HandleListUsers(w http.ResponseWriter, r *http.Request)
	HandleGetUserByDiscordID(w http.ResponseWriter, r *http.Request)
	HandleUpdateUser(w http.ResponseWriter, r *http.Request)

	HandleCreateCharacter(w http.ResponseWriter, r *http.Request)
	HandleGetCharactersByUser(w http.ResponseWriter, r *http.Request)
	HandleUpdateCharacter(w http.ResponseWriter, r *http.Request)
}
