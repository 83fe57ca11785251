package announcementhandlers

import "net/http"

// Handlers defines the HTTP handlers of the announcement module.
type Handlers interface {
	HandleCreateAnnouncement(w http.ResponseWriter, r *http.Request)
	HandleGetRecentAnnouncements(w http.ResponseWriter, r *http.Request)
	HandleCreateGalleryImage(w http.ResponseWriter, r *http.Request)
	HandleListGalleryImages(w http.ResponseWriter, r *http.Request)
}
