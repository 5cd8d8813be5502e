package dto

// AnnouncementRequest payload for drafting a broadcast.
type AnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
