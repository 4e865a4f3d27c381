package models

// ChatRequest is the payload coming from the frontend into /chat.
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id" binding:"required"`
}

// ChatResponse is what the chat handler returns to the frontend.
type ChatResponse struct {
	Response string `json:"response"`
}

// FollowupsRequest is the payload for /check-followups.
type FollowupsRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// FollowupsResponse carries all queued check-in reminders for a user.
// The queue is cleared on read.
type FollowupsResponse struct {
	Followups []string `json:"followups"`
}
