package dto

// LoginRequest represents the admin login payload
type LoginRequest struct {
	Password string `json:"password"`
}

// ApproveSubmissionRequest carries optional moderation-time tag rewrites.
// A nil Tags keeps the tags the submitter entered.
type ApproveSubmissionRequest struct {
	Tags []string `json:"tags"`
}

// UpdateStatusRequest represents the admin status change payload
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// AddResponseRequest represents the admin reply payload
type AddResponseRequest struct {
	ResponseText string `json:"responseText"`
}
