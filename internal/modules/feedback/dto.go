package feedback

type CreateFeedbackRequest struct {
	SessionID      int64  `json:"session_id" binding:"required"`
	UserID         int64  `json:"user_id" binding:"required"`
	Rating         *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Comments       string `json:"comments"`
	TherapistNotes string `json:"therapist_notes"`
}

type UpdateFeedbackRequest struct {
	Rating         *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Comments       *string `json:"comments"`
	TherapistNotes *string `json:"therapist_notes"`
}
