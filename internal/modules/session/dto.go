package session

type CreateSessionRequest struct {
	BookingID    int64  `json:"booking_id" binding:"required"`
	SessionNotes string `json:"session_notes"`
}

type UpdateSessionRequest struct {
	SessionNotes *string `json:"session_notes"`
}

type CreateDiagnosticRequest struct {
	Diagnosis       string `json:"diagnosis" binding:"required"`
	Recommendations string `json:"recommendations"`
}
