package timeslot

type SlotBlock struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

type GenerateSlotsRequest struct {
	TherapistID int64       `json:"therapist_id" binding:"required"`
	Date        string      `json:"date" binding:"required"` // 2006-01-02
	Blocks      []SlotBlock `json:"blocks"`                  // defaults when empty
}

type UpdateSlotRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}
