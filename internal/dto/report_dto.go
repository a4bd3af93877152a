package dto

type CreateReportRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ShiftDate string   `json:"shift_date"`
	Images    []string `json:"images,omitempty"`
}

// UpdateReportRequest is a full overwrite: every editable field must be
// resent. This is deliberately not the partial-update shape used for
// profiles.
type UpdateReportRequest struct {
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	ShiftDate string   `json:"shift_date"`
	Status    string   `json:"status,omitempty"`
	Images    []string `json:"images,omitempty"`
}
