package api

type GetBillingSplitRequest struct {
	Total *float64 `json:"total" validate:"required,gte=0"`
}

// BillingSplit divides Total evenly; Share is 0 when nobody is enrolled.
type BillingSplit struct {
	ParticipantCount int     `json:"participantCount"`
	Total            float64 `json:"total"`
	Share            float64 `json:"share"`
}
