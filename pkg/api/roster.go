package api

// Participant is one entry of this week's roster.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	UserID    string `json:"userId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

type ListParticipantsRequest struct{}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

// JoinRequest enrolls someone. Empty fields default to the caller's account.
type JoinRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email string `json:"email,omitempty" validate:"omitempty,email,max=254"`
}

type JoinResponse struct {
	Participant *Participant `json:"participant"`
}

// LeaveRequest removes the caller's own roster entry.
type LeaveRequest struct{}

type LeaveResponse struct {
	RemovedID string `json:"removedId"`
}

type UpdateParticipantRequest struct {
	ID    string `json:"id" validate:"required"`
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=254"`
}

type UpdateParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type RemoveParticipantRequest struct {
	ID string `json:"id" validate:"required"`
}

type RemoveParticipantResponse struct {
	RemovedID string `json:"removedId"`
}
