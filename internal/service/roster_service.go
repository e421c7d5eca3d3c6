package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/internal/middleware"
	"github.com/mmynk/saladbowl/internal/models"
	"github.com/mmynk/saladbowl/internal/normalize"
	"github.com/mmynk/saladbowl/internal/storage"
	"github.com/mmynk/saladbowl/internal/validation"
	"github.com/mmynk/saladbowl/pkg/api"
)

// RosterService implements the Connect RosterService.
type RosterService struct {
	store     storage.Store
	validator Validator
	logger    *slog.Logger
}

// NewRosterService creates a new RosterService with the given storage backend.
func NewRosterService(store storage.Store, validator Validator, logger *slog.Logger) *RosterService {
	return &RosterService{store: store, validator: validator, logger: logger}
}

// ListParticipants returns this week's roster in join order.
func (s *RosterService) ListParticipants(ctx context.Context, req *connect.Request[api.ListParticipantsRequest]) (*connect.Response[api.ListParticipantsResponse], error) {
	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		s.logger.Error("ListParticipants failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*api.Participant, len(participants))
	for i, p := range participants {
		out[i] = toAPIParticipant(p)
	}
	return connect.NewResponse(&api.ListParticipantsResponse{Participants: out}), nil
}

// Join enrolls a participant. Name and email default to the caller's
// account, so an empty request is a self-join.
func (s *RosterService) Join(ctx context.Context, req *connect.Request[api.JoinRequest]) (*connect.Response[api.JoinResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	email := normalize.Email(req.Msg.Email)
	if name == "" || email == "" {
		user, err := s.store.GetUserByID(ctx, userID)
		if err != nil {
			s.logger.Error("Join: caller lookup failed", "user_id", userID, "error", err)
			return nil, storeError(err)
		}
		if name == "" {
			name = user.Name
		}
		if email == "" {
			email = user.Email
		}
	}

	participant := &models.Participant{
		Name:            name,
		Email:           email,
		CreatedByUserID: userID,
	}
	if err := s.store.CreateParticipant(ctx, participant); err != nil {
		s.logger.Warn("Join failed", "email", email, "error", err)
		return nil, storeError(err)
	}

	s.logger.Info("Participant joined", "participant_id", participant.ID, "user_id", userID)
	return connect.NewResponse(&api.JoinResponse{Participant: toAPIParticipant(participant)}), nil
}

// Leave removes the caller's own roster entry.
func (s *RosterService) Leave(ctx context.Context, req *connect.Request[api.LeaveRequest]) (*connect.Response[api.LeaveResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}

	email := normalize.Email(middleware.GetEmail(ctx))
	participant, err := s.store.GetParticipantByEmail(ctx, email)
	if err != nil {
		return nil, storeError(err)
	}
	if err := s.store.DeleteParticipant(ctx, participant.ID); err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("Participant left", "participant_id", participant.ID, "user_id", userID)
	return connect.NewResponse(&api.LeaveResponse{RemovedID: participant.ID}), nil
}

// UpdateParticipant edits a roster entry.
func (s *RosterService) UpdateParticipant(ctx context.Context, req *connect.Request[api.UpdateParticipantRequest]) (*connect.Response[api.UpdateParticipantResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, validation.Invalid("name", "is required")
	}

	participant, err := s.store.GetParticipant(ctx, req.Msg.ID)
	if err != nil {
		return nil, storeError(err)
	}
	participant.Name = name
	participant.Email = normalize.Email(req.Msg.Email)

	if err := s.store.UpdateParticipant(ctx, participant); err != nil {
		if !errors.Is(err, storage.ErrAlreadyExists) {
			s.logger.Error("UpdateParticipant failed", "participant_id", req.Msg.ID, "error", err)
		}
		return nil, storeError(err)
	}

	s.logger.Info("Participant updated", "participant_id", participant.ID, "user_id", userID)
	return connect.NewResponse(&api.UpdateParticipantResponse{Participant: toAPIParticipant(participant)}), nil
}

// RemoveParticipant deletes any roster entry.
func (s *RosterService) RemoveParticipant(ctx context.Context, req *connect.Request[api.RemoveParticipantRequest]) (*connect.Response[api.RemoveParticipantResponse], error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	if err := s.store.DeleteParticipant(ctx, req.Msg.ID); err != nil {
		return nil, storeError(err)
	}

	s.logger.Info("Participant removed", "participant_id", req.Msg.ID, "user_id", userID)
	return connect.NewResponse(&api.RemoveParticipantResponse{RemovedID: req.Msg.ID}), nil
}
