package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/saladbowl/internal/calculator"
	"github.com/mmynk/saladbowl/internal/storage"
	"github.com/mmynk/saladbowl/pkg/api"
)

// BillingService implements the Connect BillingService.
type BillingService struct {
	store     storage.ParticipantStore
	validator Validator
	logger    *slog.Logger
}

// NewBillingService creates a new BillingService.
func NewBillingService(store storage.ParticipantStore, validator Validator, logger *slog.Logger) *BillingService {
	return &BillingService{store: store, validator: validator, logger: logger}
}

// GetBillingSplit divides a receipt total evenly across the roster.
func (s *BillingService) GetBillingSplit(ctx context.Context, req *connect.Request[api.GetBillingSplitRequest]) (*connect.Response[api.BillingSplit], error) {
	if err := s.validator.Validate(req.Msg); err != nil {
		return nil, err
	}

	count, err := s.store.CountParticipants(ctx)
	if err != nil {
		s.logger.Error("GetBillingSplit failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	split, err := calculator.SplitEvenly(*req.Msg.Total, count)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	return connect.NewResponse(&api.BillingSplit{
		ParticipantCount: split.ParticipantCount,
		Total:            split.Total,
		Share:            split.Share,
	}), nil
}
