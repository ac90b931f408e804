package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/otel"
	bookingModel "agrirent/internal/domains/booking/model"
	bookingService "agrirent/internal/domains/booking/service"
	"agrirent/internal/domains/message/model"
	"agrirent/internal/domains/message/model/dto"
	"agrirent/internal/domains/message/repository"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

const defaultPollInterval = 5 * time.Second

type Message interface {
	Thread(ctx context.Context, role, bookingID string) (dto.ThreadResponse, error)
	Send(ctx context.Context, role string, req dto.SendMessageRequest) (dto.MessageResponse, error)
	Watch(ctx context.Context, role, bookingID string) (*Poller, error)
}

type serviceImpl struct {
	repo     repository.Message
	bookings bookingService.Booking
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Message, bookings bookingService.Booking, cfg *config.Config, otel otel.Otel) Message {
	return &serviceImpl{
		repo:     repo,
		bookings: bookings,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Thread(ctx context.Context, role, bookingID string) (res dto.ThreadResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Thread")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, userID, err := s.participant(ctx, role, bookingID)
	if err != nil {
		return res, err
	}

	messages, err := s.repo.List(ctx, bookingID)
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get messages")

		return res, fmt.Errorf("failed to get messages: %w", err)
	}

	res.FromModel(booking, messages, userID)

	return res, nil
}

func (s *serviceImpl) Send(ctx context.Context, role string, req dto.SendMessageRequest) (res dto.MessageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{"booking.id": req.BookingID})

	_, userID, err := s.participant(ctx, role, req.BookingID)
	if err != nil {
		return res, err
	}

	message, err := s.repo.Send(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("bookingID", req.BookingID).Msg("failed to send message")

		return res, fmt.Errorf("failed to send message: %w", err)
	}

	if message.BookingID == "" {
		message.BookingID = req.BookingID
	}

	res.FromModel(message, userID)

	return res, nil
}

// Watch checks that the caller takes part in the booking and returns a poller of
// its thread. The caller runs the poller for as long as it listens.
func (s *serviceImpl) Watch(ctx context.Context, role, bookingID string) (res *Poller, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".message.Watch")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, _, err = s.participant(ctx, role, bookingID); err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context) ([]model.Message, error) {
		return s.repo.List(ctx, bookingID)
	}

	return NewPoller(bookingID, fetch, s.pollInterval()), nil
}

// participant loads the booking from the caller's dashboard and refuses anyone who is
// neither its farmer nor the owner of its equipment.
func (s *serviceImpl) participant(ctx context.Context, role, bookingID string) (bookingModel.Booking, string, error) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if userID == "" {
		return bookingModel.Booking{}, "", failure.Unauthorized("login required") // nolint:wrapcheck
	}

	booking, err := s.bookings.Find(ctx, role, bookingID)
	if err != nil {
		return booking, userID, fmt.Errorf("failed to open chat: %w", err)
	}

	if !booking.Participant(userID) {
		return booking, userID, failure.ForbiddenError
	}

	return booking, userID, nil
}

func (s *serviceImpl) pollInterval() time.Duration {
	if s.cfg.Chat.PollIntervalSeconds <= 0 {
		return defaultPollInterval
	}

	return time.Duration(s.cfg.Chat.PollIntervalSeconds) * time.Second
}
