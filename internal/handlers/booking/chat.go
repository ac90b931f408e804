package booking

import (
	"agrirent/internal/domains/message/model"
	"agrirent/internal/domains/message/model/dto"
	"agrirent/internal/domains/message/service"
	"agrirent/shared"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/validator"
	"agrirent/transport/http/response"
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	frameMessages = "messages"
	frameSend     = "send"
	frameError    = "error"

	chatWriteWait  = 10 * time.Second
	chatPongWait   = 60 * time.Second
	chatPingPeriod = 30 * time.Second
	chatReadLimit  = 4096
	chatSendBuffer = 16
)

var errClientLeft = errors.New("chat client left")

// frame is one websocket message in either direction.
type frame struct {
	Type      string                `json:"type"`
	Messages  []dto.MessageResponse `json:"messages,omitempty"`
	Content   string                `json:"content,omitempty"`
	Error     string                `json:"error,omitempty"`
	Timestamp time.Time             `json:"timestamp"`
}

// Chat upgrades to a websocket that pushes new messages of a booking as they are
// polled from the backend and accepts "send" frames from the client.
// @Summary Booking chat stream
// @Tags Message
// @Param id path string true "Booking ID"
// @Success 101
// @Failure 403 {object} response.Error
// @Router /v1/bookings/{id}/chat [get]
// @Security BearerAuth
func (handler *Handler) Chat(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Chat")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)
	role := shared.UserRole(ctx)
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	poller, err := handler.messages.Watch(ctx, role, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to open chat")

		response.WithError(writer, err)

		return
	}

	upgrader := websocket.Upgrader{CheckOrigin: handler.checkOrigin}

	conn, err := upgrader.Upgrade(writer, request, nil)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("bookingID", id).Msg("failed to upgrade chat connection")

		return
	}

	s := &chatStream{
		conn:      conn,
		send:      make(chan frame, chatSendBuffer),
		handler:   handler,
		poller:    poller,
		role:      role,
		userID:    userID,
		bookingID: id,
	}

	if err = s.run(ctx); err != nil {
		log.Debug().Err(err).Str("bookingID", id).Msg("chat stream closed")
	}

	scope.AddEvent("Chat closed")
}

func (handler *Handler) checkOrigin(request *http.Request) bool {
	origin := request.Header.Get("Origin")
	if origin == constant.Empty || !handler.cfg.App.CORS.Enable {
		return true
	}

	allowed := handler.cfg.App.CORS.AllowedOrigins

	return slices.Contains(allowed, constant.Asterix) || slices.Contains(allowed, origin)
}

type chatStream struct {
	conn      *websocket.Conn
	send      chan frame
	handler   *Handler
	poller    *service.Poller
	role      string
	userID    string
	bookingID string
}

// run serves the connection until the client leaves or a write fails. Polling,
// reading and writing each have their own goroutine and the first to stop ends
// the others.
func (s *chatStream) run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.poller.Run(gCtx, s.emit)
	})

	g.Go(func() error {
		return s.writePump(gCtx)
	})

	g.Go(func() error {
		return s.readPump(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()

		return s.conn.Close()
	})

	if err := g.Wait(); !errors.Is(err, errClientLeft) {
		return err
	}

	return nil
}

func (s *chatStream) emit(ctx context.Context, messages []model.Message) error {
	return s.push(ctx, frame{Type: frameMessages, Messages: dto.FromModels(messages, s.userID)})
}

func (s *chatStream) push(ctx context.Context, f frame) error {
	f.Timestamp = time.Now()

	select {
	case s.send <- f:
		return nil
	case <-ctx.Done():
		return nil
	}
}

func (s *chatStream) writePump(ctx context.Context) error {
	ticker := time.NewTicker(chatPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			_ = s.conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(chatWriteWait))

			return nil
		case f := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(chatWriteWait))

			if err := s.conn.WriteJSON(f); err != nil {
				return err
			}
		case <-ticker.C:
			if err := s.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(chatWriteWait)); err != nil {
				return err
			}
		}
	}
}

func (s *chatStream) readPump(ctx context.Context) error {
	s.conn.SetReadLimit(chatReadLimit)
	_ = s.conn.SetReadDeadline(time.Now().Add(chatPongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(chatPongWait))
	})

	for {
		var in frame
		if err := s.conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && ctx.Err() == nil {
				return err
			}

			return errClientLeft
		}

		if in.Type != frameSend {
			continue
		}

		if err := s.sendMessage(ctx, in.Content); err != nil {
			if pushErr := s.push(ctx, frame{Type: frameError, Error: failure.Message(err)}); pushErr != nil {
				return pushErr
			}
		}
	}
}

// sendMessage posts a message and asks the poller to fetch it back, so that the
// client receives its own message through the same stream as its peer's.
func (s *chatStream) sendMessage(ctx context.Context, content string) error {
	req := dto.SendMessageRequest{BookingID: s.bookingID, Content: content}

	if err := validator.ValidateStruct(&req); err != nil {
		return err
	}

	if _, err := s.handler.messages.Send(ctx, s.role, req); err != nil {
		return err
	}

	s.poller.Refresh()

	return nil
}
