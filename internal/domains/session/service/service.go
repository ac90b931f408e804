package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/backend"
	"agrirent/infras/jwt"
	"agrirent/infras/otel"
	"agrirent/internal/domains/session/model"
	"agrirent/internal/domains/session/model/dto"
	"agrirent/internal/domains/session/repository"
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/timezone"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const messageOTPSent = "OTP sent successfully"

type Session interface {
	RequestOTP(ctx context.Context, req dto.RequestOTPRequest) (string, error)
	Verify(ctx context.Context, req dto.VerifyOTPRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Current(ctx context.Context) (dto.SessionResponse, error)
	Load(ctx context.Context, claims *jwt.Claims) (*model.Session, error)
	Logout(ctx context.Context) error
	SetLanguage(ctx context.Context, req dto.LanguageRequest) (dto.SessionResponse, error)
	Translations(ctx context.Context) dto.TranslationsResponse
}

type serviceImpl struct {
	auth  repository.Auth
	store repository.Store
	jwt   jwt.JWT
	cfg   *config.Config
	otel  otel.Otel
}

func New(auth repository.Auth, store repository.Store, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Session {
	return &serviceImpl{
		auth:  auth,
		store: store,
		jwt:   jwt,
		cfg:   cfg,
		otel:  otel,
	}
}

func (s *serviceImpl) RequestOTP(ctx context.Context, req dto.RequestOTPRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.RequestOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.auth.RequestOTP(ctx, req.PhoneNumber); err != nil {
		log.Error().Err(err).Msg("failed to request otp")

		return res, fmt.Errorf("failed to request otp: %w", err)
	}

	return messageOTPSent, nil
}

// Verify exchanges a valid OTP for a backend session, stores it next to the user
// and the preferred language, and returns a bearer token naming the stored session.
func (s *serviceImpl) Verify(ctx context.Context, req dto.VerifyOTPRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, cookie, err := s.auth.VerifyOTP(ctx, req)
	if errors.Is(err, repository.ErrMissingCredentials) {
		log.Error().Err(err).Msg("backend accepted otp without a session")

		return res, failure.UpstreamUnavailableError
	}

	if err != nil {
		log.Warn().Err(err).Msg("otp verification failed")

		return res, fmt.Errorf("failed to verify otp: %w", err)
	}

	user, err := s.auth.Me(backend.WithCredentials(ctx, cookie))
	if err != nil {
		log.Error().Err(err).Msg("failed to load verified user")

		return res, fmt.Errorf("failed to load user: %w", err)
	}

	session := model.Session{
		ID:            uuid.NewString(),
		User:          user,
		BackendCookie: cookie,
		Language:      model.LanguageFromContext(ctx, s.cfg.App.DefaultLanguage),
		CreatedAt:     timezone.Now(),
	}

	if err = s.store.Save(ctx, session, s.jwt.TTL()); err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("failed to store session")

		return res, failure.InternalError(fmt.Errorf("failed to store session: %w", err)) //nolint:wrapcheck
	}

	token, err := s.jwt.Issue(session.ID, user.ID, user.Role)
	if err != nil {
		log.Error().Err(err).Str("userID", user.ID).Msg("failed to issue token")

		return res, failure.InternalError(fmt.Errorf("failed to issue token: %w", err)) //nolint:wrapcheck
	}

	res.Token = *token
	res.SessionResponse.FromModel(session)

	return res, nil
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	message, user, err := s.auth.Register(ctx, req)
	if err != nil {
		log.Error().Err(err).Str("role", req.Role).Msg("failed to register user")

		return res, fmt.Errorf("failed to register: %w", err)
	}

	res.FromModel(message, user)

	return res, nil
}

func (s *serviceImpl) Current(ctx context.Context) (res dto.SessionResponse, err error) {
	session, ok := model.FromContext(ctx)
	if !ok {
		return res, failure.SessionExpiredError
	}

	res.FromModel(*session)

	return res, nil
}

// Load resolves the stored session named by validated token claims.
func (s *serviceImpl) Load(ctx context.Context, claims *jwt.Claims) (res *model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, err := s.store.Get(ctx, claims.SessionID)
	if errors.Is(err, cache.Nil) {
		return nil, failure.SessionExpiredError
	}

	if err != nil {
		log.Error().Err(err).Str("sessionID", claims.SessionID).Msg("failed to load session")

		return nil, failure.InternalError(fmt.Errorf("failed to load session: %w", err)) //nolint:wrapcheck
	}

	if session.User.ID != claims.UserID {
		log.Warn().Str("sessionID", claims.SessionID).Msg("token does not match stored session")

		return nil, failure.SessionExpiredError
	}

	return &session, nil
}

// Logout ends the backend session on a best effort basis and always forgets the
// stored one.
func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	session, ok := model.FromContext(ctx)
	if !ok {
		return failure.SessionExpiredError
	}

	if logoutErr := s.auth.Logout(ctx); logoutErr != nil {
		log.Warn().Err(logoutErr).Str("sessionID", session.ID).Msg("backend logout failed")
	}

	if err = s.store.Delete(ctx, session.ID); err != nil {
		log.Error().Err(err).Str("sessionID", session.ID).Msg("failed to delete session")

		return failure.InternalError(fmt.Errorf("failed to delete session: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) SetLanguage(ctx context.Context, req dto.LanguageRequest) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.SetLanguage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, ok := model.FromContext(ctx)
	if !ok {
		return res, failure.SessionExpiredError
	}

	if !model.ValidLanguage(req.Language) {
		return res, failure.BadRequestFromString("unsupported language") //nolint:wrapcheck
	}

	updated := *current
	updated.Language = req.Language

	remaining := updated.Remaining(timezone.Now(), s.jwt.TTL())
	if remaining <= 0 {
		return res, failure.SessionExpiredError
	}

	if err = s.store.Save(ctx, updated, remaining); err != nil {
		log.Error().Err(err).Str("sessionID", updated.ID).Msg("failed to update session language")

		return res, failure.InternalError(fmt.Errorf("failed to update session: %w", err)) //nolint:wrapcheck
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) Translations(ctx context.Context) (res dto.TranslationsResponse) {
	res.FromLanguage(model.LanguageFromContext(ctx, s.cfg.App.DefaultLanguage))

	return res
}
