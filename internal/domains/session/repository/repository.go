package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agrirent/config"
	"agrirent/infras/backend"
	"agrirent/infras/otel"
	"agrirent/internal/domains/session/model"
	"agrirent/internal/domains/session/model/dto"
	userModel "agrirent/internal/domains/user/model"
	"agrirent/shared"
	"agrirent/shared/cache"
	"agrirent/shared/constant"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	pathLogin     = "/api/auth/login"
	pathVerifyOTP = "/api/auth/verify-otp"
	pathRegister  = "/api/auth/register"
	pathMe        = "/api/auth/me"
	pathLogout    = "/api/auth/logout"

	paramPhoneNumber = "phoneNumber"
	paramOTP         = "otp"
)

var ErrMissingCredentials = errors.New("backend did not issue a session cookie")

// Auth talks to the authentication endpoints of the marketplace backend.
type Auth interface {
	RequestOTP(ctx context.Context, phoneNumber string) error
	VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (userModel.User, string, error)
	Register(ctx context.Context, req dto.RegisterRequest) (string, userModel.User, error)
	Me(ctx context.Context) (userModel.User, error)
	Logout(ctx context.Context) error
}

// Store keeps sessions in redis under "session:<id>".
type Store interface {
	Save(ctx context.Context, session model.Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (model.Session, error)
	Delete(ctx context.Context, id string) error
}

type authImpl struct {
	client backend.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewAuth(client backend.Client, cfg *config.Config, otel otel.Otel) Auth {
	return &authImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (r *authImpl) RequestOTP(ctx context.Context, phoneNumber string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.RequestOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{
		Method:    http.MethodPost,
		Path:      pathLogin,
		Query:     url.Values{paramPhoneNumber: {phoneNumber}},
		Anonymous: true,
	}, nil)

	return err
}

// VerifyOTP returns the verified user and the backend session cookie now bound to it.
func (r *authImpl) VerifyOTP(ctx context.Context, req dto.VerifyOTPRequest) (user userModel.User, cookie string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.VerifyOTP")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err := r.client.Do(ctx, backend.Request{
		Method:    http.MethodPost,
		Path:      pathVerifyOTP,
		Query:     url.Values{paramPhoneNumber: {req.PhoneNumber}, paramOTP: {req.OTP}},
		Anonymous: true,
	}, &user)
	if err != nil {
		return user, cookie, err
	}

	c, ok := res.Cookie(r.cfg.Backend.SessionCookie)
	if !ok || c.Value == constant.Empty {
		return user, cookie, ErrMissingCredentials
	}

	return user, c.Value, nil
}

func (r *authImpl) Register(ctx context.Context, req dto.RegisterRequest) (message string, user userModel.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var res struct {
		Message string         `json:"message"`
		User    userModel.User `json:"user"`
	}

	_, err = r.client.Do(ctx, backend.Request{
		Method:    http.MethodPost,
		Path:      pathRegister,
		Body:      req,
		Anonymous: true,
	}, &res)

	return res.Message, res.User, err
}

func (r *authImpl) Me(ctx context.Context) (user userModel.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodGet, Path: pathMe}, &user)

	return user, err
}

func (r *authImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".session.Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = r.client.Do(ctx, backend.Request{Method: http.MethodPost, Path: pathLogout}, nil)

	return err
}

type storeImpl struct {
	cache cache.RedisCache
}

func NewStore(cache cache.RedisCache) Store {
	return &storeImpl{cache: cache}
}

func (r *storeImpl) Save(ctx context.Context, session model.Session, ttl time.Duration) error {
	seconds := int(ttl / time.Second)
	if seconds <= 0 {
		return fmt.Errorf("session %s has no lifetime left", session.ID)
	}

	return r.cache.Save(ctx, shared.BuildCacheKey(model.CacheKeySession, session.ID), session, seconds) //nolint:wrapcheck
}

func (r *storeImpl) Get(ctx context.Context, id string) (session model.Session, err error) {
	err = r.cache.Get(ctx, shared.BuildCacheKey(model.CacheKeySession, id), &session)

	return session, err //nolint:wrapcheck
}

func (r *storeImpl) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, shared.BuildCacheKey(model.CacheKeySession, id)) //nolint:wrapcheck
}
