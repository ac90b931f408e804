package middleware

import (
	"agrirent/infras/jwt"
	"agrirent/infras/otel"
	sessionModel "agrirent/internal/domains/session/model"
	sessionService "agrirent/internal/domains/session/service"
	"agrirent/permissions"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/transport/http/response"
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// Auth defines the interface for authentication middleware
type Auth interface {
	Auth(http.Handler) http.Handler
}

// Role defines the interface for role-based access control middleware
type Role interface {
	RBAC(http.Handler) http.Handler
}

// AuthRole combines all middleware interfaces
type AuthRole interface {
	Auth
	Role
}

type authRoleImpl struct {
	jwtService jwt.JWT
	sessions   sessionService.Session
	otel       otel.Otel
	permission *permissions.PermissionData
}

func NewAuthRoleMiddleware(jwtService jwt.JWT, sessions sessionService.Session, otel otel.Otel, permissions *permissions.PermissionData) AuthRole {
	return &authRoleImpl{
		jwtService: jwtService,
		sessions:   sessions,
		otel:       otel,
		permission: permissions,
	}
}

// Auth resolves the bearer token to a stored session and binds it to the request.
// Public endpoints accept anonymous requests; they still get the session when a
// valid token is sent, and otherwise read the language from Accept-Language.
func (m *authRoleImpl) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "auth.middleware")

		path := m.routePattern(request)
		permission := m.findPermission(path, request.Method)

		scope.SetAttributes(map[string]any{
			"middleware.type": "auth",
			"http.path":       path,
			"http.method":     request.Method,
		})

		sessionCtx, err := m.authenticate(ctx, authorization(request))

		switch {
		case err == nil:
			ctx = sessionCtx
		case permission.Skip:
			ctx = withRequestLanguage(ctx, request.Header.Get(constant.RequestHeaderLanguage))
		default:
			scope.TraceError(err)
			scope.End()

			response.WithError(writer, err)

			return
		}

		scope.End()

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// authorization reads the bearer token. Browsers cannot set headers on a websocket
// handshake, so upgrades may carry the token in the query string instead.
func authorization(request *http.Request) string {
	header := request.Header.Get(constant.RequestHeaderAuthorization)
	if header != "" || !websocket.IsWebSocketUpgrade(request) {
		return header
	}

	if token := request.URL.Query().Get(constant.RequestParamToken); token != "" {
		return "Bearer " + token
	}

	return ""
}

func (m *authRoleImpl) authenticate(ctx context.Context, authHeader string) (context.Context, error) {
	if authHeader == "" {
		return ctx, failure.Unauthorized("Missing authorization header")
	}

	tokenString, err := jwt.ExtractTokenFromHeader(authHeader)
	if err != nil {
		return ctx, failure.Unauthorized("Invalid authorization header format")
	}

	claims, err := m.jwtService.Validate(tokenString)
	if err != nil {
		var message string

		switch {
		case errors.Is(err, jwt.ErrExpiredToken):
			message = "Token has expired"
		case errors.Is(err, jwt.ErrInvalidClaim):
			message = "Invalid token claims"
		default:
			message = "Invalid token"
		}

		return ctx, failure.Unauthorized(message)
	}

	session, err := m.sessions.Load(ctx, claims)
	if err != nil {
		log.Debug().Err(err).Str("sessionID", claims.SessionID).Msg("session rejected")

		return ctx, err
	}

	return sessionModel.WithSession(ctx, session), nil
}

// RBAC checks the role of the session against the roles allowed on the endpoint.
// Requires prior authentication via Auth middleware.
func (m *authRoleImpl) RBAC(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := request.Context()
		_, scope := m.otel.NewScope(ctx, constant.OtelHandlerScopeName, "rbac.middleware")

		if m.permission == nil {
			scope.End()
			response.WithError(writer, failure.ForbiddenError)

			return
		}

		permission := m.findPermission(m.routePattern(request), request.Method)

		if permission.Skip || len(permission.Permissions) == 0 {
			scope.End()
			next.ServeHTTP(writer, request)

			return
		}

		userRole, _ := ctx.Value(constant.ContextKeyUserRole).(string)

		if !slices.Contains(permission.Permissions, userRole) {
			err := failure.ForbiddenError
			scope.TraceError(err)
			scope.SetAttributes(map[string]any{
				"user_role":     userRole,
				"allowed_roles": permission.Permissions,
				"reason":        "role_not_allowed",
			})
			scope.End()
			response.WithError(writer, err)

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}

func (m *authRoleImpl) routePattern(request *http.Request) string {
	rctx := chi.RouteContext(request.Context())
	if rctx == nil || rctx.Routes == nil {
		return request.URL.Path
	}

	return rctx.Routes.Find(chi.NewRouteContext(), request.Method, request.URL.Path)
}

func (m *authRoleImpl) findPermission(path, method string) permissions.Permission {
	if m.permission == nil {
		return permissions.Permission{}
	}

	if m.permission.Skip {
		return permissions.Permission{Skip: true}
	}

	return m.permission.FindPermissions(path, method)
}

// withRequestLanguage binds the first supported language of an Accept-Language header.
func withRequestLanguage(ctx context.Context, header string) context.Context {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		lang := strings.ToLower(strings.SplitN(tag, "-", 2)[0])

		if sessionModel.ValidLanguage(lang) {
			return context.WithValue(ctx, constant.ContextKeyLanguage, lang)
		}
	}

	return ctx
}
