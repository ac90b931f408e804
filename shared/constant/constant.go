package constant

import (
	"time"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeySession   contextKey = "session"
	ContextKeySessionID contextKey = "session_id"
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyLanguage  contextKey = "language"

	ContextKeyBackendCookie contextKey = "backend_cookie"
)

const (
	RoleFarmer = "FARMER"
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
)

const (
	LanguageEnglish = "en"
	LanguageHindi   = "hi"
	LanguageMarathi = "mr"
)

const (
	RequestParamID        = "id"
	RequestParamAction    = "action"
	RequestParamCategory  = "category"
	RequestParamLatitude  = "lat"
	RequestParamLongitude = "lng"
	RequestParamToken     = "token"
	RequestMaxMemory      = 10 << 20 // 10 MB
)

const (
	DateFormat     = time.RFC3339
	DateOnlyFormat = "2006-01-02"
	TimeOnlyFormat = "15:04"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelExternalScopeName   = "external"

	OtelBackendPathAttributeKey = "backend.path"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderAccept             = "Accept"
	RequestHeaderCookie             = "Cookie"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderLanguage           = "Accept-Language"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeFormURLEncoded    = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFileImage                = "image"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	Asterix = "*"
	Empty   = ""
)
