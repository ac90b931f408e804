package user

import (
	"agrirent/infras/otel"
	"agrirent/internal/domains/user/model/dto"
	"agrirent/internal/domains/user/service"
	"agrirent/shared"
	"agrirent/shared/constant"
	"agrirent/shared/validator"
	"agrirent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryRole    = "role"
	queryBlocked = "blocked"
)

type Handler struct {
	service service.User
	otel    otel.Otel
}

func New(service service.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/users", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUsers)
		routerGroup.Get("/me", handler.GetProfile)
		routerGroup.Patch("/me", handler.UpdateProfile)
		routerGroup.Post("/{id}/block", handler.BlockUser)
		routerGroup.Post("/{id}/unblock", handler.UnblockUser)
	})
}

// GetProfile returns the profile of the caller.
// @Summary Get profile
// @Tags User
// @Produce json
// @Success 200 {object} response.Data[dto.UserResponse]
// @Router /v1/users/me [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	user, err := handler.service.Profile(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// UpdateProfile changes the contact details of the caller.
// @Summary Update profile
// @Tags User
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} response.Data[dto.UserResponse]
// @Failure 400 {object} response.Error
// @Router /v1/users/me [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	user, err := handler.service.UpdateProfile(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, user)
}

// GetUsers lists the users of the platform.
// @Summary List users
// @Tags User
// @Produce json
// @Param role query string false "FARMER, OWNER or ADMIN"
// @Param blocked query boolean false "Only blocked or unblocked users"
// @Success 200 {object} response.Data[dto.GetUsersResponse]
// @Failure 403 {object} response.Error
// @Router /v1/users [get]
// @Security BearerAuth
func (handler *Handler) GetUsers(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUsers")
	defer scope.End()

	req := dto.UsersRequest{
		Role:    request.URL.Query().Get(queryRole),
		Blocked: shared.ConvertStringToBool(request.URL.Query().Get(queryBlocked)),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	users, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get users")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, users)
}

// BlockUser blocks a farmer or owner.
// @Summary Block user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Router /v1/users/{id}/block [post]
// @Security BearerAuth
func (handler *Handler) BlockUser(writer http.ResponseWriter, request *http.Request) {
	handler.setBlocked(writer, request, true)
}

// UnblockUser lifts a block.
// @Summary Unblock user
// @Tags User
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} response.Message
// @Router /v1/users/{id}/unblock [post]
// @Security BearerAuth
func (handler *Handler) UnblockUser(writer http.ResponseWriter, request *http.Request) {
	handler.setBlocked(writer, request, false)
}

func (handler *Handler) setBlocked(writer http.ResponseWriter, request *http.Request, blocked bool) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetBlocked")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	if err := handler.service.SetBlocked(ctx, id, blocked); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("userID", id).Bool("blocked", blocked).Msg("failed to change user block")

		response.WithError(writer, err)

		return
	}

	if blocked {
		response.WithMessage(writer, http.StatusOK, "User blocked successfully")

		return
	}

	response.WithMessage(writer, http.StatusOK, "User unblocked successfully")
}
