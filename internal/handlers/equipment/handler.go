package equipment

import (
	"agrirent/infras/otel"
	"agrirent/internal/domains/equipment/model/dto"
	"agrirent/internal/domains/equipment/service"
	"agrirent/shared"
	"agrirent/shared/constant"
	"agrirent/shared/failure"
	"agrirent/shared/validator"
	"agrirent/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Equipment
	otel    otel.Otel
}

func New(service service.Equipment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/equipment", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEquipments)
		routerGroup.Post("/", handler.CreateEquipment)
		routerGroup.Get("/moderation", handler.GetEquipmentsForModeration)
		routerGroup.Get("/{id}", handler.GetEquipmentByID)
		routerGroup.Patch("/{id}", handler.UpdateEquipment)
		routerGroup.Delete("/{id}", handler.DeleteEquipment)
		routerGroup.Post("/{id}/approve", handler.ApproveEquipment)
	})
}

// GetEquipments lists approved equipment, nearest first when a location is given.
// @Summary List equipment
// @Tags Equipment
// @Produce json
// @Param category query string false "Tractor, Harvester, Planter, Tillage, Irrigation or Other"
// @Param lat query number false "Latitude"
// @Param lng query number false "Longitude"
// @Success 200 {object} response.Data[dto.GetEquipmentsResponse]
// @Failure 400 {object} response.Error
// @Router /v1/equipment [get]
func (handler *Handler) GetEquipments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipments")
	defer scope.End()

	req := dto.ListRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	equipment, err := handler.service.GetAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, equipment)
}

// GetEquipmentByID returns a listing with its rate card and reviews.
// @Summary Get equipment
// @Tags Equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} response.Data[dto.EquipmentDetailResponse]
// @Failure 404 {object} response.Error
// @Router /v1/equipment/{id} [get]
func (handler *Handler) GetEquipmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	equipment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to get equipment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, equipment)
}

// GetEquipmentsForModeration lists every listing, approved or not.
// @Summary List equipment for moderation
// @Tags Equipment
// @Produce json
// @Success 200 {object} response.Data[dto.GetEquipmentsResponse]
// @Failure 403 {object} response.Error
// @Router /v1/equipment/moderation [get]
// @Security BearerAuth
func (handler *Handler) GetEquipmentsForModeration(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEquipmentsForModeration")
	defer scope.End()

	equipment, err := handler.service.GetAllForModeration(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get equipment for moderation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, equipment)
}

// CreateEquipment lists a new machine for the calling owner.
// @Summary Create equipment
// @Tags Equipment
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param category formData string true "Category"
// @Param description formData string true "Description"
// @Param pricePerDay formData number true "Price per day"
// @Param pricePerHour formData number false "Price per hour"
// @Param pricePerWeek formData number false "Price per week"
// @Param location formData string true "Location"
// @Param latitude formData number false "Latitude"
// @Param longitude formData number false "Longitude"
// @Param availabilityFrom formData string true "YYYY-MM-DD"
// @Param availabilityTo formData string true "YYYY-MM-DD"
// @Param image formData file false "Image, at most 5 MB"
// @Success 201 {object} response.Data[dto.EquipmentResponse]
// @Failure 400 {object} response.Error
// @Router /v1/equipment [post]
// @Security BearerAuth
func (handler *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEquipment")
	defer scope.End()

	req, closeImage, err := handler.parseForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}
	defer closeImage()

	equipment, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create equipment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Equipment created")

	response.WithCreated(w, equipment)
}

// UpdateEquipment replaces the details of a listing. Owners edit their own
// listings, administrators any listing.
// @Summary Update equipment
// @Tags Equipment
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} response.Data[dto.EquipmentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/equipment/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEquipment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req, closeImage, err := handler.parseForm(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}
	defer closeImage()

	equipment, err := handler.service.Update(ctx, shared.UserRole(ctx), id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to update equipment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, equipment)
}

// DeleteEquipment removes a listing.
// @Summary Delete equipment
// @Tags Equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/equipment/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEquipment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, shared.UserRole(ctx), id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to delete equipment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Equipment deleted successfully")
}

// ApproveEquipment publishes a listing.
// @Summary Approve equipment
// @Tags Equipment
// @Produce json
// @Param id path string true "Equipment ID"
// @Success 200 {object} response.Message
// @Router /v1/equipment/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveEquipment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveEquipment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("equipmentID", id).Msg("failed to approve equipment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Equipment approved successfully")
}

// parseForm reads and validates a multipart listing form. The returned func closes
// the uploaded image, if any.
func (handler *Handler) parseForm(r *http.Request) (dto.SaveEquipmentRequest, func(), error) {
	req := dto.SaveEquipmentRequest{}
	closeImage := func() {}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		return req, closeImage, failure.BadRequest(err)
	}

	req.FromRequest(r)

	file, fileHeader, err := r.FormFile(constant.FormFileImage)
	if err == nil {
		req.Image = file
		req.ImageName = fileHeader.Filename
		req.ImageSize = fileHeader.Size
		req.ImageContentType = fileHeader.Header.Get(constant.RequestHeaderContentType)

		closeImage = func() { _ = file.Close() }
	}

	if err = validator.ValidateStruct(&req); err != nil {
		closeImage()

		return req, func() {}, err
	}

	return req, closeImage, nil
}
