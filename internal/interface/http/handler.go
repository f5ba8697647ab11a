package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmfrazier/pawtrack/internal/domain/events"
	"github.com/jmfrazier/pawtrack/internal/domain/pets"
	"github.com/jmfrazier/pawtrack/internal/domain/reviews"
	apperrors "github.com/jmfrazier/pawtrack/pkg/errors"
)

// maxPhotoBytes bounds pet photo uploads.
const maxPhotoBytes = 10 << 20

// Handler wires the CRUD resources to the transport.
type Handler struct {
	petSvc    pets.Service
	eventSvc  events.Service
	reviewSvc reviews.Service
	logger    *slog.Logger
}

// NewHandler constructs the resource HTTP handler.
func NewHandler(petSvc pets.Service, eventSvc events.Service, reviewSvc reviews.Service, logger *slog.Logger) *Handler {
	return &Handler{
		petSvc:    petSvc,
		eventSvc:  eventSvc,
		reviewSvc: reviewSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// ListPets handles GET /pets.
func (h *Handler) ListPets(c *gin.Context) {
	items, err := h.petSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	if items == nil {
		items = []pets.Pet{}
	}
	c.JSON(http.StatusOK, items)
}

// GetPet handles GET /pets/:id.
func (h *Handler) GetPet(c *gin.Context) {
	pet, err := h.petSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusOK, pet)
}

// CreatePet handles POST /pets.
func (h *Handler) CreatePet(c *gin.Context) {
	var pet pets.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	created, err := h.petSvc.Create(c.Request.Context(), pet)
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePet handles PUT /pets/:id.
func (h *Handler) UpdatePet(c *gin.Context) {
	var pet pets.Pet
	if err := c.ShouldBindJSON(&pet); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if pet.ID == "" || pet.ID != c.Param("id") {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Request path ID and body IDs must match", nil))
		return
	}
	updated, err := h.petSvc.Update(c.Request.Context(), c.Param("id"), pet)
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusCreated, updated)
}

// DeletePet handles DELETE /pets/:id.
func (h *Handler) DeletePet(c *gin.Context) {
	if err := h.petSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadPetPhoto handles POST /pets/:id/photo. The body is the raw image.
func (h *Handler) UploadPetPhoto(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxPhotoBytes)
	data, err := c.GetRawData()
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusRequestEntityTooLarge, "payload_too_large", "photo exceeds upload limit", err))
		return
	}
	mimeType := c.ContentType()
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	pet, err := h.petSvc.UploadPhoto(c.Request.Context(), c.Param("id"), data, mimeType)
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusCreated, pet)
}

// ListEvents handles GET /events.
func (h *Handler) ListEvents(c *gin.Context) {
	items, err := h.eventSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	if items == nil {
		items = []events.Event{}
	}
	c.JSON(http.StatusOK, items)
}

// GetEvent handles GET /events/:id.
func (h *Handler) GetEvent(c *gin.Context) {
	event, err := h.eventSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent handles POST /events.
func (h *Handler) CreateEvent(c *gin.Context) {
	var event events.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	created, err := h.eventSvc.Create(c.Request.Context(), event)
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateEvent handles PUT /events/:id.
func (h *Handler) UpdateEvent(c *gin.Context) {
	var event events.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if event.ID == "" || event.ID != c.Param("id") {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "Request path ID and body IDs must match", nil))
		return
	}
	updated, err := h.eventSvc.Update(c.Request.Context(), c.Param("id"), event)
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusCreated, updated)
}

// DeleteEvent handles DELETE /events/:id.
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.eventSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// ListReviews handles GET /roadie.
func (h *Handler) ListReviews(c *gin.Context) {
	items, err := h.reviewSvc.List(c.Request.Context())
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	if items == nil {
		items = []reviews.Review{}
	}
	c.JSON(http.StatusOK, items)
}

// CreateReview handles POST /roadie.
func (h *Handler) CreateReview(c *gin.Context) {
	var review reviews.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	created, err := h.reviewSvc.Create(c.Request.Context(), review)
	if err != nil {
		abortWithError(c, resourceError(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

func resourceError(err error) *HTTPError {
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		return NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err)
	case apperrors.IsCode(err, "not_found"):
		return NewHTTPError(http.StatusNotFound, "not_found", errMessage(err), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal_error", "Internal server error", err)
	}
}
