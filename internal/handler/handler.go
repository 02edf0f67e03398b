package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/domain"
	"github.com/Dakshan-Kumar-A/TravelBookingApp/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	GetByID(ctx context.Context, id string) (*domain.Destination, error)
	List(ctx context.Context) ([]*domain.Destination, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
}

const (
	msgReadDestinations = "failed to read destinations"
	msgCreateBooking    = "failed to create booking"
	msgReadBookings     = "failed to read bookings"
)

type Handler struct {
	catalogService CatalogSvc
	bookingService BookingSvc
	now            func() time.Time
}

func NewHandler(catalogService CatalogSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		catalogService: catalogService,
		bookingService: bookingService,
		now:            time.Now,
	}
}

// Destinations

func (h *Handler) ListDestinations(c *ginext.Context) {
	destinations, err := h.catalogService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, msgReadDestinations)
		return
	}

	resp := make([]dto.DestinationResponse, 0, len(destinations))
	for _, d := range destinations {
		resp = append(resp, dto.ToDestinationResponse(d))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetDestination(c *ginext.Context) {
	destination, err := h.catalogService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, msgReadDestinations)
		return
	}

	c.JSON(http.StatusOK, dto.ToDestinationResponse(destination))
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Set("error", err.Error())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err, msgCreateBooking)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Message: "Booking successful",
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, msgReadBookings)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	booking, err := h.bookingService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, msgReadBookings)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *Handler) Health(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.NewHealthResponse(h.now()))
}

func (h *Handler) handleError(c *ginext.Context, err error, internalMsg string) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrDestinationNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: internalMsg})
	}
}
