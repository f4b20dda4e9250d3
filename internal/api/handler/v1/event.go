package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/community-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/community-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/service"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event, creator domain.User) (domain.Event, error)
	GetEvent(ctx context.Context, id uint) (domain.EventDetails, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, id uint, actor domain.User) error
	CompleteEvent(ctx context.Context, id uint, actor domain.User) (domain.Event, error)
	GetRegistrations(ctx context.Context, id uint, actor domain.User) ([]domain.Registration, error)
}

type EventHandler struct {
	svc  EventService
	uSvc UserService
}

func NewEventHandler(svc EventService, uSvc UserService) *EventHandler {
	return &EventHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Staff only. A six character short code is assigned from the creation date.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateEventRequest  true  "request body"
// @Success      201      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), domain.Event{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		ScheduledAt:     req.ScheduledAt,
		EndsAt:          req.EndsAt,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
	}, user)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			response.RenderErr(ctx, response.ErrPermissionDenied(err))
		case errors.Is(err, service.ErrInvalidEvent):
			response.RenderErr(ctx, response.ErrBadRequest(err))
		default:
			err = fmt.Errorf("v1.HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleListEvents godoc
// @Summary      List scheduled events
// @Tags         events
// @Produce      json
// @Success      200  {array}   domain.Event
// @Failure      500  {object}  response.Err
// @Router       /events [get]
func (h *EventHandler) HandleListEvents(ctx *gin.Context) {
	events, err := h.svc.ListEvents(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListEvents -> h.svc.ListEvents -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event with its confirmed count
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  domain.EventDetails
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [get]
func (h *EventHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	details, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "eventID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleGetEvent -> h.svc.GetEvent -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, details)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event and its registrations
// @Tags         events
// @Param        eventID  path  int  true  "Event ID"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
// @Security     BearerAuth
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	user, eventID, ok := h.managerRequest(ctx)
	if !ok {
		return
	}

	if err := h.svc.DeleteEvent(ctx.Request.Context(), eventID, user); err != nil {
		h.renderManageErr(ctx, eventID, fmt.Errorf("v1.HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleCompleteEvent godoc
// @Summary      Mark an event as completed
// @Description  Completed events no longer accept registrations.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  domain.Event
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/complete [post]
// @Security     BearerAuth
func (h *EventHandler) HandleCompleteEvent(ctx *gin.Context) {
	user, eventID, ok := h.managerRequest(ctx)
	if !ok {
		return
	}

	event, err := h.svc.CompleteEvent(ctx.Request.Context(), eventID, user)
	if err != nil {
		h.renderManageErr(ctx, eventID, fmt.Errorf("v1.HandleCompleteEvent -> h.svc.CompleteEvent -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, event)
}

// HandleGetRegistrations godoc
// @Summary      List the registrations of an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {array}   domain.Registration
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/registrations [get]
// @Security     BearerAuth
func (h *EventHandler) HandleGetRegistrations(ctx *gin.Context) {
	user, eventID, ok := h.managerRequest(ctx)
	if !ok {
		return
	}

	regs, err := h.svc.GetRegistrations(ctx.Request.Context(), eventID, user)
	if err != nil {
		h.renderManageErr(ctx, eventID, fmt.Errorf("v1.HandleGetRegistrations -> h.svc.GetRegistrations -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, regs)
}

func (h *EventHandler) managerRequest(ctx *gin.Context) (domain.User, uint, bool) {
	user, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return domain.User{}, 0, false
	}

	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return domain.User{}, 0, false
	}

	return user, eventID, true
}

func (h *EventHandler) renderManageErr(ctx *gin.Context, eventID uint, err error) {
	switch {
	case errors.Is(err, service.ErrEventNotFound):
		response.RenderErr(ctx, response.ErrNotFound("event", "eventID", eventID))
	case errors.Is(err, service.ErrPermissionDenied):
		response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrPermissionDenied))
	default:
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
