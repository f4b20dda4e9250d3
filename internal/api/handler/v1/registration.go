package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/community-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/community-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/community-api/internal/api/middleware"
	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/service"
)

type RegistrationService interface {
	Register(ctx context.Context, req domain.RegistrationRequest) (domain.Registration, error)
	Cancel(ctx context.Context, eventID, userID uint) error
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register for an event
// @Description  Members register with their token and may redeem points. Anonymous callers register as guests with a name and contact.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                      true  "Event ID"
// @Param        request  body      request.RegisterRequest  true  "request body"
// @Success      201      {object}  domain.Registration
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/registrations [post]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleRegister(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.RegisterRequest
	// The body is optional for members.
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	reg, err := h.svc.Register(ctx.Request.Context(), domain.RegistrationRequest{
		EventID:      eventID,
		UserID:       optionalUserID(ctx),
		GuestName:    req.GuestName,
		GuestContact: req.GuestContact,
		PointsToUse:  req.PointsToUse,
	})
	if err != nil {
		renderRegistrationErr(ctx, eventID, fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, reg)
}

// HandleCancel godoc
// @Summary      Cancel the caller's registration
// @Description  Points earned or spent on the registration are kept as they are.
// @Tags         registrations
// @Param        eventID  path  int  true  "Event ID"
// @Success      204
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/registrations/me [delete]
// @Security     BearerAuth
func (h *RegistrationHandler) HandleCancel(ctx *gin.Context) {
	eventID, respErr := parseIDParam(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID := optionalUserID(ctx)
	if userID == nil {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingUser))
		return
	}

	if err := h.svc.Cancel(ctx.Request.Context(), eventID, *userID); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "eventID", eventID))
			return
		}

		err = fmt.Errorf("v1.HandleCancel -> h.svc.Cancel -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// renderRegistrationErr maps the failures shared by free and paid registrations.
func renderRegistrationErr(ctx *gin.Context, eventID uint, err error) {
	if errors.Is(err, service.ErrEventNotFound) {
		response.RenderErr(ctx, response.ErrNotFound("event", "eventID", eventID))
		return
	}
	if errors.Is(err, service.ErrUserNotFound) {
		userID, _ := middleware.UserID(ctx)
		response.RenderErr(ctx, response.ErrNotFound("user", "userID", userID))
		return
	}

	conflict := matchErr(err,
		service.ErrEventFull,
		service.ErrAlreadyRegistered,
		service.ErrEventClosed,
	)
	if conflict != nil {
		response.RenderErr(ctx, response.ErrConflict(conflict))
		return
	}

	invalid := matchErr(err,
		service.ErrRedemptionTooSmall,
		service.ErrRedemptionExceedsCost,
		service.ErrRedemptionExceedsBalance,
		service.ErrInsufficientPoints,
		service.ErrGuestInfoRequired,
		service.ErrGuestCannotRedeem,
	)
	if invalid != nil {
		response.RenderErr(ctx, response.ErrBadRequest(invalid))
		return
	}

	response.RenderErr(ctx, response.ErrInternalServerError(err))
}

// matchErr returns the first target found in err's chain, so clients see the sentinel message
// without the internal call chain.
func matchErr(err error, targets ...error) error {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target
		}
	}

	return nil
}
