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

type PointsService interface {
	Adjust(ctx context.Context, actor domain.User, userID uint, amount int, description string) (int, error)
	History(ctx context.Context, userID uint) ([]domain.PointsLedgerEntry, error)
}

type PointsHandler struct {
	svc  PointsService
	uSvc UserService
}

func NewPointsHandler(svc PointsService, uSvc UserService) *PointsHandler {
	return &PointsHandler{
		svc:  svc,
		uSvc: uSvc,
	}
}

// HandleGetMyPoints godoc
// @Summary      Get the caller's points ledger, newest first
// @Tags         points
// @Produce      json
// @Success      200  {array}   domain.PointsLedgerEntry
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /users/me/points [get]
// @Security     BearerAuth
func (h *PointsHandler) HandleGetMyPoints(ctx *gin.Context) {
	userID := optionalUserID(ctx)
	if userID == nil {
		response.RenderErr(ctx, response.ErrUnauthorized(errMissingUser))
		return
	}

	entries, err := h.svc.History(ctx.Request.Context(), *userID)
	if err != nil {
		err = fmt.Errorf("v1.HandleGetMyPoints -> h.svc.History -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleAdjust godoc
// @Summary      Adjust a user's points
// @Description  Staff only. Negative amounts may not take the balance below zero.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        userID   path      int                          true  "User ID"
// @Param        request  body      request.AdjustPointsRequest  true  "request body"
// @Success      200      {object}  response.PointsAdjustmentResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /admin/users/{userID}/points [post]
// @Security     BearerAuth
func (h *PointsHandler) HandleAdjust(ctx *gin.Context) {
	actor, respErr := getUserFromContext(ctx, h.uSvc)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	userID, respErr := parseIDParam(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.AdjustPointsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	total, err := h.svc.Adjust(ctx.Request.Context(), actor, userID, req.Amount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPermissionDenied):
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrPermissionDenied))
		case errors.Is(err, service.ErrUserNotFound):
			response.RenderErr(ctx, response.ErrNotFound("user", "userID", userID))
		case errors.Is(err, service.ErrInvalidAdjustment):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidAdjustment))
		case errors.Is(err, service.ErrInsufficientPoints):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInsufficientPoints))
		default:
			err = fmt.Errorf("v1.HandleAdjust -> h.svc.Adjust -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}
		return
	}

	ctx.JSON(http.StatusOK, response.PointsAdjustmentResponse{
		Message:        "points adjusted",
		UserID:         userID,
		PointsAdjusted: req.Amount,
		TotalPoints:    total,
	})
}
