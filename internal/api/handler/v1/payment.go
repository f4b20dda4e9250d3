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
	"github.com/vietanh2810/community-api/internal/pkg/payment"
	"github.com/vietanh2810/community-api/internal/service"
)

type PaymentService interface {
	Confirm(ctx context.Context, req domain.PaymentConfirmation, userID *uint) (domain.PaymentReceipt, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleConfirm godoc
// @Summary      Confirm a payment and register for the paid event
// @Description  The order id is "event-<eventID>-<millis>". Provider rejections are relayed with the provider's status and message.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.ConfirmPaymentRequest  true  "request body"
// @Success      200      {object}  response.PaymentConfirmResponse
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Failure      502      {object}  response.Err
// @Router       /payments/confirm [post]
// @Security     BearerAuth
func (h *PaymentHandler) HandleConfirm(ctx *gin.Context) {
	var req request.ConfirmPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidPaymentRequest))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidPaymentRequest))
		return
	}

	receipt, err := h.svc.Confirm(ctx.Request.Context(), domain.PaymentConfirmation{
		PaymentKey: req.PaymentKey,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
	}, optionalUserID(ctx))
	if err != nil {
		var pErr *payment.ProviderError
		invalid := matchErr(err,
			service.ErrInvalidPaymentRequest,
			service.ErrInvalidOrderID,
			service.ErrAmountMismatch,
		)
		switch {
		case invalid != nil:
			response.RenderErr(ctx, response.ErrBadRequest(invalid))
		case errors.Is(err, service.ErrPaymentNotConfigured):
			response.RenderErr(ctx, response.ErrServerMisconfigured(service.ErrPaymentNotConfigured))
		case errors.As(err, &pErr):
			response.RenderErr(ctx, response.ErrUpstream(pErr.HTTPStatus(), pErr.Message, err))
		default:
			eventID, _ := domain.ParseOrderID(req.OrderID)
			renderRegistrationErr(ctx, eventID, fmt.Errorf("v1.HandleConfirm -> h.svc.Confirm -> %w", err))
		}
		return
	}

	var paymentData any = receipt.Payment
	if receipt.Payment.Raw != nil {
		paymentData = receipt.Payment.Raw
	}

	ctx.JSON(http.StatusOK, response.PaymentConfirmResponse{
		Success:        true,
		RegistrationID: receipt.Registration.ID,
		PaymentData:    paymentData,
	})
}
