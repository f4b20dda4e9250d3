package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/community-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/community-api/internal/domain"
	"github.com/vietanh2810/community-api/internal/service"
)

type ShortCodeService interface {
	Resolve(ctx context.Context, code string) (domain.Event, error)
}

type ShortCodeHandler struct {
	svc ShortCodeService
}

func NewShortCodeHandler(svc ShortCodeService) *ShortCodeHandler {
	return &ShortCodeHandler{
		svc: svc,
	}
}

// HandleResolve godoc
// @Summary      Resolve a short code to its event
// @Description  Codes are MMDD followed by a two character base36 ordinal. Events created before codes were stored are resolved from their creation order.
// @Tags         events
// @Produce      json
// @Param        code  path      string  true  "Short code"
// @Success      200   {object}  response.ShortCodeResponse
// @Failure      404   {object}  response.Err
// @Failure      500   {object}  response.Err
// @Router       /e/{code} [get]
func (h *ShortCodeHandler) HandleResolve(ctx *gin.Context) {
	code := ctx.Param("code")

	event, err := h.svc.Resolve(ctx.Request.Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrShortCodeNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("event", "short_code", code))
			return
		}

		err = fmt.Errorf("v1.HandleResolve -> h.svc.Resolve -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ShortCodeResponse{
		EventID:   event.ID,
		ShortCode: event.ShortCode,
	})
}
