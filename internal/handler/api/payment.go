package api

import (
	"crypto/subtle"
	"net/http"

	reqdto "consultation-booking/internal/handler/dto/request"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const webhookTokenHeader = "X-Webhook-Token"

var errWebhookToken = errs.New("invalid webhook token")

type PaymentHandler struct {
	cmds  commands.PaymentCommands
	token []byte
	clock clock.Clock
}

func NewPaymentHandler(cmds commands.PaymentCommands, cfg config.Config, clk clock.Clock) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, token: []byte(cfg.Payment.WebhookToken), clock: clk}
}

// @Summary Payment webhook
// @Description Intake for payment provider status signals. Deliveries may repeat; each eventId is applied once.
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Webhook-Token header string true "Shared webhook token"
// @Param request body reqdto.PaymentSignalRequest true "Payment signal"
// @Success 200 {object} resdto.PaymentSignalResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /payments/webhook [post]
func (h *PaymentHandler) Webhook(c *gin.Context) {
	if subtle.ConstantTimeCompare([]byte(c.GetHeader(webhookTokenHeader)), h.token) != 1 {
		httperr.AbortWithError(c, http.StatusUnauthorized, errWebhookToken, "Invalid webhook token", nil)
		return
	}

	var req reqdto.PaymentSignalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.ApplyPaymentSignal(c.Request.Context(), req.ToCommand())
	if err != nil {
		// a rejected signal is recorded and acknowledged; the body says why
		if result != nil && errs.Is(err, commands.ErrInvalidTransition) {
			c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
			return
		}
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}
	c.JSON(http.StatusOK, resdto.FromPaymentResult(result))
}
