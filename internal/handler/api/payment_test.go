//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	stdhttptest "net/http/httptest"
	"testing"

	"consultation-booking/internal/domain/booking"
	"consultation-booking/internal/domain/payment"
	"consultation-booking/internal/handler/api"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/config"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/tests/common/httptest"
	"consultation-booking/tests/common/testutil"
	commandsmock "consultation-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockPaymentCommands
	webhookToken string
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockPaymentCommands(s.mockCtrl)
	cfg := config.NewTestConfig()
	s.webhookToken = cfg.Payment.WebhookToken
	handler := api.NewPaymentHandler(s.mockCommands, cfg, clock.NewMockClock(serverNow))

	s.router.POST("/payments/webhook", handler.Webhook)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) deliver(body any, token string) *stdhttptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	s.Require().NoError(err)

	req := stdhttptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Webhook-Token", token)
	}
	rec := stdhttptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *PaymentHandlerTestSuite) TestWebhook() {
	bookingID := uuid.New()
	signal := map[string]any{"bookingId": bookingID.String(), "status": "paid", "eventId": "evt_1"}
	expectedInput := commands.PaymentSignalInput{BookingID: bookingID, Status: "paid", SourceEventID: "evt_1"}

	s.Run("success: applied signal", func() {
		s.mockCommands.EXPECT().ApplyPaymentSignal(gomock.Any(), expectedInput).
			Return(&commands.PaymentResult{BookingID: bookingID, Outcome: payment.OutcomeApplied, BookingStatus: booking.StatusWaitingForProfessional}, nil).Times(1)

		rec := s.deliver(signal, s.webhookToken)
		var body resdto.PaymentSignalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("applied", body.Outcome)
		s.Equal("WAITING_FOR_PROFESSIONAL", body.BookingStatus)
	})

	s.Run("rejected signal is acknowledged with 200", func() {
		result := &commands.PaymentResult{BookingID: bookingID, Outcome: payment.OutcomeRejected, BookingStatus: booking.StatusCancelled}
		s.mockCommands.EXPECT().ApplyPaymentSignal(gomock.Any(), expectedInput).
			Return(result, &commands.InvalidTransitionError{BookingID: bookingID, Current: booking.StatusCancelled, Action: "apply payment to"}).Times(1)

		rec := s.deliver(signal, s.webhookToken)
		var body resdto.PaymentSignalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("rejected", body.Outcome)
	})

	s.Run("error: 401 on a missing or wrong token", func() {
		rec := s.deliver(signal, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid webhook token")

		rec = s.deliver(signal, "wrong")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid webhook token")
	})

	s.Run("error: 400 on malformed payloads", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"unknown status", testutil.Field("status", "refunded")},
			{"missing eventId", testutil.Field("eventId", nil)},
			{"missing bookingId", testutil.Field("bookingId", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := s.deliver(testutil.DtoMap(s.T(), signal, tc.mutate), s.webhookToken)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: unknown booking is 404", func() {
		s.mockCommands.EXPECT().ApplyPaymentSignal(gomock.Any(), expectedInput).Return(nil, commands.ErrBookingNotFound).Times(1)

		rec := s.deliver(signal, s.webhookToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})

	s.Run("error: storage failure is 500", func() {
		s.mockCommands.EXPECT().ApplyPaymentSignal(gomock.Any(), expectedInput).Return(nil, errors.New("db down")).Times(1)

		rec := s.deliver(signal, s.webhookToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
