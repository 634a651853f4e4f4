package api

import (
	"context"
	"io"
	"net/http"

	"consultation-booking/internal/domain/user"
	reqdto "consultation-booking/internal/handler/dto/request"
	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/handler/httperr"
	"consultation-booking/internal/handler/middleware"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/pkg/errs"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errMissingActor = errs.New("authenticated actor missing from context")

type BookingHandler struct {
	cmds  commands.BookingCommands
	q     queries.BookingQueries
	clock clock.Clock
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Create booking
// @Description Book a consultation with a professional. Replays the first result for a repeated Idempotency-Key.
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Success 200 {object} resdto.BookingResponse "replayed"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, msgInternal, nil)
		return
	}

	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.New("missing idempotency key"), "Idempotency-Key header is required", nil)
		return
	}
	key, err := uuid.Parse(keyStr)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Idempotency-Key must be a UUID", nil)
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateBooking(c.Request.Context(), req.ToCommand(), actor, key)
	if err != nil {
		if errs.Is(err, commands.ErrForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Only clients can book consultations", nil)
			return
		}
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}

	res, err := resdto.FromBookingView(result.Booking)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.Header("Location", "/api/bookings/"+res.ID.String())
	c.JSON(status, res)
}

// @Summary Get booking
// @Description Booking detail for a party or an admin
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}

	res, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Booking status
// @Description Polling endpoint. roomToken is only returned to the parties while the meeting can be used.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingStatusResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/status [get]
func (h *BookingHandler) Status(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}

	view, err := h.q.GetStatus(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}

	res, err := resdto.FromBookingStatus(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Accept booking
// @Description The assigned professional confirms a paid booking. Repeating the call returns the same room.
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.AcceptResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/accept [post]
func (h *BookingHandler) Accept(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}

	result, err := h.cmds.AcceptBooking(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}
	c.JSON(http.StatusOK, resdto.FromAcceptResult(result))
}

// @Summary Reject booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReasonRequest false "Rejection reason"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) Reject(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}
	req, ok := bindReason(c)
	if !ok {
		return
	}

	result, err := h.cmds.RejectBooking(c.Request.Context(), id, actor, req.Reason)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Cancel booking
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.ReasonRequest false "Cancellation reason"
// @Success 200 {object} resdto.CancelResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}
	req, ok := bindReason(c)
	if !ok {
		return
	}

	result, err := h.cmds.CancelBooking(c.Request.Context(), id, actor, req.Reason)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}
	c.JSON(http.StatusOK, resdto.FromCancelResult(result))
}

// @Summary Bookings awaiting acceptance
// @Description The calling professional's WAITING_FOR_PROFESSIONAL bookings, soonest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /bookings/awaiting-acceptance [get]
func (h *BookingHandler) ListAwaitingAcceptance(c *gin.Context) {
	h.list(c, h.q.ListAwaitingAcceptance)
}

// @Summary Upcoming bookings
// @Description The caller's open bookings as client or professional, soonest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Page size (1-200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Router /bookings/upcoming [get]
func (h *BookingHandler) ListUpcoming(c *gin.Context) {
	h.list(c, h.q.ListUpcoming)
}

type listFunc func(ctx context.Context, actor user.Actor, cursor *queries.Cursor, limit int) ([]*queries.BookingView, *queries.Cursor, error)

func (h *BookingHandler) list(c *gin.Context, fetch listFunc) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, msgInternal, nil)
		return
	}

	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	var cursor *queries.Cursor
	if q.Cursor != "" {
		cursor = &queries.Cursor{After: q.Cursor}
	}

	items, next, err := fetch(c.Request.Context(), actor, cursor, q.Limit)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}

	res, err := resdto.FromBookingList(items, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msgInternal, nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

func actorAndBookingID(c *gin.Context) (user.Actor, uuid.UUID, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingActor, msgInternal, nil)
		return user.Actor{}, uuid.Nil, false
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return user.Actor{}, uuid.Nil, false
	}
	return actor, id, true
}

// bindReason accepts an empty body.
func bindReason(c *gin.Context) (reqdto.ReasonRequest, bool) {
	var req reqdto.ReasonRequest
	if c.Request.ContentLength == 0 {
		return req, true
	}
	if err := c.ShouldBindJSON(&req); err != nil && !errs.Is(err, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return req, false
	}
	return req, true
}
