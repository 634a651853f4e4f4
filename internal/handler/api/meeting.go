package api

import (
	"net/http"

	resdto "consultation-booking/internal/handler/dto/response"
	"consultation-booking/internal/pkg/clock"
	"consultation-booking/internal/usecase/commands"
	"consultation-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	cmds  commands.MeetingCommands
	q     queries.BookingQueries
	clock clock.Clock
}

func NewMeetingHandler(cmds commands.MeetingCommands, q queries.BookingQueries, clk clock.Clock) *MeetingHandler {
	return &MeetingHandler{cmds: cmds, q: q, clock: clk}
}

// @Summary Waiting room
// @Description Read-only projection clients poll before the meeting. Never changes state.
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.WaitingRoomResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/waiting-room [get]
func (h *MeetingHandler) WaitingRoom(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}

	wr, err := h.q.GetWaitingRoom(c.Request.Context(), actor, id)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}
	c.JSON(http.StatusOK, resdto.FromWaitingRoom(wr))
}

// @Summary Join meeting
// @Description The first join inside the window starts the meeting; later joins get the same room.
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.JoinResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/join [post]
func (h *MeetingHandler) Join(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}

	result, err := h.cmds.JoinMeeting(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}
	c.JSON(http.StatusOK, resdto.FromJoinResult(result))
}

// @Summary Leave meeting
// @Description Ends the meeting for both parties.
// @Tags meetings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.LeaveResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/leave [post]
func (h *MeetingHandler) Leave(c *gin.Context) {
	actor, id, ok := actorAndBookingID(c)
	if !ok {
		return
	}

	result, err := h.cmds.LeaveMeeting(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUseCaseError(c, err, h.clock.Now())
		return
	}
	c.JSON(http.StatusOK, resdto.FromLeaveResult(result))
}
