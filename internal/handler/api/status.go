package api

import (
	"net/http"

	reqdto "campus-reservation/internal/handler/dto/request"
	resdto "campus-reservation/internal/handler/dto/response"
	"campus-reservation/internal/handler/httperr"
	"campus-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type StatusHandler struct {
	q queries.StatusQueries
}

func NewStatusHandler(q queries.StatusQueries) *StatusHandler {
	return &StatusHandler{q: q}
}

// @Summary Meeting room status
// @Description Per room availability of every 60-minute slot of a local day
// @Tags status
// @Produce json
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.MeetingRoomStatusResponse
// @Failure 400 {object} httperr.Response
// @Router /status/meeting-rooms [get]
func (h *StatusHandler) MeetingRooms(c *gin.Context) {
	var query reqdto.StatusDateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := query.ParseDate()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	view, err := h.q.MeetingRoomStatus(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMeetingRoomStatus(view))
}

// @Summary Seat slots
// @Description Whether any seat is free for each 120-minute slot of a local day
// @Tags status
// @Produce json
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} resdto.SeatSlotsResponse
// @Failure 400 {object} httperr.Response
// @Router /status/seats/slots [get]
func (h *StatusHandler) SeatSlots(c *gin.Context) {
	var query reqdto.StatusDateQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, err := query.ParseDate()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	view, err := h.q.SeatSlots(c.Request.Context(), date)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeatSlots(view))
}

// @Summary Seat availability
// @Description Seats free for the whole requested range
// @Tags status
// @Produce json
// @Param date query string true "Local date (YYYY-MM-DD)"
// @Param start_time query string true "Start (HH:MM)"
// @Param end_time query string true "End (HH:MM)"
// @Success 200 {object} resdto.SeatAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /status/seats [get]
func (h *StatusHandler) Seats(c *gin.Context) {
	var query reqdto.SeatAvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	date, start, end, err := query.Parse()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	view, err := h.q.SeatAvailability(c.Request.Context(), date, start, end)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSeatAvailability(view))
}
