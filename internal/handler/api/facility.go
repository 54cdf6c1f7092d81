package api

import (
	"net/http"

	resdto "campus-reservation/internal/handler/dto/response"
	"campus-reservation/internal/handler/httperr"
	"campus-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FacilityHandler struct {
	q queries.FacilityQueries
}

func NewFacilityHandler(q queries.FacilityQueries) *FacilityHandler {
	return &FacilityHandler{q: q}
}

// @Summary List seats
// @Tags facilities
// @Produce json
// @Success 200 {array} resdto.SeatResponse
// @Router /seats [get]
func (h *FacilityHandler) ListSeats(c *gin.Context) {
	seats, err := h.q.ListSeats(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromSeatViews(seats)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List meeting rooms
// @Tags facilities
// @Produce json
// @Success 200 {array} resdto.MeetingRoomResponse
// @Router /meeting-rooms [get]
func (h *FacilityHandler) ListMeetingRooms(c *gin.Context) {
	rooms, err := h.q.ListMeetingRooms(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	res, err := resdto.FromMeetingRoomViews(rooms)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
