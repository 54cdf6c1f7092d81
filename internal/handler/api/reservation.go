package api

import (
	"net/http"
	"strconv"

	"campus-reservation/internal/domain/timeslot"
	reqdto "campus-reservation/internal/handler/dto/request"
	resdto "campus-reservation/internal/handler/dto/response"
	"campus-reservation/internal/handler/httperr"
	"campus-reservation/internal/handler/middleware"
	"campus-reservation/internal/usecase/commands"
	"campus-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
	zone timeslot.Zone
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries, zone timeslot.Zone) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q, zone: zone}
}

// @Summary Reserve a seat
// @Description Reserve a specific seat, or a random free one when seat_id is omitted
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSeatReservationRequest true "Seat reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/seats [post]
func (h *ReservationHandler) CreateSeat(c *gin.Context) {
	requester, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateSeatReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput(requester)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	view, err := h.cmds.CreateSeatReservation(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.created(c, view)
}

// @Summary Reserve a meeting room
// @Description Reserve a meeting room for the requester and the listed participants
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomReservationRequest true "Meeting room reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/meeting-rooms [post]
func (h *ReservationHandler) CreateMeetingRoom(c *gin.Context) {
	requester, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRoomReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	in, err := req.ToInput(requester)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	view, err := h.cmds.CreateRoomReservation(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	h.created(c, view)
}

// @Summary Cancel reservation
// @Description Cancel an own reservation that has not started yet
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	requester, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := parseReservationID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.cmds.CancelReservation(c.Request.Context(), id, requester)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view, h.zone))
}

// @Summary Get reservation
// @Description Get one reservation the requester owns or participates in
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	requester, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	id, err := parseReservationID(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), requester, id)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view, h.zone))
}

// @Summary My reservations
// @Description Reservations the requester owns or participates in, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param from query string false "From local date (YYYY-MM-DD)"
// @Param to query string false "To local date (YYYY-MM-DD)"
// @Param type query string false "seat or meeting_room"
// @Success 200 {object} resdto.MyReservationsResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations/me [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	requester, ok := middleware.GetStudentID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}
	var query reqdto.MyReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), requester, filter)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views, h.zone))
}

func (h *ReservationHandler) created(c *gin.Context, view *queries.ReservationView) {
	c.Header("Location", "/api/reservations/"+strconv.FormatInt(view.ID, 10))
	c.JSON(http.StatusCreated, resdto.FromReservationView(view, h.zone))
}

func parseReservationID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
