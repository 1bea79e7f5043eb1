package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Book a slot for the authenticated user. The slot must be one of the generated labels for the service and date.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.BookAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Book(c.Request.Context(), actor, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, result.AppointmentID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary My appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Router /appointments/mine [get]
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	views, err := h.q.ListMine(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentViews(views))
}

// @Summary Get appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Customers cancel their own bookings; staff can cancel any. A reason is required.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CancelRequest true "Reason"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CancelRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), actor, id, req.Reason); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

// @Summary Leave feedback
// @Description Rate a confirmed or completed appointment. Completes a confirmed one.
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.FeedbackRequest true "Feedback"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /appointments/{id}/feedback [post]
func (h *AppointmentHandler) SubmitFeedback(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.FeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.SubmitFeedback(c.Request.Context(), actor, id, req.Stars, req.Text); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

// @Summary List appointments (staff)
// @Description All appointments, newest first, optionally filtered by date and status
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param status query string false "pending, confirmed, completed or cancelled"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.AppointmentPage
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /staff/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	filters := queries.AppointmentFilters{Date: c.Query("date"), Status: c.Query("status")}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.List(c.Request.Context(), actor, filters, cursor, queryLimit(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewAppointmentPage(views, next))
}

// @Summary Confirm appointment
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /staff/appointments/{id}/confirm [post]
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.Confirm(c.Request.Context(), actor, id); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

// @Summary Complete appointment
// @Description Mark a confirmed appointment done, optionally recording feedback
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CompleteRequest false "Optional feedback"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /staff/appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CompleteRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Complete(c.Request.Context(), actor, id, req.ToFeedback()); err != nil {
		httperr.Abort(c, err)
		return
	}
	h.respondWith(c, id)
}

func (h *AppointmentHandler) respondWith(c *gin.Context, id uuid.UUID) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), actor, id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}
