package api

import (
	"net/http"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	q queries.RatingQueries
}

func NewRatingHandler(q queries.RatingQueries) *RatingHandler {
	return &RatingHandler{q: q}
}

// @Summary Service ratings
// @Description Average stars and star distribution per service
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ServiceRatingResponse
// @Failure 403 {object} httperr.Response
// @Router /staff/ratings [get]
func (h *RatingHandler) ServiceRatings(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ServiceRatings(c.Request.Context(), actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromServiceRatingViews(views))
}

// @Summary Service feedback
// @Description Latest customer feedback for one service
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Param limit query int false "Max items (default 20)"
// @Success 200 {array} resdto.FeedbackResponse
// @Failure 403 {object} httperr.Response
// @Router /staff/services/{id}/feedback [get]
func (h *RatingHandler) ServiceFeedback(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ServiceFeedback(c.Request.Context(), actor, id, queryLimit(c))
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromFeedbackViews(views))
}
