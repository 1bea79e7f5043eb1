package api

import (
	"net/http"

	reqdto "salon-booking/internal/handler/dto/request"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/cookie"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	cmds      commands.AccountCommands
	users     queries.UserQueries
	cookieCfg config.CookieConfig
}

func NewAccountHandler(cmds commands.AccountCommands, users queries.UserQueries, cfg config.Config) *AccountHandler {
	return &AccountHandler{cmds: cmds, users: users, cookieCfg: cfg.Cookie}
}

// @Summary Get current user
// @Tags account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /me [get]
func (h *AccountHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Update profile
// @Description Change name and/or phone
// @Tags account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Router /me [patch]
func (h *AccountHandler) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.UpdateProfile(c.Request.Context(), actor, req.ToInput()); err != nil {
		httperr.Abort(c, err)
		return
	}

	view, err := h.users.GetCurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Change password
// @Tags account
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.ChangePasswordRequest true "Passwords"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /me/password [put]
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.ChangePassword(c.Request.Context(), actor, req.CurrentPassword, req.NewPassword); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Deactivate account
// @Tags account
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /me/deactivate [post]
func (h *AccountHandler) Deactivate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.cmds.Deactivate(c.Request.Context(), actor); err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Delete account
// @Description Permanently delete the account together with its appointments
// @Tags account
// @Security BearerAuth
// @Accept json
// @Param request body reqdto.DeleteAccountRequest true "Password confirmation"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Router /me [delete]
func (h *AccountHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.DeleteAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), actor, req.Password); err != nil {
		httperr.Abort(c, err)
		return
	}
	cookie.ClearAccessToken(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Change a user's role
// @Tags admin
// @Security BearerAuth
// @Accept json
// @Param id path string true "User ID"
// @Param request body reqdto.ChangeRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/users/{id}/role [put]
func (h *AccountHandler) ChangeRole(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.ChangeRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.ChangeRole(c.Request.Context(), actor, userID, req.Role); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
