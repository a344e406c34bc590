package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "vending-server/internal/handler/dto/response"
	"vending-server/internal/handler/httperr"
	"vending-server/internal/handler/middleware"
	"vending-server/internal/usecase/commands"
	"vending-server/internal/usecase/queries"
)

type SessionHandler struct {
	cmds   commands.SessionCommands
	events queries.EventQueries
}

func NewSessionHandler(cmds commands.SessionCommands, events queries.EventQueries) *SessionHandler {
	return &SessionHandler{cmds: cmds, events: events}
}

// @Summary Connect
// @Description Make the token's character resident; replaces a resident autotrader of the same character
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.SessionResponse
// @Failure 409 {object} httperr.Response
// @Router /sessions [post]
func (h *SessionHandler) Connect(c *gin.Context) {
	id, ok := middleware.GetCharacterID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Unauthorized", nil)
		return
	}
	ch, err := h.cmds.Connect(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err, "Connect failed")
		return
	}
	pos := ch.Position()
	c.JSON(http.StatusCreated, resdto.SessionResponse{
		AccountID: id.AccountID,
		CharID:    id.CharID,
		Name:      ch.Name(),
		Map:       pos.Map,
		X:         pos.X,
		Y:         pos.Y,
		Zeny:      ch.Zeny(),
	})
}

// @Summary Disconnect
// @Description Leave the world; an open shop is closed
// @Tags sessions
// @Security BearerAuth
// @Success 204
// @Failure 409 {object} httperr.Response
// @Router /sessions [delete]
func (h *SessionHandler) Disconnect(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	if err := h.cmds.Disconnect(c.Request.Context(), charID); err != nil {
		httperr.AbortWithDomainError(c, err, "Disconnect failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Drain events
// @Description Return and clear the notifications queued for the caller
// @Tags sessions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EventResponse
// @Router /events [get]
func (h *SessionHandler) Events(c *gin.Context) {
	charID, ok := requireCharacter(c)
	if !ok {
		return
	}
	res, err := resdto.FromEvents(h.events.Drain(c.Request.Context(), charID))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
