package http

import (
	"github.com/gin-gonic/gin"

	"emoch-backend/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Sends a user message, maintains conversation history server-side, and returns the generated reply with the session id.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "User message and optional session id"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request - empty or oversized message"
// @Failure     503 {object} response.Resp "Service Unavailable - generation failed"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SendMessage(ctx, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}
