package http

import (
	"github.com/gin-gonic/gin"

	"movi-ops-console/internal/assistant"
	"movi-ops-console/pkg/response"
)

// CreateSession godoc
// @Summary     Start a conversation session
// @Description Opens a new assistant session seeded with the welcome message.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} sessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.StartSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.StartSession: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSessionResp(output))
}

// History godoc
// @Summary     Get the conversation log
// @Description Returns all messages of a session in append order.
// @Tags        Assistant
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} historyResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/assistant/sessions/{id}/messages [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()

	msgs, err := h.uc.History(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newHistoryResp(msgs))
}

// Submit godoc
// @Summary     Submit operator text
// @Description Classifies the text, dispatches the resolved intent to the backend agent and returns the appended messages.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Session ID"
// @Param       body body submitReq true "Operator utterance"
// @Success     200 {object} exchangeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/assistant/sessions/{id}/messages [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput(c.Param("id")))
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExchangeResp(output))
}

// Confirm godoc
// @Summary     Confirm a pending action
// @Description Re-dispatches the intent captured on a pending-confirmation message with confirmed=true.
// @Tags        Assistant
// @Produce     json
// @Param       id        path string true "Session ID"
// @Param       messageID path string true "Message ID carrying the pending confirmation"
// @Success     200 {object} exchangeResp
// @Failure     400 {object} response.Resp "Message is not confirmable"
// @Failure     404 {object} response.Resp "Session or message not found"
// @Router      /api/v1/assistant/sessions/{id}/messages/{messageID}/confirm [POST]
func (h *handler) Confirm(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Confirm(ctx, assistant.ConfirmInput{
		SessionID: c.Param("id"),
		MessageID: c.Param("messageID"),
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Confirm: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExchangeResp(output))
}

// Vision godoc
// @Summary     Analyze a screenshot
// @Description Uploads a screenshot for visual trip lookup and returns the resulting message.
// @Tags        Assistant
// @Accept      multipart/form-data
// @Produce     json
// @Param       id   path     string true "Session ID"
// @Param       file formData file   true "Screenshot image"
// @Success     200 {object} exchangeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /api/v1/assistant/sessions/{id}/vision [POST]
func (h *handler) Vision(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "open uploaded file: %v", err)
		response.Error(c, err)
		return
	}
	defer file.Close()

	output, err := h.uc.AnalyzeScreenshot(ctx, assistant.VisionInput{
		SessionID: c.Param("id"),
		Filename:  fileHeader.Filename,
		Image:     file,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeScreenshot: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExchangeResp(output))
}

// Prompts godoc
// @Summary     Default prompts
// @Description Returns the canned operator prompts shown on a fresh session.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} promptsResp
// @Router      /api/v1/assistant/prompts [GET]
func (h *handler) Prompts(c *gin.Context) {
	response.OK(c, promptsResp{Prompts: h.uc.DefaultPrompts()})
}
