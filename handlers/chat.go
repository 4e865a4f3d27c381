package handlers

import (
	"net/http"

	"carelink/models"
	"carelink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// chat runs one conversational turn for a user.
func (hb *HandlerBundle) chat(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	reply, err := hb.Orchestrator.HandleTurn(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		logger.Error("chat turn failed",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to process message", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{Response: reply})
}

// checkFollowups drains and returns any queued check-in reminders for a
// user. Each reminder is delivered at most once.
func (hb *HandlerBundle) checkFollowups(c *gin.Context) {
	var req models.FollowupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	followups := hb.Store.GetOrCreate(req.UserID).DrainFollowups()
	if followups == nil {
		followups = []string{}
	}
	c.JSON(http.StatusOK, models.FollowupsResponse{Followups: followups})
}
