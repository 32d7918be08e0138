package handlers

import (
	"net/http"

	"geecurly/services/chat"
	"geecurly/utils"

	"github.com/gin-gonic/gin"
)

// ChatSvc is assigned during startup wiring.
var ChatSvc chat.ChatService

// StartChatSession opens a conversation and returns the greeting.
func StartChatSession(c *gin.Context) {
	var input struct {
		CustomerID string `json:"customerId"`
	}
	// Body is optional; anonymous visitors send nothing.
	_ = c.ShouldBindJSON(&input)

	session, reply, err := ChatSvc.StartSession(c.Request.Context(), input.CustomerID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusCreated, gin.H{
		"sessionId": session.ID,
		"reply":     reply,
	})
}

// HandleChatMessage advances a conversation by one user message.
func HandleChatMessage(c *gin.Context) {
	var input struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if input.SessionID == "" {
		utils.JSONError(c, http.StatusBadRequest, "sessionId is required")
		return
	}

	reply, err := ChatSvc.HandleMessage(c.Request.Context(), input.SessionID, input.Message)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONData(c, http.StatusOK, reply)
}
