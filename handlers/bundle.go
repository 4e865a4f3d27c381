package handlers

import (
	"carelink/services/agent"
	"carelink/services/session"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Store        *session.Store
	Orchestrator *agent.Orchestrator

	// Chat endpoints
	ChatHandler           gin.HandlerFunc
	CheckFollowupsHandler gin.HandlerFunc
}

// NewHandlerBundle wires the handlers over the shared collaborators.
func NewHandlerBundle(store *session.Store, orch *agent.Orchestrator) *HandlerBundle {
	hb := &HandlerBundle{
		Store:        store,
		Orchestrator: orch,
	}
	hb.ChatHandler = hb.chat
	hb.CheckFollowupsHandler = hb.checkFollowups
	return hb
}
