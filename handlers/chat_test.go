package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	factsRepo "carelink/database/repository/facts"
	"carelink/services/agent"
	"carelink/services/appointment"
	"carelink/services/emergency"
	"carelink/services/retrieval"
	"carelink/services/session"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

type stubLLM struct {
	reply string
}

func (s *stubLLM) Chat(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionMessage, error) {
	return openai.ChatCompletionMessage{Content: s.reply}, nil
}

func testRouter(reply string) (*gin.Engine, *session.Store) {
	gin.SetMode(gin.TestMode)

	store := session.NewStore()
	retriever := retrieval.NewRetriever(factsRepo.NewMemoryFactRepo(nil), zap.NewNop())
	schedule := appointment.NewInMemorySchedule(nil, nil)
	controller := appointment.NewFlowController(schedule, retriever)
	machine := emergency.NewMachine(nil)
	orch := agent.NewOrchestrator(store, &stubLLM{reply: reply}, retriever, controller, machine, nil, time.Second)

	hb := NewHandlerBundle(store, orch)
	r := gin.New()
	r.POST("/chat", hb.ChatHandler)
	r.POST("/check-followups", hb.CheckFollowupsHandler)
	return r, store
}

func postJSON(t *testing.T, r *gin.Engine, path string, body map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatReturnsReply(t *testing.T) {
	r, store := testRouter("You're doing well.")
	store.GetOrCreate("user_mary").AppendTurn(session.RoleAssistant, "Hello, Mary, how are you feeling today?")
	w := postJSON(t, r, "/chat", map[string]string{
		"message": "I feel good today",
		"user_id": "user_mary",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var out struct {
		Response string `json:"response"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if out.Response != "You're doing well." {
		t.Fatalf("response = %q", out.Response)
	}
}

func TestChatRequiresUserID(t *testing.T) {
	r, _ := testRouter("unused")
	w := postJSON(t, r, "/chat", map[string]string{"message": "hello"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestChatBlankMessageGreets(t *testing.T) {
	r, _ := testRouter("unused")
	w := postJSON(t, r, "/chat", map[string]string{
		"message": "",
		"user_id": "user_mary",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Hello, Mary") {
		t.Fatalf("body = %s, want the greeting", w.Body.String())
	}
}

func TestCheckFollowupsDrainsQueue(t *testing.T) {
	r, store := testRouter("unused")
	store.GetOrCreate("user_mary").PushFollowup("Hi Mary! Just checking in")

	w := postJSON(t, r, "/check-followups", map[string]string{"user_id": "user_mary"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var out struct {
		Followups []string `json:"followups"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(out.Followups) != 1 {
		t.Fatalf("followups = %v, want the queued reminder", out.Followups)
	}

	// Second poll comes back empty.
	w = postJSON(t, r, "/check-followups", map[string]string{"user_id": "user_mary"})
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(out.Followups) != 0 {
		t.Fatalf("second drain = %v, want empty", out.Followups)
	}
}
