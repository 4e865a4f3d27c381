package agent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carelink/models"
	"carelink/services/appointment"
	"carelink/services/emergency"
	"carelink/services/followup"
	"carelink/services/retrieval"
	"carelink/services/session"
	"carelink/services/triage"
	"carelink/utils"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// maxToolRounds bounds the model's tool-call loop for one turn.
const maxToolRounds = 4

// Orchestrator runs one conversational turn end to end: emergency
// override first, then the deterministic appointment workflow, then
// the language model with tools, then severity post-processing.
type Orchestrator struct {
	Store      *session.Store
	LLM        Client
	Retriever  *retrieval.Retriever
	Controller *appointment.FlowController
	Emergency  *emergency.Machine
	Scheduler  followup.Scheduler
	Timeout    time.Duration
	Now        func() time.Time
	Log        *zap.Logger
}

func NewOrchestrator(
	store *session.Store,
	llm Client,
	retriever *retrieval.Retriever,
	controller *appointment.FlowController,
	machine *emergency.Machine,
	scheduler followup.Scheduler,
	timeout time.Duration,
) *Orchestrator {
	return &Orchestrator{
		Store:      store,
		LLM:        llm,
		Retriever:  retriever,
		Controller: controller,
		Emergency:  machine,
		Scheduler:  scheduler,
		Timeout:    timeout,
		Now:        time.Now,
		Log:        utils.GetLogger().Named("agent"),
	}
}

// HandleTurn processes one user message and returns the assistant
// reply. A blank message starts a fresh conversation.
func (o *Orchestrator) HandleTurn(ctx context.Context, userID, message string) (string, error) {
	message = strings.TrimSpace(message)
	name := utils.DisplayName(userID)

	if message == "" {
		o.Store.Reset(userID)
		sess := o.Store.GetOrCreate(userID)
		reply := Greeting(name)
		sess.AppendTurn(session.RoleAssistant, reply)
		return reply, nil
	}

	sess := o.Store.GetOrCreate(userID)

	if o.Emergency.Engaged(sess) {
		reply := o.Emergency.Handle(sess, message)
		sess.AppendTurn(session.RoleUser, message)
		sess.AppendTurn(session.RoleAssistant, reply)
		return reply, nil
	}

	// The deterministic appointment workflow outranks the model: its
	// replies are never severity-classified and never deduplicated.
	if reply, handled := o.Controller.Handle(ctx, sess, message); handled {
		sess.AppendTurn(session.RoleUser, message)
		sess.AppendTurn(session.RoleAssistant, reply)
		return reply, nil
	}

	// A fresh session opens with the greeting, whatever the first
	// message says; the user repeats themselves on the next turn.
	if len(sess.History()) == 0 {
		reply := Greeting(name)
		sess.AppendTurn(session.RoleUser, message)
		sess.AppendTurn(session.RoleAssistant, reply)
		return reply, nil
	}

	facts := o.factsContext(ctx, sess.UserID, message)
	reply, err := o.modelTurn(ctx, sess, name, message, facts)
	if err != nil {
		return "", err
	}

	reply = o.postProcess(sess, name, reply)
	if facts != "" {
		reply = facts + "\n" + reply
	}
	reply = DeduplicateLines(reply)

	sess.AppendTurn(session.RoleUser, message)
	sess.AppendTurn(session.RoleAssistant, reply)
	return reply, nil
}

// modelTurn builds the model context, runs the tool loop, and returns
// the final text reply. The facts block, when present, is also shown
// to the model so its prose agrees with the prefix the user will see.
func (o *Orchestrator) modelTurn(ctx context.Context, sess *session.Session, name, message, facts string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	today := o.Now().Format("2006-01-02")
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(name, today)},
	}
	if facts != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: facts,
		})
	}
	for _, turn := range sess.History() {
		role := openai.ChatMessageRoleUser
		if turn.Role == session.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: turn.Text})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})

	tb := &toolbox{
		retriever:  o.Retriever,
		controller: o.Controller,
		sess:       sess,
		now:        o.Now,
		log:        o.Log,
	}
	tools := chatTools()

	for round := 0; round < maxToolRounds; round++ {
		msg, err := o.LLM.Chat(ctx, messages, tools)
		if err != nil {
			return "", fmt.Errorf("chat completion for %s: %w", sess.UserID, err)
		}
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    tb.execute(ctx, call),
			})
		}
	}

	// Out of rounds with the model still asking for tools; ask it to
	// wrap up without them.
	msg, err := o.LLM.Chat(ctx, messages, nil)
	if err != nil {
		return "", fmt.Errorf("chat completion for %s: %w", sess.UserID, err)
	}
	return msg.Content, nil
}

// factsContext injects the resolved day's record when the message
// mentions symptoms or asks about health data. Store failures degrade
// to no context; the model still answers.
func (o *Orchestrator) factsContext(ctx context.Context, userID, message string) string {
	if !triage.HasSymptom(message) && retrieval.InferCategory(message) == "" {
		return ""
	}

	date := o.Retriever.ResolveQueryDate(message)
	food, err := o.Retriever.RetrieveCategory(ctx, userID, date, models.CategoryFood)
	if err != nil {
		o.Log.Warn("facts context unavailable", zap.Error(err))
		return ""
	}
	vitals, _ := o.Retriever.RetrieveCategory(ctx, userID, date, models.CategoryVitals)
	medical, _ := o.Retriever.RetrieveCategory(ctx, userID, date, models.CategoryMedicalRecord)
	return FactsBlock(date, food, vitals, medical)
}

// postProcess applies the severity rules to the model reply: a serious
// reply gets the emergency offer appended and arms the yes/no state; a
// mild reply schedules one deferred check-in. Each suffix is skipped
// when the model already phrased it itself, so the user never reads
// the same question twice.
func (o *Orchestrator) postProcess(sess *session.Session, name, reply string) string {
	switch triage.ClassifyReply(reply) {
	case triage.SeveritySerious:
		sess.SetEmergency(session.EmergencyState{
			Phase: session.EmergencyQuestionPending,
		})
		o.Log.Info("serious reply, emergency offer armed",
			zap.String("user_id", sess.UserID))
		if hasEmergencyQuestion(reply) {
			return reply
		}
		return reply + "\n\n" + emergency.OfferQuestion

	case triage.SeverityMild:
		if o.Scheduler != nil {
			o.Scheduler.Arm(sess.UserID, name)
		}
		if hasCheckInPhrase(reply) {
			return reply
		}
		return reply + "\n\n" + FollowupNotice
	}
	return reply
}

func hasEmergencyQuestion(reply string) bool {
	lower := strings.ToLower(reply)
	return strings.Contains(lower, "911") || strings.Contains(lower, "emergency services")
}

func hasCheckInPhrase(reply string) bool {
	lower := strings.ToLower(reply)
	return strings.Contains(lower, "check in") || strings.Contains(lower, "check on you")
}

// DeduplicateLines removes repeated lines from a reply, keeping the
// first occurrence. Comparison ignores case and surrounding space;
// blank lines always survive. Idempotent.
func DeduplicateLines(reply string) string {
	lines := strings.Split(reply, "\n")
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, line := range lines {
		key := strings.ToLower(strings.TrimSpace(line))
		if key == "" {
			out = append(out, line)
			continue
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
