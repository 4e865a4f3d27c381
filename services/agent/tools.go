package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"carelink/services/appointment"
	"carelink/services/retrieval"
	"carelink/services/session"
	"carelink/utils"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"
)

// toolbox executes the model's tool calls against the real
// collaborators. Slot selection goes through the flow controller, so
// the model can only ever propose a slot; the confirmation step stays
// deterministic.
type toolbox struct {
	retriever  *retrieval.Retriever
	controller *appointment.FlowController
	sess       *session.Session
	now        func() time.Time
	log        *zap.Logger
}

func chatTools() []openai.Tool {
	return []openai.Tool{
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "lookup_health_data",
				Description: "Look up the patient's recorded meals, vitals, or medical records. Pass the patient's question verbatim; the store resolves the date and category itself.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"query": {
							Type:        jsonschema.String,
							Description: "The patient's question about their health data, e.g. 'what did I eat yesterday?'",
						},
					},
					Required: []string{"query"},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "get_current_date",
				Description: "Get today's date in YYYY-MM-DD format.",
				Parameters: jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: map[string]jsonschema.Definition{},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "get_user_name",
				Description: "Get the patient's display name.",
				Parameters: jsonschema.Definition{
					Type:       jsonschema.Object,
					Properties: map[string]jsonschema.Definition{},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "list_appointment_slots",
				Description: "List available appointment slots, optionally filtered by specialty or limited to one week.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"specialty": {
							Type:        jsonschema.String,
							Description: "Optional specialty filter, e.g. 'Cardiology'.",
						},
						"week_offset": {
							Type:        jsonschema.Integer,
							Description: "Optional week window: 0 for this week, 1 for next week. Omit for all upcoming slots.",
						},
					},
				},
			},
		},
		{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        "select_appointment_slot",
				Description: "Propose an appointment slot by its number from the last shown listing. The patient still has to confirm with yes before anything is booked.",
				Parameters: jsonschema.Definition{
					Type: jsonschema.Object,
					Properties: map[string]jsonschema.Definition{
						"slot_number": {
							Type:        jsonschema.Integer,
							Description: "The 1-based slot number from the listing.",
						},
					},
					Required: []string{"slot_number"},
				},
			},
		},
	}
}

// execute dispatches one tool call. Tool failures are reported back to
// the model as text, never as turn-level errors.
func (t *toolbox) execute(ctx context.Context, call openai.ToolCall) string {
	t.log.Debug("tool call",
		zap.String("user_id", t.sess.UserID),
		zap.String("tool", call.Function.Name),
		zap.String("args", call.Function.Arguments))

	switch call.Function.Name {
	case "lookup_health_data":
		var args struct {
			Query string `json:"query"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return fmt.Sprintf("invalid arguments: %v", err)
		}
		text, err := t.retriever.Retrieve(ctx, t.sess.UserID, args.Query)
		if err != nil {
			t.log.Error("fact lookup failed", zap.Error(err))
			return "The health record store is unavailable right now."
		}
		return text

	case "get_current_date":
		return t.now().Format("2006-01-02")

	case "get_user_name":
		return utils.DisplayName(t.sess.UserID)

	case "list_appointment_slots":
		var args struct {
			Specialty  string `json:"specialty"`
			WeekOffset *int   `json:"week_offset"`
		}
		_ = json.Unmarshal([]byte(call.Function.Arguments), &args)
		if args.WeekOffset != nil {
			slots := t.controller.Schedule.SlotsForWeek(*args.WeekOffset)
			t.sess.SetShownSlots(slots)
			return appointment.FormatSlots(slots)
		}
		return t.controller.ShowSlots(t.sess, args.Specialty)

	case "select_appointment_slot":
		var args struct {
			SlotNumber int `json:"slot_number"`
		}
		if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
			return fmt.Sprintf("invalid arguments: %v", err)
		}
		return t.controller.ProposeSlot(ctx, t.sess, args.SlotNumber)
	}
	return fmt.Sprintf("unknown tool %q", call.Function.Name)
}
