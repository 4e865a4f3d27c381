package notification

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"carelink/config"
	"carelink/models"
	"carelink/utils"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const (
	clinicLocation   = "Main Medical Center, 123 Healthcare Ave"
	appointmentTZ    = "America/New_York"
	clockLayout      = "2006-01-02 3:04 PM"
	appointmentSpanM = 30
)

// GoogleNotificationService talks to Google Calendar and Gmail. When
// credentials are not configured both collaborators are nil and every
// call falls back to simulation mode, matching local development.
type GoogleNotificationService struct {
	calendarSvc *calendar.Service
	gmailSvc    *gmail.Service
	sender      string
}

// NewGoogleNotificationService builds the production notification
// backend. A missing credentials file is not an error: the service
// runs in simulation mode and says so once.
func NewGoogleNotificationService(ctx context.Context) *GoogleNotificationService {
	logger := utils.GetLogger()
	svc := &GoogleNotificationService{sender: config.AppConfig.ClinicEmail}

	credFile := config.AppConfig.GoogleCredentialsFile
	if credFile == "" {
		logger.Info("Google credentials not configured; notifications run in simulation mode")
		return svc
	}

	calSvc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credFile),
		option.WithScopes(calendar.CalendarScope))
	if err != nil {
		logger.Warn("Failed to build Calendar service; falling back to simulation", zap.Error(err))
	} else {
		svc.calendarSvc = calSvc
	}

	gmailSvc, err := gmail.NewService(ctx,
		option.WithCredentialsFile(credFile),
		option.WithScopes(gmail.GmailSendScope))
	if err != nil {
		logger.Warn("Failed to build Gmail service; falling back to simulation", zap.Error(err))
	} else {
		svc.gmailSvc = gmailSvc
	}

	return svc
}

// CreateEvent inserts a 30-minute calendar event for the booking. On
// any failure it degrades to the simulated event reference so the
// booking flow never stalls on the calendar backend.
func (s *GoogleNotificationService) CreateEvent(ctx context.Context, booking models.Booking) models.CalendarEvent {
	logger := utils.GetLogger()

	if s.calendarSvc == nil {
		return simulateEvent(booking)
	}

	start, err := time.Parse(clockLayout, booking.Date+" "+booking.Time)
	if err != nil {
		logger.Warn("Unparseable appointment time; simulating calendar event",
			zap.String("bookingID", booking.BookingID), zap.Error(err))
		return simulateEvent(booking)
	}
	end := start.Add(appointmentSpanM * time.Minute)

	event := &calendar.Event{
		Summary: fmt.Sprintf("Doctor Appointment - %s", booking.PatientName),
		Description: fmt.Sprintf(
			"Appointment Details:\n- Patient: %s\n- Doctor: %s (%s)\n- Reason: %s\n- Booking ID: %s\n\nPlease arrive 15 minutes early to complete paperwork.",
			booking.PatientName, booking.Doctor, booking.Specialty, booking.Reason, booking.BookingID),
		Location: clinicLocation,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: appointmentTZ,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: appointmentTZ,
		},
		Reminders: &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 60},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := s.calendarSvc.Events.Insert("primary", event).
		SendUpdates("all").Context(ctx).Do()
	if err != nil {
		logger.Warn("Calendar insert failed; simulating calendar event",
			zap.String("bookingID", booking.BookingID), zap.Error(err))
		return simulateEvent(booking)
	}

	logger.Info("Calendar event created",
		zap.String("bookingID", booking.BookingID),
		zap.String("eventURL", created.HtmlLink))

	return models.CalendarEvent{
		EventID:  created.Id,
		EventURL: created.HtmlLink,
		Status:   "confirmed",
		Real:     true,
	}
}

// SendConfirmation emails the booking confirmation via Gmail. Returns
// whether delivery was attempted successfully; failures are logged and
// never affect the booking outcome.
func (s *GoogleNotificationService) SendConfirmation(ctx context.Context, booking models.Booking, event models.CalendarEvent) bool {
	logger := utils.GetLogger()

	if s.gmailSvc == nil {
		logger.Info("Simulating confirmation email",
			zap.String("bookingID", booking.BookingID),
			zap.String("patient", booking.PatientName))
		return true
	}

	body := confirmationEmailBody(booking, event)
	raw := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Appointment Confirmed - %s\r\n\r\n%s",
		s.sender, s.sender, booking.Date, body)

	msg := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString([]byte(raw)),
	}
	sent, err := s.gmailSvc.Users.Messages.Send("me", msg).Context(ctx).Do()
	if err != nil {
		logger.Warn("Confirmation email failed",
			zap.String("bookingID", booking.BookingID), zap.Error(err))
		return false
	}

	logger.Info("Confirmation email sent",
		zap.String("bookingID", booking.BookingID),
		zap.String("messageID", sent.Id))
	return true
}

func confirmationEmailBody(booking models.Booking, event models.CalendarEvent) string {
	return fmt.Sprintf(`Dear %s,

Your appointment has been successfully confirmed!

Appointment Details:
- Date: %s
- Time: %s
- Doctor: %s (%s)
- Location: %s
- Reason: %s
- Booking ID: %s

Important Information:
- Please arrive 15 minutes early to complete necessary paperwork
- Bring your ID and insurance card
- If you need to reschedule or cancel, please call us at least 24 hours in advance

Calendar Event:
Your appointment has been added to your calendar: %s

If you have any questions, please don't hesitate to contact us.

Best regards,
Your Healthcare Team`,
		booking.PatientName, booking.Date, booking.Time, booking.Doctor,
		booking.Specialty, clinicLocation, booking.Reason, booking.BookingID,
		event.EventURL)
}

func simulateEvent(booking models.Booking) models.CalendarEvent {
	eventID := "CAL-" + booking.BookingID
	return models.CalendarEvent{
		EventID:  eventID,
		EventURL: "https://calendar.google.com/event?eid=" + eventID,
		Status:   "confirmed",
		Real:     false,
	}
}
