// File: services/agent/agent.go
package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"calendai/models"
	"calendai/utils"

	"go.uber.org/zap"
)

// Fixed replies used by the slot-filling dialogue.
const (
	MsgAskDate        = "For which date would you like to book the appointment?"
	MsgAskTime        = "What time should I book the meeting on?"
	MsgAskSummary     = "What should be the title or purpose of the meeting?"
	MsgAskAvailDate   = "For which date should I check availability?"
	MsgInvalidDate    = "Please provide a valid date and time for the meeting."
	MsgDecline        = "Sorry, I only assist with calendar event planning."
	MsgReschedule     = "Rescheduling is not yet implemented."
	MsgCancel         = "Canceling events is not yet implemented."
	MsgCapabilityHint = "How can I assist you with your calendar today?"

	bookingDescription = "Booked via AI assistant"
)

var emailPattern = regexp.MustCompile(`[\w.\-]+@[\w.\-]+`)

// BookOutcomeKind distinguishes the three ways a booking attempt can end,
// so callers can treat "the slot is taken" differently from "the calendar
// backend failed".
type BookOutcomeKind int

const (
	BookUnavailable BookOutcomeKind = iota
	BookGatewayError
	Booked
)

// BookOutcome is the result of one booking attempt.
type BookOutcome struct {
	Kind BookOutcomeKind
	Link string
	Err  error
}

// ProcessTurn runs one turn of the conversation: extract, merge, dispatch.
func (s *DefaultChatService) ProcessTurn(ctx context.Context, message, sessionID string) string {
	logger := utils.GetLogger()

	sess, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		logger.Warn("failed to load session, starting fresh",
			zap.String("sessionID", sessionID), zap.Error(err))
		sess = models.NewSession(sessionID)
	}

	extracted, err := s.Extractor.Extract(ctx, message)
	if err != nil {
		logger.Error("intent extraction failed", zap.Error(err))
		extracted = models.ExtractedIntent{Intent: models.IntentUnknown}
	}

	// Non-actionable intents are answered straight from the model's reason
	// text and never touch session state.
	if extracted.Conversational() {
		reply := extracted.Reason
		if reply == "" {
			reply = MsgDecline
		}
		s.record(ctx, sessionID, message, extracted.Intent, reply)
		return reply
	}

	sess.Merge(extracted)
	if err := s.Sessions.Put(ctx, sess); err != nil {
		logger.Warn("failed to persist session state",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	var reply string
	switch extracted.Intent {
	case models.IntentBook:
		reply = s.handleBook(ctx, sess)
	case models.IntentCheckAvail:
		reply = s.handleCheckAvailability(ctx, sess)
	case models.IntentReschedule:
		reply = MsgReschedule
	case models.IntentCancel:
		reply = MsgCancel
	default:
		reply = MsgCapabilityHint
	}

	s.record(ctx, sessionID, message, extracted.Intent, reply)
	return reply
}

// handleBook runs the completeness checks over the accumulated slots and,
// once everything is present and parseable, attempts the booking.
func (s *DefaultChatService) handleBook(ctx context.Context, sess *models.Session) string {
	logger := utils.GetLogger()
	base := s.now()

	dateText := sess.String(models.SlotDate)
	timeText := sess.String(models.SlotTime)
	summary := sess.String(models.SlotSummary)
	attendees := sanitizeAttendees(sess.Slots[models.SlotAttendees])

	// A time range carries its own duration, which wins over the stored slot.
	minutes := ResolveDuration(sess.Slots[models.SlotDuration])
	if timeText != "" {
		if startText, rangeMinutes, ok := SplitTimeRange(s.Parser, timeText, base); ok {
			timeText = startText
			minutes = rangeMinutes
		}
	}

	if dateText == "" {
		return MsgAskDate
	}
	if timeText == "" {
		return MsgAskTime
	}
	if summary == "" {
		return MsgAskSummary
	}

	start, ok := s.Parser.Parse(dateText+" "+timeText, base)
	if !ok {
		return MsgInvalidDate
	}
	duration := time.Duration(minutes) * time.Minute
	end := start.Add(duration)

	outcome := s.attemptBooking(ctx, models.BookingRequest{
		CalendarID:  s.CalendarID,
		Start:       start,
		End:         end,
		Summary:     summary,
		Description: bookingDescription,
		Attendees:   attendees,
	}, duration)

	switch outcome.Kind {
	case BookUnavailable:
		return fmt.Sprintf("Sorry, no free slot available at that time on %s.", start.Format("2006-01-02"))
	case BookGatewayError:
		logger.Error("booking failed", zap.String("sessionID", sess.ID), zap.Error(outcome.Err))
		return fmt.Sprintf("Sorry, there was an error booking your event: %v", outcome.Err)
	}

	// Booking succeeded; the slot-filling conversation is complete.
	if err := s.Sessions.Delete(ctx, sess.ID); err != nil {
		logger.Warn("failed to clear session after booking",
			zap.String("sessionID", sess.ID), zap.Error(err))
	}
	return fmt.Sprintf("Your event '%s' has been booked for %s! [View in Calendar](%s)",
		summary, start.Format("2006-01-02 15:04"), outcome.Link)
}

// attemptBooking checks the day's free windows for one that covers the
// requested interval and books only when such a window exists.
func (s *DefaultChatService) attemptBooking(ctx context.Context, req models.BookingRequest, duration time.Duration) BookOutcome {
	dayStart := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 0, 0, 0, 0, req.Start.Location())
	dayEnd := time.Date(req.Start.Year(), req.Start.Month(), req.Start.Day(), 23, 59, 0, 0, req.Start.Location())

	windows, err := s.Calendar.FreeWindows(ctx, req.CalendarID, dayStart, dayEnd, duration)
	if err != nil {
		return BookOutcome{Kind: BookGatewayError, Err: err}
	}

	available := false
	for _, w := range windows {
		if w.Covers(req.Start, duration) {
			available = true
			break
		}
	}
	if !available {
		return BookOutcome{Kind: BookUnavailable}
	}

	link, err := s.Calendar.Book(ctx, req)
	if err != nil {
		return BookOutcome{Kind: BookGatewayError, Err: err}
	}
	return BookOutcome{Kind: Booked, Link: link}
}

// handleCheckAvailability lists the free windows of the requested day.
func (s *DefaultChatService) handleCheckAvailability(ctx context.Context, sess *models.Session) string {
	minutes := ResolveDuration(sess.Slots[models.SlotDuration])

	day, ok := s.Parser.Parse(sess.String(models.SlotDate), s.now())
	if !ok {
		return MsgAskAvailDate
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	dateLabel := dayStart.Format("2006-01-02")

	windows, err := s.Calendar.FreeWindows(ctx, s.CalendarID, dayStart, dayEnd, time.Duration(minutes)*time.Minute)
	if err != nil {
		utils.GetLogger().Error("availability query failed", zap.String("sessionID", sess.ID), zap.Error(err))
		return fmt.Sprintf("Sorry, there was an error checking your calendar: %v", err)
	}
	if len(windows) == 0 {
		return fmt.Sprintf("No free slots on %s.", dateLabel)
	}

	var lines []string
	for _, w := range windows {
		// Malformed upstream windows are skipped rather than shown.
		if !w.End.After(w.Start) {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s - %s", w.Start.Format("15:04"), w.End.Format("15:04")))
	}
	if len(lines) == 0 {
		return fmt.Sprintf("No valid free slots on %s.", dateLabel)
	}
	return fmt.Sprintf("Available slots on %s:\n%s", dateLabel, strings.Join(lines, "\n"))
}

// sanitizeAttendees coerces whatever the model produced into a list of
// email addresses. Malformed input degrades to an empty list, never an
// error.
func sanitizeAttendees(value any) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		return v
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return emailPattern.FindAllString(fmt.Sprint(v), -1)
	}
}

// record appends the turn to the transcript log when one is configured.
func (s *DefaultChatService) record(ctx context.Context, sessionID, message, intent, reply string) {
	if s.Transcripts == nil {
		return
	}
	entry := models.TranscriptEntry{
		SessionID: sessionID,
		Message:   message,
		Intent:    intent,
		Reply:     reply,
		CreatedAt: s.now(),
	}
	if err := s.Transcripts.Append(ctx, entry); err != nil {
		utils.GetLogger().Warn("failed to record transcript entry",
			zap.String("sessionID", sessionID), zap.Error(err))
	}
}
