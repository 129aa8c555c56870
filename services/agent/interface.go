// File: services/agent/interface.go
package agent

import (
	"context"
	"time"

	transcriptRepo "calendai/database/repository/transcript"
	"calendai/services/calendar"
	"calendai/services/extraction"
	"calendai/services/session"
)

// ChatService processes one conversational turn against accumulated session
// state. Every failure is encoded in the reply text; no error crosses the
// transport boundary.
type ChatService interface {
	ProcessTurn(ctx context.Context, message, sessionID string) string
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Sessions   session.Store
	Extractor  extraction.IntentExtractor
	Calendar   calendar.Gateway
	Parser     DateTimeParser
	CalendarID string

	// Transcripts is optional; when set, every processed turn is logged.
	Transcripts transcriptRepo.Repository

	// Now is overridable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
