// File: services/calendar/google.go
package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"calendai/models"
	"calendai/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleGateway implements Gateway against the Google Calendar v3 API using
// a service-account credential.
type GoogleGateway struct {
	service *gcal.Service
}

// NewGoogleGateway authenticates with the service-account JSON at
// credentialsFile and builds the calendar service.
func NewGoogleGateway(ctx context.Context, credentialsFile string) (*GoogleGateway, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account file: %w", err)
	}
	jwtConfig, err := google.JWTConfigFromJSON(b, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account file: %w", err)
	}
	service, err := gcal.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleGateway{service: service}, nil
}

// FreeWindows lists the day's events and returns the gaps between them.
func (g *GoogleGateway) FreeWindows(ctx context.Context, calendarID string, start, end time.Time, minDuration time.Duration) ([]models.TimeWindow, error) {
	logger := utils.GetLogger()

	events, err := g.service.Events.List(calendarID).
		Context(ctx).
		SingleEvents(true).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve events: %w", err)
	}

	var busy []busyInterval
	for _, item := range events.Items {
		// Skip all-day events, which carry a date but no time.
		if item.Start == nil || item.Start.DateTime == "" || item.End == nil || item.End.DateTime == "" {
			continue
		}
		eventStart, err := time.Parse(time.RFC3339, item.Start.DateTime)
		if err != nil {
			logger.Warn("skipping event with unparseable start", zap.String("eventId", item.Id), zap.Error(err))
			continue
		}
		eventEnd, err := time.Parse(time.RFC3339, item.End.DateTime)
		if err != nil {
			logger.Warn("skipping event with unparseable end", zap.String("eventId", item.Id), zap.Error(err))
			continue
		}
		busy = append(busy, busyInterval{Start: eventStart, End: eventEnd})
	}

	windows := freeWindows(start, end, busy, minDuration)
	logger.Debug("computed free windows",
		zap.String("calendarID", calendarID),
		zap.Int("busy", len(busy)),
		zap.Int("free", len(windows)))
	return windows, nil
}

// Book inserts the event and returns its HTML link.
func (g *GoogleGateway) Book(ctx context.Context, req models.BookingRequest) (string, error) {
	attendees := make([]*gcal.EventAttendee, 0, len(req.Attendees))
	for _, email := range req.Attendees {
		attendees = append(attendees, &gcal.EventAttendee{Email: email})
	}

	event := &gcal.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &gcal.EventDateTime{DateTime: req.Start.Format(time.RFC3339), TimeZone: "UTC"},
		End:         &gcal.EventDateTime{DateTime: req.End.Format(time.RFC3339), TimeZone: "UTC"},
		Attendees:   attendees,
	}

	created, err := g.service.Events.Insert(req.CalendarID, event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to insert event: %w", err)
	}
	return created.HtmlLink, nil
}
