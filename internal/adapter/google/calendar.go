package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2/google"
)

// Made a variable for testing purposes
var calendarBaseURL = "https://www.googleapis.com/calendar/v3"

const calendarScope = "https://www.googleapis.com/auth/calendar"

// CalendarError describes a failed call to the Calendar API. The record
// under approval is left untouched when this is returned.
type CalendarError struct {
	StatusCode int
	Message    string
}

func (e *CalendarError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("calendar: request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("calendar: %s (status %d)", e.Message, e.StatusCode)
}

// EventDate is an all-day date boundary in a calendar event.
type EventDate struct {
	Date string `json:"date"`
}

// Event is the calendar event payload for a birthday.
type Event struct {
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventDate `json:"start"`
	End         EventDate `json:"end"`
	Recurrence  []string  `json:"recurrence"`
}

type insertEventResponse struct {
	ID string `json:"id"`
}

type calendarErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CalendarClient creates events in a fixed target calendar using a
// service-account credential.
type CalendarClient struct {
	calendarID string
	httpClient *http.Client
	log        *slog.Logger
}

// NewCalendarClient builds a Calendar client from service-account key JSON.
// The returned client authenticates via the oauth2 two-legged JWT flow and
// is safe for concurrent use.
func NewCalendarClient(ctx context.Context, calendarID string, credentialsJSON []byte, logger *slog.Logger) (*CalendarClient, error) {
	jwtCfg, err := google.JWTConfigFromJSON(credentialsJSON, calendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account key: %w", err)
	}

	client := jwtCfg.Client(ctx)
	client.Timeout = 10 * time.Second

	return &CalendarClient{
		calendarID: calendarID,
		httpClient: client,
		log:        logger.With("adapter", "google_calendar"),
	}, nil
}

// newCalendarClientWithHTTP is used by tests to bypass the token source.
func newCalendarClientWithHTTP(calendarID string, client *http.Client, logger *slog.Logger) *CalendarClient {
	return &CalendarClient{
		calendarID: calendarID,
		httpClient: client,
		log:        logger.With("adapter", "google_calendar"),
	}
}

// InsertEvent creates the event in the target calendar and returns the
// created event's id. A non-2xx response or transport failure yields a
// *CalendarError.
func (c *CalendarClient) InsertEvent(ctx context.Context, event Event) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("marshal event: %w", err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", calendarBaseURL, url.PathEscape(c.calendarID))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create event request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "calendar insert failed", slog.String("error", err.Error()))
		return "", &CalendarError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &CalendarError{StatusCode: resp.StatusCode, Message: "failed to read response"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp calendarErrorResponse
		message := ""
		if err := json.Unmarshal(body, &errResp); err == nil {
			message = errResp.Error.Message
		}
		c.log.ErrorContext(ctx, "calendar insert failed",
			slog.Int("status", resp.StatusCode),
			slog.String("message", message))
		return "", &CalendarError{StatusCode: resp.StatusCode, Message: message}
	}

	var created insertEventResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return "", &CalendarError{StatusCode: resp.StatusCode, Message: "invalid response body"}
	}

	c.log.InfoContext(ctx, "calendar event created",
		slog.String("event_id", created.ID),
		slog.String("summary", event.Summary))

	return created.ID, nil
}
