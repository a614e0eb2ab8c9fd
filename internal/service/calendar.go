package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"whatsapp-crm-backend/internal/config"
	apperrors "whatsapp-crm-backend/internal/errors"
	"whatsapp-crm-backend/internal/logger"

	"golang.org/x/oauth2"
)

// CalendarEvent represents a single event on an external calendar
type CalendarEvent struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// ExternalCalendarInterface defines the interface for the external calendar provider
type ExternalCalendarInterface interface {
	Enabled() bool
	EventsBetween(ctx context.Context, calendarID string, start, end time.Time) ([]CalendarEvent, error)
	CreateEvent(ctx context.Context, calendarID string, event *CalendarEvent) (string, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, event *CalendarEvent) error
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarService talks to the external calendar provider's REST API. Every
// method returns an ExternalServiceError on provider failure so callers can
// decide between failing the operation and degrading.
type CalendarService struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// NewCalendarService creates a new calendar service from configuration. When
// no base URL is configured the service is disabled and Enabled reports false.
func NewCalendarService(cfg *config.Config, log *logger.Logger) *CalendarService {
	svc := &CalendarService{
		baseURL: strings.TrimRight(cfg.CalendarBaseURL, "/"),
		log:     log,
	}
	if svc.baseURL == "" {
		return svc
	}

	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.CalendarToken})
	svc.httpClient = oauth2.NewClient(context.Background(), src)
	svc.httpClient.Timeout = cfg.CalendarTimeout()
	return svc
}

// Enabled reports whether an external calendar provider is configured
func (s *CalendarService) Enabled() bool {
	return s.baseURL != ""
}

// EventsBetween lists events overlapping [start, end) on the given calendar
func (s *CalendarService) EventsBetween(ctx context.Context, calendarID string, start, end time.Time) ([]CalendarEvent, error) {
	endpoint := fmt.Sprintf("%s/v1/calendars/%s/events?%s", s.baseURL, url.PathEscape(calendarID), url.Values{
		"from": {start.UTC().Format(time.RFC3339)},
		"to":   {end.UTC().Format(time.RFC3339)},
	}.Encode())

	var events []CalendarEvent
	if err := s.doJSON(ctx, http.MethodGet, endpoint, nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// CreateEvent creates an event and returns the provider's event ID
func (s *CalendarService) CreateEvent(ctx context.Context, calendarID string, event *CalendarEvent) (string, error) {
	endpoint := fmt.Sprintf("%s/v1/calendars/%s/events", s.baseURL, url.PathEscape(calendarID))

	var created CalendarEvent
	if err := s.doJSON(ctx, http.MethodPost, endpoint, event, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// UpdateEvent replaces an event's time and title
func (s *CalendarService) UpdateEvent(ctx context.Context, calendarID, eventID string, event *CalendarEvent) error {
	endpoint := fmt.Sprintf("%s/v1/calendars/%s/events/%s", s.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID))
	return s.doJSON(ctx, http.MethodPut, endpoint, event, nil)
}

// DeleteEvent removes an event from the calendar
func (s *CalendarService) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	endpoint := fmt.Sprintf("%s/v1/calendars/%s/events/%s", s.baseURL, url.PathEscape(calendarID), url.PathEscape(eventID))
	return s.doJSON(ctx, http.MethodDelete, endpoint, nil, nil)
}

// doJSON performs a JSON request against the provider with one retry on
// transport failure.
func (s *CalendarService) doJSON(ctx context.Context, method, endpoint string, in, out interface{}) error {
	if !s.Enabled() {
		return apperrors.NewExternalServiceError("calendar", "no external calendar configured")
	}

	var body []byte
	if in != nil {
		var err error
		body, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode calendar request: %w", err)
		}
	}

	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(500 * time.Millisecond):
			}
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to create calendar request: %w", err)
		}
		if in != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		req.Header.Set("Accept", "application/json")

		resp, lastErr = s.httpClient.Do(req)
		if lastErr == nil {
			break
		}
		s.log.WithError(lastErr).WithField("attempt", attempt+1).Warn("Calendar request failed")
	}
	if lastErr != nil {
		return apperrors.NewExternalServiceError("calendar", lastErr.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.NewExternalServiceError("calendar",
			fmt.Sprintf("status=%d body=%s", resp.StatusCode, string(data)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apperrors.NewExternalServiceError("calendar", fmt.Sprintf("decode failed: %v", err))
		}
	}
	return nil
}
