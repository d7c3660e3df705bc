package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/felipeOliveira-1/fstech-agency/internal/domain"
	"github.com/felipeOliveira-1/fstech-agency/internal/infra/resilience"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
)

const (
	calcomBaseURL  = "https://api.cal.com/v2"
	calcomTimezone = "America/Sao_Paulo"
)

// CalCom books meetings through the Cal.com v2 API.
type CalCom struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	eventTypeID int
	cb          *gobreaker.CircuitBreaker
	cfg         resilience.Config
}

// NewCalCom creates a Cal.com client bound to one event type (the
// agency's diagnostic meeting).
func NewCalCom(httpClient *http.Client, baseURL, apiKey string, eventTypeID int, cb *gobreaker.CircuitBreaker, cfg resilience.Config) *CalCom {
	if baseURL == "" {
		baseURL = calcomBaseURL
	}
	return &CalCom{
		httpClient:  httpClient,
		baseURL:     baseURL,
		apiKey:      apiKey,
		eventTypeID: eventTypeID,
		cb:          cb,
		cfg:         cfg,
	}
}

type calcomBookingPayload struct {
	EventTypeID int               `json:"eventTypeId"`
	Start       string            `json:"start"`
	End         string            `json:"end"`
	Responses   calcomResponses   `json:"responses"`
	TimeZone    string            `json:"timeZone"`
	Language    string            `json:"language"`
	Status      string            `json:"status"`
	Metadata    map[string]string `json:"metadata"`
	Title       string            `json:"title,omitempty"`
	Description string            `json:"description,omitempty"`
}

type calcomResponses struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type calcomBookingResponse struct {
	Booking struct {
		ID        int    `json:"id"`
		UID       string `json:"uid"`
		Title     string `json:"title"`
		Status    string `json:"status"`
		StartTime string `json:"startTime"`
		EndTime   string `json:"endTime"`
	} `json:"booking"`
}

// BookMeeting creates a booking for the invitee. A zero duration
// defaults to one hour.
func (c *CalCom) BookMeeting(ctx context.Context, req domain.BookingRequest) (*domain.Booking, error) {
	ctx, span := tracer.Start(ctx, "CalCom.BookMeeting")
	defer span.End()
	span.SetAttributes(attribute.String("booking.invitee", req.InviteeEmail))

	if req.InviteeName == "" || req.InviteeEmail == "" {
		return nil, &domain.ErrValidation{
			Field:   "invitee",
			Message: "invitee name and email are required",
		}
	}
	duration := req.DurationMin
	if duration <= 0 {
		duration = 60
	}
	end := req.Start.Add(time.Duration(duration) * time.Minute)

	payload := calcomBookingPayload{
		EventTypeID: c.eventTypeID,
		Start:       req.Start.UTC().Format(time.RFC3339),
		End:         end.UTC().Format(time.RFC3339),
		Responses:   calcomResponses{Name: req.InviteeName, Email: req.InviteeEmail},
		TimeZone:    calcomTimezone,
		Language:    "en",
		Status:      "ACCEPTED",
		Metadata:    map[string]string{"source": "api"},
		Title:       req.Title,
		Description: req.Notes,
	}

	var created calcomBookingResponse
	err := resilience.Execute(ctx, c.cb, c.cfg, func() error {
		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(body))
		if err != nil {
			return err
		}
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
		httpReq.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("cal.com API returned status %d", resp.StatusCode)
		}
		return json.NewDecoder(resp.Body).Decode(&created)
	})
	if err != nil {
		return nil, wrapExternal("calcom", err)
	}

	if created.Booking.ID == 0 && created.Booking.UID == "" {
		return nil, &domain.ErrExternalService{Service: "calcom", Err: fmt.Errorf("booking created without id")}
	}

	booking := &domain.Booking{
		ID:     fmt.Sprintf("%d", created.Booking.ID),
		UID:    created.Booking.UID,
		Title:  created.Booking.Title,
		Start:  req.Start,
		End:    end,
		Status: created.Booking.Status,
	}
	if booking.Title == "" {
		booking.Title = req.Title
	}
	if booking.Status == "" {
		booking.Status = "ACCEPTED"
	}
	return booking, nil
}
