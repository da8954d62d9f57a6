// Package email sends transactional mail through the Resend HTTP API.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const baseURL = "https://api.resend.com"

type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type EmailClient interface {
	Send(ctx context.Context, to, subject, message, actionURL string) error
}

type Client struct {
	apiKey string
	from   string
	client *http.Client
	logger *slog.Logger
}

func NewClient(apiKey, from string) *Client {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return &Client{
		apiKey: apiKey,
		from:   from,
		client: client,
		logger: slog.Default().With("component", "email"),
	}
}

// Send delivers a notification email. When no API key is configured the
// send is skipped with a warning, matching local development setups.
func (c *Client) Send(ctx context.Context, to, subject, message, actionURL string) error {
	if len(c.apiKey) == 0 {
		c.logger.Warn("RESEND_API_KEY not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	msg := Message{
		From:    c.from,
		To:      []string{to},
		Subject: "Lighthouse: " + subject,
		HTML:    renderHTML(subject, message, actionURL),
	}

	body, err := json.Marshal(msg)

	if err != nil {
		return fmt.Errorf("failed to marshal body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", baseURL+"/emails", bytes.NewReader(body))

	if err != nil {
		return fmt.Errorf("failed create new request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.client.Do(req)

	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		bodyBytes, readErr := io.ReadAll(res.Body)
		if readErr != nil {
			return fmt.Errorf("request failed with status %d; also failed reading body: %w", res.StatusCode, readErr)
		}
		return fmt.Errorf("request failed with status '%v' and body:\n%v", res.StatusCode, string(bodyBytes))
	}

	return nil
}

func renderHTML(subject, message, actionURL string) string {
	var action string

	if len(actionURL) != 0 {
		action = fmt.Sprintf(`
        <div style="margin: 20px 0;">
          <a href="%s"
             style="background-color: #007bff; color: white; padding: 10px 20px;
                    text-decoration: none; border-radius: 5px; display: inline-block;">
            View Details
          </a>
        </div>`, actionURL)
	}

	return fmt.Sprintf(`
      <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
        <h2 style="color: #333;">Lighthouse Management System</h2>
        <h3 style="color: #555;">%s</h3>
        <p style="color: #666; line-height: 1.6;">%s</p>%s
        <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
        <p style="color: #999; font-size: 12px;">
          This is an automated message from Lighthouse Management System.
        </p>
      </div>`, subject, message, action)
}

// BookingConfirmationBody renders the confirmation mail for a reserved
// facility slot.
func BookingConfirmationBody(userName, facilityName, date, timeOfDay string) (subject, message string) {
	subject = "Booking Confirmation"
	message = fmt.Sprintf(
		"Hi %s, your booking has been confirmed for %s on %s at %s. Please arrive 10 minutes early for your session.",
		userName, facilityName, date, timeOfDay,
	)
	return subject, message
}

// BookingReminderBody renders the reminder mail for an upcoming session.
func BookingReminderBody(userName, facilityName, timeOfDay string) (subject, message string) {
	subject = "Booking Reminder"
	message = fmt.Sprintf(
		"Hi %s, this is a reminder about your upcoming session at %s starting at %s. Please arrive on time.",
		userName, facilityName, timeOfDay,
	)
	return subject, message
}
