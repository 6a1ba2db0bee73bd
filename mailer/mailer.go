package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/Abdul-Mateen-1/Railway-Management-System/configs"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Brevo sends transactional email through the Brevo HTTP API. All sends are
// best effort: ticketing never fails because an email could not go out.
type Brevo struct {
	APIKey      string
	SenderEmail string
	SenderName  string
	client      *http.Client
}

// New builds the email client from configuration. Returns nil when the
// service is not configured; a nil *Brevo is safe to use and skips sends.
func New() *Brevo {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.ConfigOr("EMAIL_SENDER_NAME", "RailSafar")

	if apiKey == "" || senderEmail == "" {
		log.Println("⚠️ Email service not configured, booking emails disabled.")
		return nil
	}

	log.Println("✅ Email service initialized successfully.")
	return &Brevo{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// Send delivers one email. Errors are logged, not returned, because callers
// fire it from goroutines after the booking work has already committed.
func (b *Brevo) Send(toName, toEmail, subject, htmlContent string) {
	if b == nil {
		return
	}
	if err := b.send(toName, toEmail, subject, htmlContent); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
		return
	}
	log.Printf("✅ Email sent successfully to %s", toEmail)
}

func (b *Brevo) send(toName, toEmail, subject, htmlContent string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": b.SenderName, "email": b.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, brevoEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", b.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo API error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}
	return nil
}
