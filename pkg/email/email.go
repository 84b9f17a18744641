package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

type Service struct {
	apiKey    string
	from      string
	client    *http.Client
	templates *template.Template
}

type emailPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// LeadNotificationData yeni lead bildirimi template verisi
type LeadNotificationData struct {
	ListingTitle string
	LeadName     string
	LeadEmail    string
	LeadPhone    string
	LeadMessage  string
	LeadSource   string
}

func NewService(apiKey, from string) (*Service, error) {
	tmpl, err := template.New("emails").Parse(leadNotificationTemplate)
	if err != nil {
		return nil, fmt.Errorf("could not parse email templates: %v", err)
	}

	return &Service{
		apiKey:    apiKey,
		from:      from,
		client:    &http.Client{Timeout: 10 * time.Second},
		templates: tmpl,
	}, nil
}

// SendLeadNotification yeni müşteri talebini brokerage inbox'ına iletir
func (s *Service) SendLeadNotification(to string, data LeadNotificationData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "lead_notification", data); err != nil {
		return fmt.Errorf("could not render lead notification: %v", err)
	}

	subject := "New inquiry"
	if data.ListingTitle != "" {
		subject = "New inquiry: " + data.ListingTitle
	}

	return s.send(to, subject, body.String())
}

func (s *Service) send(to, subject, html string) error {
	payload, err := json.Marshal(emailPayload{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, string(raw))
	}
	return nil
}
