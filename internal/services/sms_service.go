package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioSMSSender posts to the Twilio Messages endpoint directly.
type TwilioSMSSender struct {
	accountSID string
	authToken  string
	fromNumber string
	baseURL    string
	httpClient *http.Client
}

func NewTwilioSMSSender(accountSID, authToken, fromNumber string) (*TwilioSMSSender, error) {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil, fmt.Errorf("incomplete Twilio configuration")
	}
	return &TwilioSMSSender{
		accountSID: accountSID,
		authToken:  authToken,
		fromNumber: fromNumber,
		baseURL:    twilioBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// WithBaseURL overrides the API host, used by tests.
func (s *TwilioSMSSender) WithBaseURL(base string) *TwilioSMSSender {
	s.baseURL = strings.TrimRight(base, "/")
	return s
}

type twilioMessageResponse struct {
	SID          string `json:"sid"`
	Status       string `json:"status"`
	ErrorCode    *int   `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

func (s *TwilioSMSSender) SendSMS(to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.accountSID)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.fromNumber)
	form.Set("Body", body)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("twilio returned status %d", resp.StatusCode)
	}

	var msg twilioMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return err
	}
	if msg.ErrorCode != nil {
		return fmt.Errorf("twilio error %d: %s", *msg.ErrorCode, msg.ErrorMessage)
	}
	return nil
}

// noopSMSSender stands in when SMS credentials are not configured; sends are
// logged and dropped.
type noopSMSSender struct {
	logger *zap.Logger
}

func NewNoopSMSSender(logger *zap.Logger) SMSSender {
	return &noopSMSSender{logger: logger}
}

func (s *noopSMSSender) SendSMS(to, _ string) error {
	s.logger.Debug("sms sender not configured, dropping message", zap.String("to", to))
	return nil
}
