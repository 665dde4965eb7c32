// Copyright (c) 2026 Our Philly. All rights reserved.

package digest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ourphilly/ourphilly/internal/platform/constants"
)

// Sender posts rendered emails to the transactional email API.
type Sender struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

func NewSender(baseURL, apiKey, from string) *Sender {
	return &Sender{
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
		httpClient: &http.Client{
			Timeout: constants.OutboundFetchTimeout,
		},
	}
}

// Enabled reports whether delivery is configured. Without credentials the
// digest can still be built and previewed, just not sent.
func (sender *Sender) Enabled() bool {
	return sender.baseURL != "" && sender.apiKey != ""
}

type sendRequest struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// Send delivers one email.
func (sender *Sender) Send(context context.Context, to, subject, html string) error {
	if !sender.Enabled() {
		return fmt.Errorf("email delivery is not configured")
	}

	body, err := json.Marshal(sendRequest{
		From:    sender.from,
		To:      to,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(context, http.MethodPost, sender.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+sender.apiKey)

	response, err := sender.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= 300 {
		return fmt.Errorf("email API status %d", response.StatusCode)
	}
	return nil
}
