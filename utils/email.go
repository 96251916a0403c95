package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	config "github.com/phillip/medcamp-server-go/config"
)

// email request payload for the ZeptoMail API
type emailRequest struct {
	From     emailAddress  `json:"from"`
	To       []toRecipient `json:"to"`
	Subject  string        `json:"subject"`
	TextBody string        `json:"textbody"`
}

type emailAddress struct {
	Address string `json:"address"`
}

type toRecipient struct {
	Email emailWithName `json:"email_address"`
}

type emailWithName struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// SendEmail relays a visitor message to the camp inbox through the ZeptoMail
// HTTP API. The visitor's address goes into the body so replies can find
// their way back.
func SendEmail(cfg config.MailConfig, sender, subject, body string) error {
	if cfg.APIURL == "" || cfg.APIKey == "" || cfg.From == "" {
		return fmt.Errorf("missing required email config")
	}

	if subject == "" {
		subject = "Message from " + sender
	}

	payload := emailRequest{
		From: emailAddress{Address: cfg.From},
		To: []toRecipient{
			{Email: emailWithName{Address: cfg.From, Name: "MedCamp"}},
		},
		Subject:  subject,
		TextBody: fmt.Sprintf("From: %s\n\n%s", sender, body),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, cfg.APIURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", cfg.APIKey)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("zeptomail API error: %s", resp.Status)
	}

	return nil
}
