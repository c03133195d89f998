package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/boostpanel/boostpanel/internal/config"
	"github.com/boostpanel/boostpanel/pkg/clients"
)

type message struct {
	AccountID int64  `json:"account_id"`
	Body      string `json:"body"`
}

// Sender delivers a text message to an account through the external
// messaging gateway. Each delivery attempt is independent; failures are
// reported to the caller, never retried here.
type Sender struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Sender {
	return &Sender{
		url:    cfg.NotifyAddress,
		client: client,
	}
}

func (s *Sender) Send(ctx context.Context, accountID int64, body string) error {
	payload, err := json.Marshal(message{AccountID: accountID, Body: body})
	if err != nil {
		return err
	}

	url := s.url + "/api/notify"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("delivery to account %d failed with status %d", accountID, resp.StatusCode)
	}
	return nil
}
