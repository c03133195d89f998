package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/boostpanel/boostpanel/internal/config"
	"github.com/boostpanel/boostpanel/pkg/clients"
)

// Membership is the oracle's answer about an account's presence in a channel.
type Membership string

const (
	Member    Membership = "member"
	NotMember Membership = "not_member"
	Unknown   Membership = "unknown"
)

type response struct {
	Status string `json:"status"`
}

// Client asks the external membership oracle whether an account currently
// belongs to a channel. Any transport failure or unrecognized answer is
// reported as Unknown; the caller decides what Unknown means.
type Client struct {
	url    string
	client clients.HTTPClientI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:    cfg.OracleAddress,
		client: client,
	}
}

func (c *Client) CheckMembership(ctx context.Context, accountID int64, channelID string) (Membership, error) {
	url := fmt.Sprintf("%s/api/membership/%s/%d", c.url, channelID, accountID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return Unknown, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		zap.L().Warn("membership oracle request failed", zap.Error(err))
		return Unknown, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		zap.L().Warn("membership oracle returned unexpected status", zap.Int("status", resp.StatusCode))
		return Unknown, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Unknown, err
	}

	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return Unknown, err
	}

	switch Membership(r.Status) {
	case Member:
		return Member, nil
	case NotMember:
		return NotMember, nil
	default:
		return Unknown, nil
	}
}
