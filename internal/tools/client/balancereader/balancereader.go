package balancereader

import (
	"context"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/schema"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/client"
	"github.com/rs/zerolog"
)

const Destination = "balance-reader"

type Client struct {
	requester *client.Requester
}

func NewClient(logger *zerolog.Logger, optionFuncs ...client.OptionFunc) (*Client, error) {
	options, err := client.NewOptions(optionFuncs...)
	if err != nil {
		return nil, err
	}

	return &Client{
		requester: client.NewRequester(logger, Destination, options),
	}, nil
}

func (c *Client) Ready(ctx context.Context) (bool, error) {
	return c.requester.Ready(ctx)
}

// GetBalance returns the balance of accountID in cents, as sent by the balance reader.
func (c *Client) GetBalance(ctx context.Context, accountID string, jwtToken string) (schema.NormalizedResponse, error) {
	return c.requester.FetchAuthorized(ctx, "/balances", "account_id", accountID, jwtToken)
}
