package contacts

import (
	"context"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/schema"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/client"
	"github.com/rs/zerolog"
)

const Destination = "contacts"

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

// GetContacts lists the saved contacts of username.
func (c *Client) GetContacts(ctx context.Context, username string, jwtToken string) (schema.NormalizedResponse, error) {
	return c.requester.FetchAuthorized(ctx, "/contacts", "username", username, jwtToken)
}
