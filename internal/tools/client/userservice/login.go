package userservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/schema"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/requesting"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/token"
	"github.com/google/go-querystring/query"
)

var ErrMissingToken = errors.New("login response carries no token")

// Login exchanges credentials for a token and projects its claims. Wrong
// credentials and server errors come back as a failed LoginResult, not an error.
func (c *Client) Login(ctx context.Context, username string, password string) (schema.LoginResult, error) {
	values, err := query.Values(loginParams{Username: username, Password: password})
	if err != nil {
		return schema.LoginResult{}, err
	}

	response, err := c.requester.Get(ctx, "/login", values, "")
	if err != nil {
		return schema.LoginResult{}, err
	}
	defer requesting.Drain(response)

	switch response.StatusCode {
	case http.StatusInternalServerError:
		return schema.NewLoginFailure(schema.LoginErrorInternalServer), nil
	case http.StatusUnauthorized:
		return schema.NewLoginFailure(schema.LoginErrorIncorrectCredentials), nil
	case http.StatusOK:
	default:
		return schema.NewLoginFailure(fmt.Sprintf("Unexpected status code %d", response.StatusCode)), nil
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return schema.LoginResult{}, fmt.Errorf("%s: %w", Destination, requesting.TransportError(err))
	}

	var parsed loginResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return schema.LoginResult{}, fmt.Errorf("%s: %w", Destination, requesting.ErrInvalidJSONBody)
	}

	if parsed.Token == "" {
		return schema.LoginResult{}, ErrMissingToken
	}

	claims, err := token.Decode(parsed.Token)
	if err != nil {
		return schema.LoginResult{}, err
	}

	return schema.LoginResult{
		JWTToken:      parsed.Token,
		DisplayName:   claims.Name,
		AccountNumber: claims.Account,
		Username:      claims.User,
		Issued:        claims.Issued(),
		Expires:       claims.Expires(),
	}, nil
}
