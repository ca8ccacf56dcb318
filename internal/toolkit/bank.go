package toolkit

import (
	"context"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/schema"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/tools/formatting"
	"github.com/getkin/kin-openapi/openapi3"
)

const (
	ToolUserServiceReadiness   = "userservice_readiness_check"
	ToolLogin                  = "login_to_bank"
	ToolBalanceReaderReadiness = "balance_reader_readiness_check"
	ToolGetBalance             = "get_balance"
	ToolContactsReadiness      = "contact_readiness_check"
	ToolGetContacts            = "get_contacts"
	ToolFormatCurrency         = "format_currency"
	ToolFormatTimestamp        = "format_timestamp"
)

type ReadinessProbe interface {
	Ready(ctx context.Context) (bool, error)
}

type UserService interface {
	ReadinessProbe
	Login(ctx context.Context, username string, password string) (schema.LoginResult, error)
}

type BalanceReader interface {
	ReadinessProbe
	GetBalance(ctx context.Context, accountID string, jwtToken string) (schema.NormalizedResponse, error)
}

type ContactsService interface {
	ReadinessProbe
	GetContacts(ctx context.Context, username string, jwtToken string) (schema.NormalizedResponse, error)
}

type BankServices struct {
	UserService     UserService
	BalanceReader   BalanceReader
	Contacts        ContactsService
	TimestampFormat string
}

type loginInput struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type balanceInput struct {
	AccountID string `mapstructure:"account_id"`
	JWTToken  string `mapstructure:"jwt_token"`
}

type contactsInput struct {
	Username string `mapstructure:"username"`
	JWTToken string `mapstructure:"jwt_token"`
}

type currencyInput struct {
	Amount *int64 `mapstructure:"amount"`
}

type timestampInput struct {
	Timestamp string `mapstructure:"timestamp"`
}

type TimestampParts struct {
	Day   string `json:"day"`
	Month string `json:"month"`
}

// RegisterBankTools registers the tools the bank agents are allowed to call.
func RegisterBankTools(r *Registry, services BankServices) error {
	registrations := []struct {
		tool    Tool
		handler Handler
	}{
		{
			Tool{
				Name:        ToolUserServiceReadiness,
				Description: "Checks if the Bank of Anthos User Service API is ready to be used. Returns true if ready, false otherwise.",
			},
			readiness(services.UserService),
		},
		{
			Tool{
				Name: ToolLogin,
				Description: "Login to Bank of Anthos with username and password. Returns the JWT token, username, display name, " +
					"account number, issued at and expiry. Keep the token for authenticated requests and the account number " +
					"for balance requests.",
				InputSchema: objectSchema([]string{"username", "password"}, map[string]*openapi3.Schema{
					"username": stringProperty("The username provided by the user."),
					"password": stringProperty("The password provided by the user."),
				}),
			},
			func(ctx context.Context, args map[string]any) (any, error) {
				input, err := decodeArgs[loginInput](args)
				if err != nil {
					return nil, err
				}
				return services.UserService.Login(ctx, input.Username, input.Password)
			},
		},
		{
			Tool{
				Name:        ToolBalanceReaderReadiness,
				Description: "Checks if the Bank of Anthos Balance Reader API is ready to be used. Returns true if ready, false otherwise.",
			},
			readiness(services.BalanceReader),
		},
		{
			Tool{
				Name:        ToolGetBalance,
				Description: "Get the account balance of the user in cents. Requires the account number and JWT token from login.",
				InputSchema: objectSchema([]string{"account_id", "jwt_token"}, map[string]*openapi3.Schema{
					"account_id": stringProperty("Account number of the user."),
					"jwt_token":  stringProperty("JWT token received during login."),
				}),
			},
			func(ctx context.Context, args map[string]any) (any, error) {
				input, err := decodeArgs[balanceInput](args)
				if err != nil {
					return nil, err
				}
				return services.BalanceReader.GetBalance(ctx, input.AccountID, input.JWTToken)
			},
		},
		{
			Tool{
				Name:        ToolContactsReadiness,
				Description: "Checks if the Bank of Anthos Contacts API is ready to be used. Returns true if ready, false otherwise.",
			},
			readiness(services.Contacts),
		},
		{
			Tool{
				Name:        ToolGetContacts,
				Description: "Get the bank and account details of the contacts of the user. Requires the username and JWT token from login.",
				InputSchema: objectSchema([]string{"username", "jwt_token"}, map[string]*openapi3.Schema{
					"username":  stringProperty("Username of the user."),
					"jwt_token": stringProperty("JWT token received during login."),
				}),
			},
			func(ctx context.Context, args map[string]any) (any, error) {
				input, err := decodeArgs[contactsInput](args)
				if err != nil {
					return nil, err
				}
				return services.Contacts.GetContacts(ctx, input.Username, input.JWTToken)
			},
		},
		{
			Tool{
				Name:        ToolFormatCurrency,
				Description: "Format an amount in cents as a human readable dollar amount, for example 12345 becomes $123.45.",
				InputSchema: objectSchema(nil, map[string]*openapi3.Schema{
					"amount": openapi3.NewInt64Schema().WithNullable(),
				}),
			},
			func(ctx context.Context, args map[string]any) (any, error) {
				input, err := decodeArgs[currencyInput](args)
				if err != nil {
					return nil, err
				}
				return formatting.Currency(input.Amount), nil
			},
		},
		{
			Tool{
				Name:        ToolFormatTimestamp,
				Description: "Split a bank timestamp into a two digit day and an abbreviated month name.",
				InputSchema: objectSchema([]string{"timestamp"}, map[string]*openapi3.Schema{
					"timestamp": stringProperty("Timestamp as sent by the bank services."),
				}),
			},
			func(ctx context.Context, args map[string]any) (any, error) {
				input, err := decodeArgs[timestampInput](args)
				if err != nil {
					return nil, err
				}
				return formatTimestamp(input.Timestamp, services.TimestampFormat)
			},
		},
	}

	for _, registration := range registrations {
		if err := r.Register(registration.tool, registration.handler); err != nil {
			return err
		}
	}

	return nil
}

func readiness(probe ReadinessProbe) Handler {
	return func(ctx context.Context, args map[string]any) (any, error) {
		return probe.Ready(ctx)
	}
}

func formatTimestamp(timestamp string, layout string) (TimestampParts, error) {
	day, err := formatting.Day(timestamp, layout)
	if err != nil {
		return TimestampParts{}, err
	}

	month, err := formatting.Month(timestamp, layout)
	if err != nil {
		return TimestampParts{}, err
	}

	return TimestampParts{Day: day, Month: month}, nil
}
