package agent

import "github.com/Agnidipto/gke-hackathon-multi-agent/internal/toolkit"

const (
	RootAgentName          = "bank_of_anthos_agent"
	BalanceReaderAgentName = "balance_reader_agent"
	ContactsAgentName      = "contacts_agent"
)

const balanceReaderInstruction = `You are an agent specializing in helping users see their account balance.
Tools you have access to:
1. balance_reader_readiness_check : Checks if Bank of Anthos's Balance Reader API is ready for use.
2. get_balance : Get user's account balance in cents.
3. format_currency : Turns an amount in cents into a readable dollar amount.

If you don't have the JWT Token, return back to root agent.
DO NOT ask user for JWT Token, or account number.`

const contactsInstruction = `You are an agent specializing in helping users get their contact information.
Tools you have access to:
1. contact_readiness_check : Checks if Bank of Anthos's Contacts API is ready for use.
2. get_contacts : Get user's contacts. Requires JWT Token.

If you don't have the JWT Token, return back to root agent.
DO NOT ask user for JWT Token, or account number.`

const rootInstruction = `You are an agent specializing in helping users access their financial information in the Bank of Anthos.

Sub-agents under you:

1. balance_reader_agent : (AUTHENTICATION REQUIRED) Helps users get their account balance.
Transfer to this agent ONLY if you have the account number and the JWT token.
DO NOT ask user for account number and token.

2. contacts_agent : (AUTHENTICATION REQUIRED) Helps users get their contacts' information.
Transfer to this agent ONLY if you have the username and JWT token.
DO NOT ask user for username and token.

Tools you have access to:
1. userservice_readiness_check : Checks if Bank of Anthos's User Service API is ready to be used.
2. login_to_bank : Login to Bank of Anthos. It returns:
    * jwt_token - needed for every authenticated request
    * username
    * display_name
    * account_number - needed for balance requests
    * issued
    * expires

Run login_to_bank before transferring to a sub-agent, if not already run.`

// BankAgents builds the bank agent tree for model.
func BankAgents(model string) Definition {
	return Definition{
		Name:        RootAgentName,
		Model:       model,
		Description: "Agent to help user access their financial information in the Bank of Anthos.",
		Instruction: rootInstruction,
		Tools: []string{
			toolkit.ToolUserServiceReadiness,
			toolkit.ToolLogin,
		},
		SubAgents: []Definition{
			{
				Name:        BalanceReaderAgentName,
				Model:       model,
				Description: "Agent to help users see their account balance.",
				Instruction: balanceReaderInstruction,
				Tools: []string{
					toolkit.ToolBalanceReaderReadiness,
					toolkit.ToolGetBalance,
					toolkit.ToolFormatCurrency,
				},
			},
			{
				Name:        ContactsAgentName,
				Model:       model,
				Description: "Agent to help users see their contacts.",
				Instruction: contactsInstruction,
				Tools: []string{
					toolkit.ToolContactsReadiness,
					toolkit.ToolGetContacts,
				},
			},
		},
	}
}
