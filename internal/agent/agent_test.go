package agent_test

import (
	"testing"

	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/agent"
	"github.com/Agnidipto/gke-hackathon-multi-agent/internal/toolkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lookupMock map[string]bool

func (l lookupMock) Has(name string) bool {
	return l[name]
}

func TestBankAgents(t *testing.T) {
	root := agent.BankAgents("gemini-2.0-flash")

	t.Run("should only reference registered bank tools", func(t *testing.T) {
		registry := toolkit.NewRegistry()
		require.NoError(t, toolkit.RegisterBankTools(registry, toolkit.BankServices{}))

		assert.NoError(t, root.Validate(registry))
	})

	t.Run("should report unknown tools anywhere in the tree", func(t *testing.T) {
		err := root.Validate(lookupMock{toolkit.ToolLogin: true})

		assert.ErrorIs(t, err, agent.ErrUnknownTool)
		assert.Contains(t, err.Error(), agent.ContactsAgentName)
		assert.NotContains(t, err.Error(), "uses "+toolkit.ToolLogin)
	})

	t.Run("should propagate the model", func(t *testing.T) {
		balance, ok := root.Find(agent.BalanceReaderAgentName)

		require.True(t, ok)
		assert.Equal(t, "gemini-2.0-flash", balance.Model)
		assert.Contains(t, balance.Tools, toolkit.ToolGetBalance)
	})

	t.Run("should not find unknown agents", func(t *testing.T) {
		_, ok := root.Find("transfer_agent")
		assert.False(t, ok)
	})
}
