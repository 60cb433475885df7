package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/jarwise/internal/common"
	"github.com/Veraticus/jarwise/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig(t *testing.T) {
	t.Helper()
	viper.Reset()
	config.SetDefaults(viper.GetViper())
	viper.Set(config.KeyDatabasePath, filepath.Join(t.TempDir(), "jarwise.db"))
	t.Cleanup(viper.Reset)
}

func runCommand(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestCommands_LedgerFlow(t *testing.T) {
	setupTestConfig(t)

	out := runCommand(t, addCmd(), "45000", "October salary", "--income")
	assert.Contains(t, out, "Added income ₹45000")

	out = runCommand(t, addCmd(), "250", "Swiggy", "dinner")
	assert.Contains(t, out, "Added expense ₹250 as Food")

	out = runCommand(t, addCmd(), "1200", "Zomato dinner", "--category", "Entertainment")
	assert.Contains(t, out, "as Entertainment")

	out = runCommand(t, classifyCmd(), "zomato dinner tonight")
	assert.Contains(t, out, "Entertainment (100% confidence)")

	out = runCommand(t, learnCmd(), "--list")
	assert.Contains(t, out, "zomato dinner")

	out = runCommand(t, listCmd(), "--type", "expense")
	assert.Contains(t, out, "Swiggy dinner")
	assert.NotContains(t, out, "October salary")

	out = runCommand(t, statsCmd())
	assert.Contains(t, out, "of 3 transactions auto-categorized")
}

func TestCommands_Jars(t *testing.T) {
	setupTestConfig(t)

	out := runCommand(t, jarsCmd(), "set", "Emergency", "--target", "1000", "--current", "200")
	assert.Contains(t, out, "short ₹800")

	out = runCommand(t, jarsCmd(), "set", "Emergency", "--current", "1000")
	assert.Contains(t, out, "funded")

	out = runCommand(t, jarsCmd(), "list")
	assert.Contains(t, out, "₹1000 / ₹1000")

	out = runCommand(t, jarsCmd(), "delete", "Emergency")
	assert.Contains(t, out, "Deleted jar Emergency")

	out = runCommand(t, jarsCmd())
	assert.Contains(t, out, "No jars configured")
}

func TestCommands_Insights(t *testing.T) {
	setupTestConfig(t)

	runCommand(t, addCmd(), "30000", "Salary credit", "--income")
	runCommand(t, addCmd(), "500", "Swiggy lunch")

	assert.Contains(t, runCommand(t, summaryCmd()), "Safe to spend")
	assert.Contains(t, runCommand(t, forecastCmd()), "Forecast (next 7 days)")
	assert.NotEmpty(t, runCommand(t, optimizeCmd()))
	assert.Contains(t, runCommand(t, planCmd()), "Weekly budget")
	assert.NotEmpty(t, runCommand(t, askCmd(), "what", "is", "my", "balance"))
}

func executeCommand(cmd *cobra.Command, args ...string) error {
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

func TestCommands_RecategorizeUnknownID(t *testing.T) {
	setupTestConfig(t)

	err := executeCommand(recategorizeCmd(), "missing", "Food")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No transaction with id missing")
}

func TestCommands_JarsAdd(t *testing.T) {
	setupTestConfig(t)

	runCommand(t, addCmd(), "5000", "Salary credit", "--income")
	runCommand(t, jarsCmd(), "set", "Savings", "--target", "3000")

	out := runCommand(t, jarsCmd(), "add", "Savings", "1000")
	assert.Contains(t, out, "₹1000 / ₹3000")

	out = runCommand(t, listCmd(), "--category", "Savings")
	assert.Contains(t, out, "Added to Savings jar")

	// Balance is now 4000; a larger deposit is rejected and the jar is unchanged.
	err := executeCommand(jarsCmd(), "add", "Savings", "4500")
	require.ErrorIs(t, err, common.ErrInsufficientBalance)
	assert.Contains(t, common.UserMessage(err), "Not enough balance to add ₹4500 (available ₹4000)")
	assert.Contains(t, runCommand(t, jarsCmd(), "list"), "₹1000 / ₹3000")

	// Deposits beyond the target are clamped.
	out = runCommand(t, jarsCmd(), "add", "Savings", "2500")
	assert.Contains(t, out, "₹3000 / ₹3000")
	assert.Contains(t, out, "funded")

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown jar", args: []string{"add", "Holiday", "100"}, wantErr: common.ErrNotFound},
		{name: "zero deposit", args: []string{"add", "Savings", "0"}, wantErr: common.ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, executeCommand(jarsCmd(), tt.args...), tt.wantErr)
		})
	}
}

func TestCommands_InsightsNeedTransactions(t *testing.T) {
	setupTestConfig(t)

	for _, cmd := range []*cobra.Command{summaryCmd(), forecastCmd(), optimizeCmd(), planCmd()} {
		err := executeCommand(cmd)
		require.ErrorIs(t, err, common.ErrNoTransactions, cmd.Use)
		assert.Contains(t, common.UserMessage(err), "No transactions yet", cmd.Use)
	}
	require.ErrorIs(t, executeCommand(askCmd(), "what", "is", "my", "balance"), common.ErrNoTransactions)
}
