package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowLogsEmpty(t *testing.T) {
	out, err := executeCommand(t, "show-logs", "--db", tempDB(t))
	require.NoError(t, err)
	assert.Contains(t, out, "No log entries found.")
}

func TestShowLogsAfterChecks(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id\n1\n2\n")
	db := tempDB(t)

	_, err := executeCommand(t, "check-unique", "--data", data, "--column", "order_id", "--db", db)
	require.NoError(t, err)
	_, err = executeCommand(t, "check-not-null", "--data", data, "--column", "order_id", "--db", db)
	require.NoError(t, err)

	out, err := executeCommand(t, "show-logs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "is_column_unique")
	assert.Contains(t, out, "is_column_not_null")
	assert.Contains(t, out, "PASS")
}

func TestShowLogsJSON(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id\n1\n1\n")
	db := tempDB(t)

	_, err := executeCommand(t, "check-unique", "--data", data, "--column", "order_id", "--db", db)
	require.Error(t, err) // duplicate ids, the check fails

	out, err := executeCommand(t, "--format", "json", "show-logs", "--db", db)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	records, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, records, 1)

	record, ok := records[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "is_column_unique", record["check_kind"])
	assert.Equal(t, false, record["result"])
	assert.Contains(t, record["metadata"], "duplicate_count")
}

func TestCleanLogs(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id\n1\n2\n")
	db := tempDB(t)

	_, err := executeCommand(t, "check-unique", "--data", data, "--column", "order_id", "--db", db)
	require.NoError(t, err)

	out, err := executeCommand(t, "clean-logs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Logs cleared")

	out, err = executeCommand(t, "show-logs", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No log entries found.")
}

func TestCleanLogsJSON(t *testing.T) {
	out, err := executeCommand(t, "--format", "json", "clean-logs", "--db", tempDB(t))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	result, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, true, result["cleared"])
}
