package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephmachado/data-quality-checker/internal/testutil"
)

// writeSuiteFile writes a suite YAML fixture and returns its path.
func writeSuiteFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunSuiteAllPass(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id,price\n1,10\n2,20\n")

	suitePath := writeSuiteFile(t, fmt.Sprintf(`
name: orders-quality
checks:
  - kind: is_column_unique
    data: %s
    column: order_id
  - kind: is_column_between
    data: %s
    column: price
    min: 0
    max: 100
`, data, data))

	out, err := executeCommand(t, "run", suitePath, "--db", tempDB(t))
	require.NoError(t, err)
	assert.Contains(t, out, "Suite: orders-quality")
	assert.Contains(t, out, "✓ is_column_unique")
	assert.Contains(t, out, "✓ is_column_between")
	assert.Contains(t, out, "Suite Summary: 2 passed, 0 failed, 0 errored")
	assert.Contains(t, out, "✓ All checks passed")
}

func TestRunSuiteWithFailure(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id,price\n1,10\n1,20\n")

	suitePath := writeSuiteFile(t, fmt.Sprintf(`
name: orders-quality
checks:
  - kind: is_column_unique
    data: %s
    column: order_id
  - kind: is_column_between
    data: %s
    column: price
    min: 0
    max: 100
`, data, data))

	out, err := executeCommand(t, "run", suitePath, "--db", tempDB(t))
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitFailure, exitErr.Code)

	assert.Contains(t, out, "✗ is_column_unique")
	assert.Contains(t, out, "✓ is_column_between")
	assert.Contains(t, out, "Suite Summary: 1 passed, 1 failed, 0 errored")
}

func TestRunSuiteWithError(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id\n1\n2\n")
	missing := filepath.Join(t.TempDir(), "missing.csv")

	suitePath := writeSuiteFile(t, fmt.Sprintf(`
name: orders-quality
checks:
  - kind: is_column_unique
    data: %s
    column: order_id
  - kind: is_column_not_null
    data: %s
    column: order_id
`, data, missing))

	out, err := executeCommand(t, "run", suitePath, "--db", tempDB(t))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "✓ is_column_unique")
	assert.Contains(t, out, "! is_column_not_null")
	assert.Contains(t, out, "Error:")
	assert.Contains(t, out, "Suite Summary: 1 passed, 0 failed, 1 errored")
}

func TestRunSuiteMissingFile(t *testing.T) {
	out, err := executeCommand(t, "run",
		filepath.Join(t.TempDir(), "nope.yaml"), "--db", tempDB(t))
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, ExitCommandError, exitErr.Code)
	assert.Contains(t, out, "E002")
}

func TestRunSuiteRejectsUnknownField(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id\n1\n")

	suitePath := writeSuiteFile(t, fmt.Sprintf(`
name: orders-quality
checks:
  - kind: is_column_unique
    data: %s
    colunm: order_id
`, data))

	out, err := executeCommand(t, "run", suitePath, "--db", tempDB(t))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "E005")
}

func TestRunSuiteWithInjectedTokens(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id\n1\n2\n")

	suitePath := writeSuiteFile(t, fmt.Sprintf(`
name: orders-quality
checks:
  - kind: is_column_unique
    data: %s
    column: order_id
`, data))

	rootOpts := &RootOptions{Format: "text", Database: tempDB(t)}
	opts := &RunOptions{
		RootOptions: rootOpts,
		Tokens:      testutil.NewFixedTokenGenerator("run-00000000-0000-0000-0000-000000000001"),
	}

	buf := &bytes.Buffer{}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	require.NoError(t, runSuite(opts, suitePath, cmd))
	assert.Contains(t, buf.String(), "Suite: orders-quality (run run-00000000-0000-0000-0000-000000000001)")
}

func TestRunSuiteJSON(t *testing.T) {
	data := writeCSV(t, "orders.csv", "order_id\n1\n2\n")

	suitePath := writeSuiteFile(t, fmt.Sprintf(`
name: orders-quality
checks:
  - kind: is_column_unique
    data: %s
    column: order_id
`, data))

	out, err := executeCommand(t, "--format", "json", "run", suitePath, "--db", tempDB(t))
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	result, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "orders-quality", result["suite"])

	token, ok := result["run_token"].(string)
	require.True(t, ok)
	assert.Len(t, token, 36, "run token should be a UUID")

	checks, ok := result["checks"].([]interface{})
	require.True(t, ok)
	assert.Len(t, checks, 1)
}
