package fixtures

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	want := []string{"branching", "merging", "pullrequests", "sdet"}
	if diff := cmp.Diff(want, c.Drills()); diff != "" {
		t.Fatalf("drills mismatch (-want +got):\n%s", diff)
	}

	resp, err := c.Lookup("branching", "valid_login")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, "abc123", resp.String("token"))

	resp, err = c.Lookup("pullrequests", "apply_coupon")
	require.NoError(t, err)
	assert.Equal(t, 953.97, resp.Body["final_total"])
	assert.Equal(t, 10, resp.Body["discount"])

	resp, err = c.Lookup("sdet", "delete_account")
	require.NoError(t, err)
	assert.Equal(t, 204, resp.Status)
	assert.Empty(t, resp.Body)
}

func TestCases(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	cases, err := c.Cases("merging")
	require.NoError(t, err)
	want := []string{
		"cancel_order", "create_order", "get_order", "insufficient_funds",
		"invalid_card", "payment_success", "payment_timeout",
	}
	if diff := cmp.Diff(want, cases); diff != "" {
		t.Fatalf("cases mismatch (-want +got):\n%s", diff)
	}

	_, err = c.Cases("rebase")
	assert.ErrorIs(t, err, ErrUnknownDrill)
}

func TestLookupUnknown(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = c.Lookup("nope", "valid_login")
	assert.ErrorIs(t, err, ErrUnknownDrill)

	_, err = c.Lookup("branching", "nope")
	assert.ErrorIs(t, err, ErrUnknownCase)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"no status":      "d:\n  c:\n    token: x\n",
		"status range":   "d:\n  c:\n    status: 42\n",
		"status type":    "d:\n  c:\n    status: ok\n",
		"not a mapping":  "- 1\n- 2\n",
		"empty case map": "d:\n  c:\n",
		"non-string keys": "d:\n  c:\n    status: 200\n    stock:\n      1: 10\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParseAcceptsJSON(t *testing.T) {
	c, err := Parse([]byte(`{"payments": {"declined": {"status": 402, "error": "Insufficient funds"}}}`))
	require.NoError(t, err)
	resp, err := c.Lookup("payments", "declined")
	require.NoError(t, err)
	assert.Equal(t, 402, resp.Status)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	require.NoError(t, os.WriteFile(path, []byte("inventory:\n  check_stock:\n    status: 200\n    stock: 100\n"), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	resp, err := c.Lookup("inventory", "check_stock")
	require.NoError(t, err)
	assert.Equal(t, 100, resp.Body["stock"])

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadEmptyPathUsesEmbedded(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Drills(), 4)
}
