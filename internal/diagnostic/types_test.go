package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics
	assert.True(t, d.IsValid())
	assert.NoError(t, d.Error())

	d.AddWarning("odd_seed_pairs", "seed list has odd length", "", "")
	assert.True(t, d.IsValid())

	d.AddError("range_overlap", "intervals overlap", "seed->soil", "{start: 50, length: 48}")
	assert.True(t, d.HasErrors())

	err := d.Error()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[seed->soil]")
	assert.Contains(t, err.Error(), "[range_overlap]")

	var other Diagnostics
	other.AddError("no_seeds", "manifest declares no seeds", "", "")

	d.Merge(other)
	assert.Len(t, d.Errors, 2)
	assert.Len(t, d.Warnings, 1)
}

func TestDiagnosticString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain message", Diagnostic{Message: "plain message"}.String())
	assert.Equal(t, "[bad_length] length must be positive",
		Diagnostic{Code: "bad_length", Message: "length must be positive"}.String())
	assert.Equal(t, "[seed->soil] {dst: 1}: [range_incomplete] missing fields",
		Diagnostic{
			Code:    "range_incomplete",
			Message: "missing fields",
			MapPair: "seed->soil",
			Subject: "{dst: 1}",
		}.String())

	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "unknown", Severity(42).String())
}
