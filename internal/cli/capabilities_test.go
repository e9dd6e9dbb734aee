// Package cli — capabilities_test.go contains unit tests for the pure
// formatting functions used by the capabilities command and other CLI
// output helpers.
package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/tagged/internal/model"
)

// TestFormatAliases verifies that FormatAliases joins alias names and
// falls back to a dash.
func TestFormatAliases(t *testing.T) {
	tests := []struct {
		name    string
		aliases []string
		want    string
	}{
		{
			name:    "empty aliases returns dash",
			aliases: []string{},
			want:    "-",
		},
		{
			name:    "nil aliases returns dash",
			aliases: nil,
			want:    "-",
		},
		{
			name:    "single alias",
			aliases: []string{"FromStr"},
			want:    "FromStr",
		},
		{
			name:    "multiple aliases keep their order",
			aliases: []string{"Equality", "PartialEq"},
			want:    "Equality, PartialEq",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAliases(tt.aliases))
		})
	}
}

func TestFormatTypeList(t *testing.T) {
	assert.Equal(t, "no marker types", FormatTypeList(nil))
	assert.Equal(t, "a, b", FormatTypeList([]string{"a", "b"}))
}

func TestRunCapabilities_Text(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCapabilities(&out, &capabilitiesFlags{}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1+len(model.Capabilities("")))
	assert.True(t, strings.HasPrefix(lines[0], "GROUP"))
	assert.Contains(t, out.String(), "Equality, PartialEq")
	assert.Contains(t, out.String(), "- (serde)")
	assert.Contains(t, out.String(), "inner_access")
}

func TestRunCapabilities_Group(t *testing.T) {
	withJSONOutput(t)
	var out bytes.Buffer
	require.NoError(t, runCapabilities(&out, &capabilitiesFlags{group: "Transparent"}))

	var result struct {
		Capabilities []capabilityJSON `json:"capabilities"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Len(t, result.Capabilities, len(model.Capabilities(model.GroupTransparent)))
	for _, c := range result.Capabilities {
		assert.Equal(t, "transparent", c.Group)
		assert.NotNil(t, c.Aliases, "aliases encode as [] rather than null")
	}
	assert.Equal(t, "TransparentDebug", result.Capabilities[0].Method)
}

func TestRunCapabilities_InvalidGroup(t *testing.T) {
	err := runCapabilities(&bytes.Buffer{}, &capabilitiesFlags{group: "derive"})
	requireExitCode(t, err, model.ExitGeneralError)
}
