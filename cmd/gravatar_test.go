package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theapemachine/mcp-server-gravatar/pkg/profile"
)

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, printJSON(cmd, profile.Project(profile.Document{"company": "Acme"}, "company")))
	assert.Equal(t, "\"Acme\"\n", buf.String())
}

func TestHarnessCommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, name := range []string{
		"serve",
		"get_profile_by_email",
		"get_profile_by_hash",
		"get_avatars",
		"get_selected_avatar_as_image",
		"get_profile_field",
	} {
		assert.True(t, names[name], name)
	}
}

func TestAvatarsSelectionFlags(t *testing.T) {
	flags := avatarsCmd.Flags()

	require.NoError(t, flags.Set("selected_email_hash", "abc"))
	require.NoError(t, flags.Set("selected_email", "foo@bar.com"))
	assert.Error(t, avatarsCmd.ValidateFlagGroups())
}
