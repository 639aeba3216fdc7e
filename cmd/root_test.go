package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_HasExpectedFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.NotNil(t, flags.Lookup("path"))
	require.NotNil(t, flags.Lookup("config"))
	require.NotNil(t, flags.Lookup("output"))
	require.NotNil(t, flags.Lookup("log-level"))
}

func TestRootCmd_HasExpectedSubcommands(t *testing.T) {
	want := map[string]bool{
		"show":    false,
		"check":   false,
		"branch":  false,
		"version": false,
	}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		require.True(t, found, "%s subcommand should be registered", name)
	}
}

func TestRootCmd_InvalidLogLevel(t *testing.T) {
	_, err := runCommand(t, "version", "--log-level", "shouty")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid log level")
}
