package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	want := []string{
		"solve", "score", "render", "pick", "catalog", "patterns",
		"plans", "serve", "cache", "completion", "version",
	}

	registered := map[string]bool{}
	for _, cmd := range root.Commands() {
		registered[cmd.Name()] = true
	}

	for _, name := range want {
		if !registered[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestRootCommandUse(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "roomplan" {
		t.Errorf("Use = %q, want %q", root.Use, "roomplan")
	}
	if !root.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}
}

func TestSetLogLevel(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	c.SetLogLevel(log.DebugLevel)

	if c.Logger.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want %v", c.Logger.GetLevel(), log.DebugLevel)
	}
}
