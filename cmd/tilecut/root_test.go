package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

// scriptedScreen is a simulation screen that queues keys once initialized
type scriptedScreen struct {
	tcell.SimulationScreen
	keys []rune
}

func (s *scriptedScreen) Init() error {
	if err := s.SimulationScreen.Init(); err != nil {
		return err
	}
	s.SetSize(40, 25)
	for _, r := range s.keys {
		s.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	return nil
}

func scripted(keys ...rune) screenFactory {
	return func() (tcell.Screen, error) {
		return &scriptedScreen{SimulationScreen: tcell.NewSimulationScreen(""), keys: keys}, nil
	}
}

func execute(t *testing.T, newScreen screenFactory, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(newScreen)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, scripted(), "version")
	require.NoError(t, err)
	assert.Equal(t, "tilecut "+Version+"\n", out)

	out, err = execute(t, scripted(), "--version")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", out)
}

func TestInvalidFlags(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := execute(t, scripted(), "--rows", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.rows")

	_, err = execute(t, scripted(), "--min-gap", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid.min_gap")
}

func TestBadKeymap(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	cfg := []byte("keys:\n  split_vertical: [\"no-such-key\"]\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tilecut.yaml"), cfg, 0o600))

	_, err := execute(t, scripted())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-key")
}

func TestSessionSplitsAndQuits(t *testing.T) {
	// lumberjack's compression worker lives for the process
	defer goleak.VerifyNone(t, goleak.IgnoreAnyFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"))
	dir := t.TempDir()
	t.Chdir(dir)
	logPath := filepath.Join(dir, "tilecut.log")

	_, err := execute(t, scripted('1', '2', 'q'),
		"--multiplier", "1",
		"--log-file", logPath,
		"--log-level", "debug",
		"--validate",
	)
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, `"editor started"`)
	assert.Contains(t, log, `"split"`)
	assert.Contains(t, log, `"regions":3`)
	assert.NotContains(t, log, "invariant violated")
}
