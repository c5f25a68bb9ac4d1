package source

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/dotcli/internal/errors"
)

func TestShell_Command(t *testing.T) {
	s := NewShell("/bin/zsh")

	cmd := s.Command("/home/u/it's/.zshrc")
	assert.Equal(t, []string{"/bin/zsh", "-c", `. '/home/u/it'\''s/.zshrc'`}, cmd.Args)
}

func TestShell_SourceStartsOnce(t *testing.T) {
	var started []*exec.Cmd
	s := &Shell{Path: "/bin/bash", start: func(c *exec.Cmd) error {
		started = append(started, c)
		return nil
	}}

	require.NoError(t, s.Source(t.Context(), "/home/u/.bashrc"))
	require.Len(t, started, 1)
	assert.Equal(t, ". '/home/u/.bashrc'", started[0].Args[2])
}

func TestShell_SourceStartError(t *testing.T) {
	s := &Shell{Path: "/bin/missing", start: func(*exec.Cmd) error {
		return errors.New("no such file")
	}}

	err := s.Source(t.Context(), "/home/u/.bashrc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starting /bin/missing")
}

func TestShell_SourceRealProcess(t *testing.T) {
	sh, err := exec.LookPath("sh")
	if err != nil {
		t.Skip("sh not available")
	}
	rc := t.TempDir() + "/rc"

	assert.NoError(t, NewShell(sh).Source(t.Context(), rc))
}

func TestNop(t *testing.T) {
	assert.NoError(t, Nop{}.Source(t.Context(), "/anything"))
}
