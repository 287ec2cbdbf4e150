package pidfile_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/craftsolver-go/internal/infrastructure/pidfile"
)

func TestPIDFile_AcquireAndRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")
	p := pidfile.New(path)

	require.NoError(t, p.Acquire())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(os.Getpid()), strings.TrimSpace(string(data)))

	require.NoError(t, p.Release())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// releasing twice is fine
	assert.NoError(t, p.Release())
}

func TestPIDFile_ReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")
	require.NoError(t, os.WriteFile(path, []byte("not-a-pid\n"), 0644))

	assert.NoError(t, pidfile.New(path).Acquire())
}

func TestPIDFile_RefusesLiveProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "daemon.pid")
	// the parent of the test binary is alive for the duration of the test
	require.NoError(t, os.WriteFile(path, []byte(fmt.Sprintf("%d\n", os.Getppid())), 0644))

	err := pidfile.New(path).Acquire()

	var running *pidfile.ErrAlreadyRunning
	require.ErrorAs(t, err, &running)
	assert.Equal(t, os.Getppid(), running.PID)
}
