package profiling

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoCPUProfiling(t *testing.T) {
	// Note: Cannot run with t.Parallel() due to global variable modifications
	path := filepath.Join(t.TempDir(), "cpu.prof")
	stop, err := DoCPUProfiling(path)
	require.NoError(t, err)
	require.NotNil(t, stop)
	assert.NoError(t, stop())

	_, err = os.Stat(path)
	assert.NoError(t, err, "expected profile file to be created")
}

func TestDoCPUProfiling_ErrorOsCreate(t *testing.T) {
	origOsCreate := osCreate
	defer func() {
		osCreate = origOsCreate
	}()
	osCreate = func(name string) (*os.File, error) {
		return nil, errors.New("mock error")
	}
	stop, err := DoCPUProfiling("invalid")
	assert.EqualError(t, err, "mock error")
	assert.Nil(t, stop)
}

func TestDoCPUProfiling_ErrorPprofStartCPUProfile(t *testing.T) {
	origStart := pprofStartCPUProfile
	defer func() {
		pprofStartCPUProfile = origStart
	}()
	pprofStartCPUProfile = func(w io.Writer) error {
		return errors.New("mock pprof error")
	}

	stop, err := DoCPUProfiling(filepath.Join(t.TempDir(), "cpu_err.prof"))
	assert.EqualError(t, err, "mock pprof error")
	assert.Nil(t, stop)
}

func TestDoMemProfiling(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mem.prof")
	write := DoMemProfiling(path)
	require.NotNil(t, write)
	assert.NoError(t, write())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestDoMemProfiling_Errors(t *testing.T) {
	origOsCreate := osCreate
	origWrite := pprofWriteHeapProfile
	defer func() {
		osCreate = origOsCreate
		pprofWriteHeapProfile = origWrite
	}()

	t.Run("create", func(t *testing.T) {
		osCreate = func(name string) (*os.File, error) {
			return nil, errors.New("mock error")
		}
		assert.EqualError(t, DoMemProfiling("invalid")(), "mock error")
		osCreate = origOsCreate
	})

	t.Run("write", func(t *testing.T) {
		pprofWriteHeapProfile = func(w io.Writer) error {
			return errors.New("mock pprof error")
		}
		err := DoMemProfiling(filepath.Join(t.TempDir(), "mem_err.prof"))()
		assert.EqualError(t, err, "mock pprof error")
	})
}
