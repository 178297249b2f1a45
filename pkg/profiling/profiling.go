// Package profiling writes pprof CPU and heap profiles for the CLI.
package profiling

import (
	"io"
	"os"
	"runtime"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile
var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

// DoCPUProfiling starts CPU profiling into path.
// The returned stop func ends profiling and closes the file.
func DoCPUProfiling(path string) (stop func() error, err error) {
	f, err := osCreate(path)
	if err != nil {
		return nil, err
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_ = f.Close()
		return nil, err
	}
	return func() error {
		pprofStopCPUProfile()
		return f.Close()
	}, nil
}

// DoMemProfiling returns a func that writes a heap profile into path.
func DoMemProfiling(path string) (write func() error) {
	return func() (err error) {
		f, err := osCreate(path)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = closeErr
			}
		}()
		runtime.GC()
		return pprofWriteHeapProfile(f)
	}
}
