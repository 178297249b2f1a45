package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"testing"
)

func TestMainRoot(t *testing.T) {
	runCalled := false

	oldRun := run
	defer func() {
		run = oldRun
	}()
	run = func() {
		runCalled = true
	}

	main()

	if !runCalled {
		t.Fatal("expected main function to call run")
	}
}

func Test_run(t *testing.T) {
	oldExecute, oldExit := execute, osExit
	defer func() {
		execute, osExit = oldExecute, oldExit
	}()

	exitCode := -1
	osExit = func(code int) {
		exitCode = code
	}

	t.Run("success", func(t *testing.T) {
		exitCode = -1
		execute = func() error { return nil }
		run()
		if exitCode != -1 {
			t.Errorf("expected no exit, got code %d", exitCode)
		}
	})

	t.Run("failure", func(t *testing.T) {
		execute = func() error { return errors.New("test error") }
		run()
		if exitCode != 1 {
			t.Errorf("expected exit code 1, got %d", exitCode)
		}
	})
}

func TestMain_RecoversPanic(t *testing.T) {
	oldRun, oldExit, oldStderr := run, osExit, os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w
	defer func() {
		run, osExit, os.Stderr = oldRun, oldExit, oldStderr
	}()

	exitCode := -1
	osExit = func(code int) {
		exitCode = code
	}
	run = func() {
		panic("boom")
	}

	main()

	_ = w.Close()
	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	if exitCode != 2 {
		t.Errorf("expected exit code 2, got %d", exitCode)
	}
	if !strings.Contains(buf.String(), "boom") {
		t.Errorf("expected stderr to contain panic value, got %q", buf.String())
	}
}
