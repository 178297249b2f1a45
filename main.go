package main

import (
	"fmt"
	"os"

	"github.com/filetug/apollo/pkg/cli"
)

var osExit = os.Exit
var execute = cli.Execute

func main() {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			osExit(2)
		}
	}()
	run()
}

// cli.Execute has already printed the error.
var run = func() {
	if err := execute(); err != nil {
		osExit(1)
	}
}
