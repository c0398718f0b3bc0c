package ui

import (
	"fmt"
	"io"
	"os"
)

// Out and Err receive status lines; tests swap them.
var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

func OK(msg string)   { fmt.Fprintln(Out, current.Success.Render(current.SymDone+" "+msg)) }
func Fail(msg string) { fmt.Fprintln(Err, current.Error.Render("✖ "+msg)) }
