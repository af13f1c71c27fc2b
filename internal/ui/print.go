package ui

import (
	"fmt"
	"io"
)

// OK prints a success line ("✔ msg").
func OK(w io.Writer, msg string) {
	t := Current()
	fmt.Fprintln(w, t.Success.Render(t.SymDone+" "+msg))
}

// Fail prints an error line ("✖ msg").
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Error.Render("✖ "+msg))
}

// Note prints a muted hint.
func Note(w io.Writer, msg string) {
	fmt.Fprintln(w, Current().Muted.Render(msg))
}
