package ui

import (
	"fmt"
	"io"
	"os"
)

// IsTTY reports whether w is a character device.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

func OK(w io.Writer, th Theme, msg string) {
	fmt.Fprintln(w, th.Success.Render(th.SymOK+" "+msg))
}

func Fail(w io.Writer, th Theme, msg string) {
	fmt.Fprintln(w, th.Error.Render(th.SymFail+" "+msg))
}
