package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/graph-gophers/graphql-editor/errors"
)

var (
	okColor    = color.New(color.FgGreen, color.Bold)
	errColor   = color.New(color.FgRed, color.Bold)
	warnColor  = color.New(color.FgYellow)
	pathColor  = color.New(color.FgCyan)
	faintColor = color.New(color.Faint)
)

// printOK reports a file that passed.
func printOK(w io.Writer, path, msg string) {
	fmt.Fprintf(w, "%s %s %s\n", okColor.Sprint("ok"), pathColor.Sprint(path), faintColor.Sprint(msg))
}

// printFailure reports a file that failed, with the locations of a parse
// error on their own lines.
func printFailure(w io.Writer, path string, err error) {
	perr, ok := errors.As(err)
	if !ok {
		fmt.Fprintf(w, "%s %s %v\n", errColor.Sprint("error"), pathColor.Sprint(path), err)
		return
	}
	if perr.Source != "" {
		path = perr.Source
	}
	fmt.Fprintf(w, "%s %s %s\n", errColor.Sprint("error"), pathColor.Sprint(path), perr.Message)
	for _, loc := range perr.Locations {
		fmt.Fprintf(w, "  %s %s:%d:%d\n", warnColor.Sprint("at"), path, loc.Line, loc.Column)
	}
}
