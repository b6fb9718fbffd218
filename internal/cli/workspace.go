package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/graph-gophers/graphql-editor/codec"
	"github.com/graph-gophers/graphql-editor/errors"
)

type libraryFile struct {
	path      string
	firstLine int
	lines     int
}

// libraries is the concatenated text of the library files, with enough
// bookkeeping to point errors back at the file they came from.
type libraries struct {
	text  string
	files []libraryFile
}

func readLibraries(paths []string) (*libraries, error) {
	libs := &libraries{}
	var b strings.Builder
	line := 1
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read library %s: %w", p, err)
		}
		text := strings.TrimRight(string(data), "\n") + "\n"
		n := strings.Count(text, "\n")
		libs.files = append(libs.files, libraryFile{path: p, firstLine: line, lines: n})
		b.WriteString(text)
		line += n
	}
	libs.text = b.String()
	return libs, nil
}

// locate rewrites a parse error so that Source names a file and library
// line numbers are relative to that file.
func (l *libraries) locate(schemaPath string, perr *errors.ParseError) *errors.ParseError {
	out := *perr
	if perr.Source != codec.SourceLibraries {
		out.Source = schemaPath
		return &out
	}
	out.Locations = nil
	for _, loc := range perr.Locations {
		f := l.fileAt(loc.Line)
		if f == nil {
			out.Locations = append(out.Locations, loc)
			continue
		}
		out.Source = f.path
		out.Locations = append(out.Locations, errors.Location{Line: loc.Line - f.firstLine + 1, Column: loc.Column})
	}
	if out.Source == codec.SourceLibraries && len(l.files) == 1 {
		out.Source = l.files[0].path
	}
	return &out
}

func (l *libraries) fileAt(line int) *libraryFile {
	for i := range l.files {
		f := &l.files[i]
		if line >= f.firstLine && line < f.firstLine+f.lines {
			return f
		}
	}
	return nil
}

// fileResult is the outcome of processing one schema file.
type fileResult struct {
	path   string
	input  string
	output string
	err    error
}

func formatFile(path string, libs *libraries) fileResult {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileResult{path: path, err: fmt.Errorf("failed to read %s: %w", path, err)}
	}
	res := fileResult{path: path, input: string(data)}
	res.output, err = codec.Format(res.input, libs.text)
	if perr, ok := errors.As(err); ok {
		res.err = libs.locate(path, perr)
	} else {
		res.err = err
	}
	return res
}
