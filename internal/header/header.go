// Package header reads and writes the attribute header of Ultrastar
// song files.
//
// A song file starts with a run of #KEY:VALUE lines followed by the
// note body. The parser is permissive: keys match case-insensitively,
// blank lines inside the run are skipped, and lines that look like
// comments are dropped with a warning. The note body is never
// interpreted, it is carried through verbatim.
package header

import (
	"fmt"
	"io"
	"strings"

	"github.com/randompersona1/ultrastar/internal/types"
)

// Result holds the outcome of parsing one song file.
type Result struct {
	// Attributes is the parsed header in file order, keys uppercased.
	Attributes *types.AttributeBlock

	// Body holds the note lines verbatim, without line terminators.
	Body []string

	// LineEnding is the terminator the source file used, "\n" or
	// "\r\n". Writing with the same terminator keeps diffs quiet.
	LineEnding string

	// Warnings records recoverable oddities: duplicate keys, empty
	// keys, comment-like lines inside the header.
	Warnings []types.Warning
}

// Parse reads a complete song file from r. path is used in errors and
// warnings only.
//
// In strict mode every condition that would produce a warning fails
// with a *types.ParseError instead. Duplicate keys keep the value of
// the later line and the position of the earlier one.
func Parse(r io.Reader, path string, strict bool) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	text := strings.TrimPrefix(string(data), "\uFEFF")

	lineEnding := "\n"
	if strings.Contains(text, "\r\n") {
		lineEnding = "\r\n"
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	res := &Result{
		Attributes: types.NewAttributeBlock(),
		LineEnding: lineEnding,
	}

	bodyStart := len(lines)
scan:
	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		lineNo := i + 1

		switch {
		case trimmed == "":
			// Blank lines inside the header are not preserved.
			continue

		case strings.HasPrefix(trimmed, "#"):
			colon := strings.Index(raw, ":")
			if colon < 0 {
				if strict {
					return nil, &types.ParseError{
						Path:    path,
						Line:    lineNo,
						Message: "attribute line has no colon",
					}
				}
				res.warn(lineNo, "dropping comment-like line without colon")
				continue
			}

			key := types.NormalizeKey(raw[:colon])
			value := raw[colon+1:]
			if key == "" {
				if strict {
					return nil, &types.ParseError{
						Path:    path,
						Line:    lineNo,
						Message: "attribute line has empty key",
					}
				}
				res.warn(lineNo, "dropping attribute line with empty key")
				continue
			}
			if res.Attributes.Has(key) {
				if strict {
					return nil, &types.ParseError{
						Path:    path,
						Line:    lineNo,
						Message: fmt.Sprintf("duplicate attribute %s", key),
					}
				}
				res.warn(lineNo, fmt.Sprintf("duplicate attribute %s, keeping the later value", key))
			}
			res.Attributes.Set(key, value)

		default:
			bodyStart = i
			break scan
		}
	}

	if bodyStart < len(lines) {
		res.Body = lines[bodyStart:]
	}
	return res, nil
}

func (r *Result) warn(line int, msg string) {
	r.Warnings = append(r.Warnings, types.Warning{
		Stage:   "header",
		Line:    line,
		Message: msg,
	})
}

// Write serializes the header and body to w. Attribute lines come out
// as #KEY:VALUE in block order, values untouched. lineEnding defaults
// to "\n".
func Write(w io.Writer, attrs *types.AttributeBlock, body []string, lineEnding string) error {
	if lineEnding == "" {
		lineEnding = "\n"
	}

	var sb strings.Builder
	for key, value := range attrs.All() {
		sb.WriteString("#")
		sb.WriteString(key)
		sb.WriteString(":")
		sb.WriteString(value)
		sb.WriteString(lineEnding)
	}
	for _, line := range body {
		sb.WriteString(line)
		sb.WriteString(lineEnding)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("writing song file: %w", err)
	}
	return nil
}
