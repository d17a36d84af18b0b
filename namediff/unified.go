package namediff

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Colors holds the line colorizers for unified output.
type Colors struct {
	Added   func(string, ...any) string
	Removed func(string, ...any) string
}

// NewColors returns the conventional palette: additions green, removals
// red.
func NewColors() *Colors {
	return &Colors{
		Added:   color.New(color.FgGreen).SprintfFunc(),
		Removed: color.New(color.FgRed).SprintfFunc(),
	}
}

func plainColor(s string, _ ...any) string { return s }

// WriteUnified writes a line diff of two inventories: unchanged lines with
// a leading space, removals with "-", additions with "+". Nil colors write
// plain text.
func WriteUnified(w io.Writer, before, after []string, colors *Colors) error {
	added, removed := plainColor, plainColor
	if colors != nil {
		if colors.Added != nil {
			added = colors.Added
		}
		if colors.Removed != nil {
			removed = colors.Removed
		}
	}

	dmp := diffpatch.New()
	a, b, lineArr := dmp.DiffLinesToChars(joinLines(before), joinLines(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArr)

	var buf bytes.Buffer
	for _, d := range diffs {
		for _, ln := range splitLines(d.Text) {
			switch d.Type {
			case diffpatch.DiffDelete:
				buf.WriteString(removed("-%s", ln))
			case diffpatch.DiffInsert:
				buf.WriteString(added("+%s", ln))
			case diffpatch.DiffEqual:
				buf.WriteString(" ")
				buf.WriteString(ln)
			}
			buf.WriteByte('\n')
		}
	}
	_, err := w.Write(buf.Bytes())
	return err
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
