package outline

import (
	"strings"
	"unicode"

	"github.com/matzehuels/mikado/pkg/errors"
)

// Option configures parsing.
type Option func(*options)

type options struct {
	strictIndent bool
}

// WithStrictIndent rejects lines whose indentation is not a multiple of
// [IndentWidth]. By default such indentation is floored to the nearest level.
func WithStrictIndent() Option {
	return func(o *options) { o.strictIndent = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Tokenize splits text into depth-tagged tasks in source order.
//
// Lines are separated by '\n'. Blank lines are skipped. Depth is the number of
// leading space characters divided by [IndentWidth]; tabs end the count and
// never add depth. The returned order is a pre-order walk of the outline tree,
// which [Pairs] relies on.
//
// Tokenize only fails in strict mode, on indentation that is not a multiple
// of [IndentWidth].
func Tokenize(text string, opts ...Option) ([]Task, error) {
	o := newOptions(opts)

	var tasks []Task
	for i, line := range strings.Split(text, "\n") {
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)
		if strings.TrimSpace(stripped) == "" {
			continue
		}
		spaces := countIndent(line)
		if o.strictIndent && spaces%IndentWidth != 0 {
			return nil, errors.New(errors.ErrCodeMalformedIndentation,
				"line %d: %q is indented by %d spaces, not a multiple of %d",
				i+1, stripped, spaces, IndentWidth)
		}
		tasks = append(tasks, Task{
			Text:  stripped,
			Depth: spaces / IndentWidth,
			Line:  i + 1,
		})
	}
	return tasks, nil
}

func countIndent(line string) int {
	n := 0
	for n < len(line) && line[n] == ' ' {
		n++
	}
	return n
}

// Extract derives a task's name and done flag from its stripped text.
//
// The task is done when the text begins with [DoneMarker]. The name is the
// text after the first space-delimited word, trimmed. The first word is
// always dropped, whether or not it is a recognised marker:
//
//	Extract("x write tests") // "write tests", true
//	Extract("- write tests") // "write tests", false
//	Extract("write tests")   // "tests", false
func Extract(text string) (name string, done bool) {
	done = len(text) > 0 && text[0] == DoneMarker
	_, rest, found := strings.Cut(text, " ")
	if !found {
		return "", done
	}
	return strings.TrimSpace(rest), done
}

// marker returns the status marker word of a stripped task text.
func marker(text string) string {
	m, _, _ := strings.Cut(text, " ")
	return m
}
