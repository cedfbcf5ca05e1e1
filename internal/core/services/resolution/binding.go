package resolution

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// placeholderPattern matches {n} and the bare {} form.
var placeholderPattern = regexp.MustCompile(`\{(\d*)\}`)

/*
BindParameters replaces each {n} in template with args[n], and {} with
args[0]. Any other brace content is literal text. It fails with a
*BindError when a placeholder points past the end of args.
*/
func BindParameters(template string, args []string) (string, error) {
	bound, _, err := bindParameters(template, args, verbatim)
	return bound, err
}

/*
BindShellParameters is BindParameters for text that will be run by
"sh -c": every argument is escaped for the quoting context its placeholder
sits in, so it reaches the program as part of a single word.
*/
func BindShellParameters(template string, args []string) (string, error) {
	bound, _, err := bindParameters(template, args, shellEscape)
	return bound, err
}

// escapeFunc renders one argument for the quoting context it is inserted in.
type escapeFunc func(arg string, ctx quoteContext) string

func verbatim(arg string, _ quoteContext) string { return arg }

func shellEscape(arg string, ctx quoteContext) string {
	switch ctx {
	case singleQuoted:
		return strings.ReplaceAll(arg, "'", `'\''`)
	case doubleQuoted:
		return doubleQuoteEscaper.Replace(arg)
	default:
		return quoteArg(arg)
	}
}

var doubleQuoteEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")

// bindParameters does the binding and also reports which arguments were consumed.
func bindParameters(template string, args []string, escape escapeFunc) (string, []bool, error) {
	used := make([]bool, len(args))
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, used, nil
	}

	var b strings.Builder
	var scan quoteScanner
	last := 0
	for _, m := range matches {
		literal := template[last:m[0]]
		b.WriteString(literal)
		scan.advance(literal)
		placeholder := template[m[0]:m[1]]

		index := 0
		if digits := template[m[2]:m[3]]; digits != "" {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return "", nil, &BindError{Placeholder: placeholder, Index: -1, Available: len(args)}
			}
			index = n
		}
		if index >= len(args) {
			return "", nil, &BindError{Placeholder: placeholder, Index: index, Available: len(args)}
		}

		b.WriteString(escape(args[index], scan.context()))
		used[index] = true
		last = m[1]
	}
	b.WriteString(template[last:])
	return b.String(), used, nil
}

type quoteContext int

const (
	unquoted quoteContext = iota
	singleQuoted
	doubleQuoted
)

// quoteScanner tracks POSIX shell quoting across consecutive pieces of text.
type quoteScanner struct {
	ctx     quoteContext
	escaped bool
}

func (q *quoteScanner) advance(text string) {
	for _, r := range text {
		switch {
		case q.escaped:
			q.escaped = false
		case q.ctx == singleQuoted:
			if r == '\'' {
				q.ctx = unquoted
			}
		case r == '\\':
			q.escaped = true
		case q.ctx == doubleQuoted:
			if r == '"' {
				q.ctx = unquoted
			}
		case r == '\'':
			q.ctx = singleQuoted
		case r == '"':
			q.ctx = doubleQuoted
		}
	}
}

// context reports the quoting at the current position. A pending backslash
// is taken to apply to the inserted text.
func (q *quoteScanner) context() quoteContext {
	q.escaped = false
	return q.ctx
}

// appendUnused appends the arguments not marked used, shell-quoted.
func appendUnused(command string, args []string, used []bool) string {
	var b strings.Builder
	b.WriteString(command)
	for i, arg := range args {
		if used[i] {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(quoteArg(arg))
	}
	return b.String()
}

// quoteArg single-quotes arg unless it is made only of shell-inert characters.
func quoteArg(arg string) string {
	if arg != "" && strings.IndexFunc(arg, needsQuoting) < 0 {
		return arg
	}
	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

func needsQuoting(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return false
	}
	return !strings.ContainsRune("-_./=:,@%+", r)
}
