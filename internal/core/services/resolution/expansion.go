package resolution

import (
	"regexp"
	"strings"

	"github.com/anmitsu/go-shlex"
)

// expansionPattern matches an @ marker followed by a maximal identifier run.
var expansionPattern = regexp.MustCompile(`@(\w+)`)

/*
ResolveExpansions replaces every @identifier in template with its value,
looking in local before global. Unknown tokens are left as written, since a
bare @ is legal free text. Replacement values are not re-scanned.
*/
func ResolveExpansions(template string, local, global map[string]string) string {
	return expansionPattern.ReplaceAllStringFunc(template, func(token string) string {
		if value, ok := lookupExpansion(token[1:], local, global); ok {
			return value
		}
		return token
	})
}

/*
ExpandArgs replaces invocation arguments of the exact form @key with the
words of the expansion value, split the way a POSIX shell would split them.
Arguments that are not a known @key are returned unchanged.
*/
func ExpandArgs(args []string, local, global map[string]string) []string {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		key, isToken := strings.CutPrefix(arg, "@")
		if !isToken || key == "" {
			expanded = append(expanded, arg)
			continue
		}
		value, ok := lookupExpansion(key, local, global)
		if !ok {
			expanded = append(expanded, arg)
			continue
		}
		words, err := shlex.Split(value, true)
		if err != nil || len(words) == 0 {
			// Unbalanced quotes: keep the value as a single argument.
			expanded = append(expanded, value)
			continue
		}
		expanded = append(expanded, words...)
	}
	return expanded
}

func lookupExpansion(key string, local, global map[string]string) (string, bool) {
	if value, ok := local[key]; ok {
		return value, true
	}
	value, ok := global[key]
	return value, ok
}
