package commandanalysis

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	placeholderRegex = regexp.MustCompile(`\{(\d*)\}`)
	expansionRegex   = regexp.MustCompile(`@(\w+)`)
	assignmentRegex  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*=`)
)

/*
determineComplexity reports whether the template relies on shell operators
(pipes, lists, redirections or subshells). Such commands run fine through
the shell but cannot be checked word by word.
*/
func (a *BasicAnalyzer) determineComplexity(template string) bool {
	return strings.ContainsAny(template, "|&;<>()`")
}

// skipAssignments drops leading VAR=value words.
func skipAssignments(words []string) []string {
	for len(words) > 0 && assignmentRegex.MatchString(words[0]) {
		words = words[1:]
	}
	return words
}

// isComputed reports whether a word is only known after substitution.
func isComputed(word string) bool {
	return placeholderRegex.MatchString(word) || expansionRegex.MatchString(word) || strings.ContainsAny(word, "$`")
}

// placeholders returns the distinct indices referenced by {n} and {} and the
// number of arguments needed to bind them all.
func placeholders(template string) ([]int, int) {
	seen := map[int]bool{}
	indices := []int{}
	for _, m := range placeholderRegex.FindAllStringSubmatch(template, -1) {
		index := 0
		if m[1] != "" {
			n, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			index = n
		}
		if !seen[index] {
			seen[index] = true
			indices = append(indices, index)
		}
	}
	sort.Ints(indices)

	required := 0
	if len(indices) > 0 {
		required = indices[len(indices)-1] + 1
	}
	return indices, required
}

func expansionTokens(template string) []string {
	seen := map[string]bool{}
	tokens := []string{}
	for _, m := range expansionRegex.FindAllStringSubmatch(template, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			tokens = append(tokens, m[1])
		}
	}
	return tokens
}
