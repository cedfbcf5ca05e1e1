package command

// AnalyzedCommand holds the results of analyzing a command template.
type AnalyzedCommand struct {
	Original     string
	CommandName  string   // the program the shell would run, empty if it is computed
	Args         []string // remaining words, quotes stripped
	IsComplex    bool     // uses shell operators such as pipes or redirections
	Unbalanced   bool     // quotes are not closed
	Placeholders []int    // parameter indices referenced, ascending, {} counted as 0
	RequiredArgs int      // arguments needed to bind every placeholder
	Expansions   []string // @tokens present, in order of first appearance
}
