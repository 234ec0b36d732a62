package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Stylesheet is the strict form of the dialect: comments and rule sets at the
// top level only, one `name: value;` per declaration.
type Stylesheet struct {
	Pos   lexer.Position
	Items []*Item `@@*`
}

type Item struct {
	Comment *Comment `  @@`
	Ruleset *Ruleset `| @@`
}

type Comment struct {
	Pos  lexer.Position
	Text string `@Comment`
}

type Ruleset struct {
	Pos          lexer.Position
	EndPos       lexer.Position
	Selectors    []string       `@Selector ( ","? @Selector )*`
	Declarations []*Declaration `"{" @@* "}"`
}

type Declaration struct {
	Pos      lexer.Position
	Property string `@Property ":"`
	Value    string `@Value ";"`
}
