package token

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string      // Raw source text of the token
	Literal interface{} // Parsed value (string for idents, int64/float64 for numbers)
	Line    int
	Column  int
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"
	NEWLINE = "NEWLINE"

	// Identifiers and literals
	IDENT_LOWER = "IDENT_LOWER" // atoms, module and function names: math, incr
	IDENT_UPPER = "IDENT_UPPER" // variables: X, Total
	UNDERSCORE  = "UNDERSCORE"  // the placeholder marker
	INT         = "INT"
	FLOAT       = "FLOAT"
	STRING      = "STRING"

	// Operators
	ASSIGN   = "="
	PLUS     = "+"
	MINUS    = "-"
	ASTERISK = "*"
	SLASH    = "/"
	EQ       = "=="
	NOT_EQ   = "!="
	LT       = "<"
	GT       = ">"
	LTE      = "<="
	GTE      = ">="
	BANG     = "!"

	// Delimiters
	COMMA    = ","
	COLON    = ":"
	LPAREN   = "("
	RPAREN   = ")"
	LBRACKET = "["
	RBRACKET = "]"
	LBRACE   = "{"
	RBRACE   = "}"

	// Keywords
	FUN   = "FUN"
	TRUE  = "TRUE"
	FALSE = "FALSE"
	NIL   = "NIL"
)

var keywords = map[string]TokenType{
	"fun":   FUN,
	"true":  TRUE,
	"false": FALSE,
	"nil":   NIL,
}

// LookupIdent returns the keyword type for an identifier, or the
// identifier type matching its capitalization. A leading underscore marks
// an ignored variable (_Acc), never an atom; the bare placeholder _ is
// lexed as its own token and never reaches here.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if ident[0] == '_' || (ident[0] >= 'A' && ident[0] <= 'Z') {
		return IDENT_UPPER
	}
	return IDENT_LOWER
}
