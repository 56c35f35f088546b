package replace

// TokenKind classifies a scanned token.
type TokenKind int

const (
	// TokenWellFormed is a token carrying everything its mode requires:
	// @prefix.key@ in prefixed mode, @key@ in unprefixed mode.
	TokenWellFormed TokenKind = iota

	// TokenMissingPrefix is a prefixed-mode token that matched the outer
	// pattern but lacked the required "prefix." segment, e.g. @version@
	// when the prefix is "package".
	TokenMissingPrefix
)

// Token is one placeholder match in source text.
type Token struct {
	Kind   TokenKind
	Raw    string // full matched text, including the @ delimiters
	Prefix string // captured prefix, empty when absent or unprefixed
	Key    string // captured key
	Offset int    // byte offset of the match in the full text
}

// parseToken classifies a single pattern match. The match slice is the
// submatch index pairs from FindAllStringSubmatchIndex: [full, group1,
// group2] pairs in prefixed mode, [full, group1] pairs in unprefixed mode.
func parseToken(text string, match []int, mode Mode) Token {
	tok := Token{
		Raw:    text[match[0]:match[1]],
		Offset: match[0],
	}

	if mode == ModeUnprefixed {
		tok.Kind = TokenWellFormed
		tok.Key = text[match[2]:match[3]]
		return tok
	}

	tok.Key = text[match[4]:match[5]]
	if match[2] < 0 {
		tok.Kind = TokenMissingPrefix
		return tok
	}

	tok.Kind = TokenWellFormed
	tok.Prefix = text[match[2]:match[3]]
	return tok
}
