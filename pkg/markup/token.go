package markup

// TokenKind distinguishes the three token shapes.
type TokenKind int

const (
	// TextToken is a run of plain text.
	TextToken TokenKind = iota
	// OpenToken is <chain>.
	OpenToken
	// CloseToken is </hint> or </>.
	CloseToken
)

// String returns the string representation of the kind
func (k TokenKind) String() string {
	switch k {
	case TextToken:
		return "text"
	case OpenToken:
		return "open"
	case CloseToken:
		return "close"
	default:
		return "unknown"
	}
}

// Token is one unit of tokenized markup. Value is the text content, the
// directive chain of an open tag, or the (possibly empty) name hint of a
// close tag. Raw is the exact source text.
type Token struct {
	Kind  TokenKind
	Value string
	Raw   string
}
