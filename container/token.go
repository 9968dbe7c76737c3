package container

// Token names an injectable service. Tokens are compared by identity, never
// by name: two calls to NewToken with the same name produce two distinct
// tokens. The name is carried for diagnostics only.
type Token struct {
	name string
}

// NewToken allocates a new token. Pure allocation, no side effects.
func NewToken(name string) *Token {
	return &Token{name: name}
}

func (t *Token) String() string {
	return t.name
}
