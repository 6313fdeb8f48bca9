// Package credential supplies the bearer token used for job board
// requests. Callers only ever see a token or its absence.
package credential

import "context"

// DefaultKey is the name the token is stored under
const DefaultKey = "jwt_token"

// Provider returns the current bearer token, or false when there is none.
// An absent token is not an error: the request goes out unauthenticated
// and the remote side rejects it.
type Provider interface {
	Token(ctx context.Context) (string, bool)
}

// Static serves a fixed token. The zero value has no token.
type Static string

func (s Static) Token(context.Context) (string, bool) {
	return string(s), s != ""
}

// Chain asks each provider in order and returns the first token found
type Chain []Provider

func (c Chain) Token(ctx context.Context) (string, bool) {
	for _, p := range c {
		if p == nil {
			continue
		}
		if tok, ok := p.Token(ctx); ok {
			return tok, true
		}
	}
	return "", false
}
