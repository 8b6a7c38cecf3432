package wechat

import (
	"fmt"
	"time"

	"golang.org/x/oauth2"
)

// AccessToken is the canonical token produced by a successful exchange.
// The standard OAuth2 fields are promoted to typed fields; every other key
// the provider returned lives in the extension mapping and is also
// reachable through Extra, so WeChat-specific fields such as openid and
// unionid can be read without prior knowledge of the provider's schema.
//
// An AccessToken is immutable once built and safe for concurrent reads.
type AccessToken struct {
	// AccessToken is the credential used to access protected resources.
	AccessToken string

	// TokenType is the token type, when the provider reports one.
	TokenType string

	// ExpiresIn is the token lifetime in seconds. WeChat encodes this
	// value sometimes as a JSON number and sometimes as a string; both
	// are accepted.
	ExpiresIn int64

	// ExpiresAt is the absolute expiry time, computed from ExpiresIn at
	// normalization. Zero when the provider reported no lifetime.
	ExpiresAt time.Time

	// RefreshToken is the refresh credential. It is carried verbatim;
	// this package implements no refresh flow.
	RefreshToken string

	// Scope is the granted scope.
	Scope string

	extra map[string]any
	raw   map[string]any
}

// Extra returns the value of an arbitrary field from the provider
// response, standard or extension, or nil when absent. When an extension
// key collides with a standard field name the provider's raw value is
// returned, matching the last-merge-wins rule.
func (t *AccessToken) Extra(key string) any {
	if t.raw == nil {
		return nil
	}
	return t.raw[key]
}

// Extensions returns a copy of the extension mapping: every provider field
// beyond the standard OAuth2 token fields.
func (t *AccessToken) Extensions() map[string]any {
	if t.extra == nil {
		return nil
	}
	out := make(map[string]any, len(t.extra))
	for k, v := range t.extra {
		out[k] = v
	}
	return out
}

// OpenID returns WeChat's per-application user identifier, or "".
func (t *AccessToken) OpenID() string {
	s, _ := t.Extra("openid").(string)
	return s
}

// UnionID returns WeChat's cross-application user identifier, or "".
// It is only present when the application is bound to an open platform
// account.
func (t *AccessToken) UnionID() string {
	s, _ := t.Extra("unionid").(string)
	return s
}

// Valid reports whether the token is usable: non-empty and not expired.
func (t *AccessToken) Valid() bool {
	return t != nil && t.AccessToken != "" && !t.expired(time.Now())
}

func (t *AccessToken) expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !t.ExpiresAt.After(now)
}

// OAuth2Token converts to a standard *oauth2.Token. Extension fields are
// carried through and remain readable via the oauth2.Token Extra method.
func (t *AccessToken) OAuth2Token() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		TokenType:    t.TokenType,
		RefreshToken: t.RefreshToken,
		Expiry:       t.ExpiresAt,
	}
	if t.raw != nil {
		tok = tok.WithExtra(t.raw)
	}
	return tok
}

// String returns a sanitized representation with credential values masked.
func (t *AccessToken) String() string {
	return fmt.Sprintf("AccessToken{AccessToken:%q, TokenType:%q, ExpiresIn:%d, Scope:%q, OpenID:%q}",
		maskValue(t.AccessToken), t.TokenType, t.ExpiresIn, t.Scope, t.OpenID())
}
