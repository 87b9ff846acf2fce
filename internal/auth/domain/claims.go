// Package domain holds the authentication types shared by the verifier and the
// HTTP gate.
package domain

import "time"

// Claims is the decoded payload of a verified bearer token.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
	Raw       map[string]any
}

// CallerKey identifies the caller for per-caller limits. Empty when the token has no
// subject.
func (c *Claims) CallerKey() string {
	if c == nil || c.Subject == "" {
		return ""
	}
	return "sub:" + c.Subject
}
