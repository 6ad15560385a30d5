// Package completion is the boundary to the hosted text-completion service.
package completion

import (
	"context"
	"fmt"
)

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type Message struct {
	Role    Role
	Content string
}

func System(content string) Message { return Message{Role: RoleSystem, Content: content} }

func User(content string) Message { return Message{Role: RoleUser, Content: content} }

// Gateway sends a role-tagged conversation and returns the raw completion text.
// Implementations do not retry; the caller decides what to do with a failure.
type Gateway interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// UpstreamError reports a provider failure: a non-success status or a
// response envelope without usable content.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s error: status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s error: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s error: %s", e.Provider, e.Body)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
