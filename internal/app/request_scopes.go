package app

import (
	"context"
	"errors"
)

// One scope per request track. Replacing a scope cancels whatever was in
// flight on that track, so at most one list and one search request exist at a
// time while the tracks stay independent of each other.
const (
	requestScopeList   = "list"
	requestScopeSearch = "search"
)

type requestScope struct {
	ctx    context.Context
	cancel context.CancelFunc
}

func (m *Model) replaceRequestScope(name string) context.Context {
	m.cancelRequestScope(name)
	if m.requestScopes == nil {
		m.requestScopes = map[string]requestScope{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.requestScopes[name] = requestScope{ctx: ctx, cancel: cancel}
	return ctx
}

func (m *Model) cancelRequestScope(name string) {
	scope, ok := m.requestScopes[name]
	if !ok {
		return
	}
	if scope.cancel != nil {
		scope.cancel()
	}
	delete(m.requestScopes, name)
}

func (m *Model) hasRequestScope(name string) bool {
	_, ok := m.requestScopes[name]
	return ok
}

func isCanceledRequestError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, context.Canceled)
}
