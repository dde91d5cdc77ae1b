package vcs

import (
	"context"
	"fmt"
)

// Select resolves the active backend. An explicit preference must be
// available; otherwise jj wins over git.
func Select(avail Availability, explicit Kind) (Kind, error) {
	if explicit != KindNone {
		if !avail.Has(explicit) {
			return KindNone, unavailable(explicit)
		}
		return explicit, nil
	}

	switch {
	case avail.JJ:
		return KindJJ, nil
	case avail.Git:
		return KindGit, nil
	default:
		return KindNone, ErrNoRepository
	}
}

// Detect probes the environment, selects a backend and returns its adapter.
func Detect(ctx context.Context, tools Tools, explicit Kind) (Backend, error) {
	kind, err := Select(Probe(ctx, tools), explicit)
	if err != nil {
		return nil, err
	}
	return New(kind, tools)
}

// New returns the adapter for kind.
func New(kind Kind, tools Tools) (Backend, error) {
	switch kind {
	case KindJJ:
		return NewJJ(tools.JJ), nil
	case KindGit:
		return NewGit(tools.Git), nil
	default:
		return nil, fmt.Errorf("no adapter for backend %s", kind)
	}
}
