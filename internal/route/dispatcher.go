package route

import (
	"context"
	"sync"
)

// Page is the page component mounted for a resolution state.
type Page string

const (
	PageLoading  Page = "loading"
	PageListing  Page = "listing"
	PageProfile  Page = "profile"
	PageNotFound Page = "not_found"
)

// PageFor selects the page component for state.
func PageFor(state State) Page {
	switch state {
	case StatePending:
		return PageLoading
	case StateListing:
		return PageListing
	case StateProfile:
		return PageProfile
	default:
		return PageNotFound
	}
}

// ResolveFunc resolves a path. (*Resolver).Resolve satisfies it.
type ResolveFunc func(ctx context.Context, path string) Resolution

// View is what a navigator currently shows.
type View struct {
	Path       string
	Resolution Resolution
	Page       Page
}

// Navigator tracks the view of one mounted dispatcher across navigations.
// Each navigation resets the view to pending and resolves the new path;
// a resolution that finishes after a newer navigation started is dropped.
type Navigator struct {
	resolve ResolveFunc

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	view       View
}

// NewNavigator creates a navigator with an empty not-found view.
func NewNavigator(resolve ResolveFunc) *Navigator {
	return &Navigator{
		resolve: resolve,
		view:    View{Resolution: NotFound, Page: PageNotFound},
	}
}

// Navigate starts resolving path and returns a channel closed once that
// resolution has finished, whether or not its result was applied.
func (n *Navigator) Navigate(ctx context.Context, path string) <-chan struct{} {
	ctx, cancel := context.WithCancel(ctx)

	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
	}

	n.generation++
	generation := n.generation
	n.cancel = cancel
	n.view = View{
		Path:       path,
		Resolution: Resolution{State: StatePending},
		Page:       PageLoading,
	}
	n.mu.Unlock()

	done := make(chan struct{})

	go func() {
		defer close(done)
		defer cancel()

		res := n.resolve(ctx, path)

		n.mu.Lock()
		defer n.mu.Unlock()

		if generation != n.generation {
			return
		}

		n.view = View{Path: path, Resolution: res, Page: PageFor(res.State)}
		n.cancel = nil
	}()

	return done
}

// View returns the current view.
func (n *Navigator) View() View {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.view
}

// Close cancels any in-flight resolution and discards its result.
func (n *Navigator) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.generation++

	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
}
