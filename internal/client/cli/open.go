package cli

import (
	"context"
	"fmt"
)

// Open evaluates the navigation guard for path against the current session
// and reports where the client would end up. It never performs a request;
// the guard works purely on local session state.
func (a *App) Open(ctx context.Context, path string) error {
	d := a.router.Decide(path, a.sess.Snapshot())

	if d.Proceed {
		printlnFn("->", path)
		return nil
	}

	if d.ReturnTo != "" {
		printlnFn(fmt.Sprintf("-> %s (%s, returning to %s after sign-in)", d.Redirect, d.Reason, d.ReturnTo))
	} else {
		printlnFn(fmt.Sprintf("-> %s (%s)", d.Redirect, d.Reason))
	}
	return nil
}
