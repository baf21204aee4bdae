package cli

import (
	"context"
	"fmt"
)

// Status prints the current session state: identity, role and, for
// merchants, the shop profile.
func (a *App) Status(ctx context.Context) error {
	if !a.sess.Connected() {
		printlnFn("Not signed in")
		return nil
	}

	printlnFn("Address:", a.sess.Identity())
	printlnFn("Role:", string(a.sess.Role()))

	if shop := a.sess.ShopProfile(); shop != nil {
		printlnFn(fmt.Sprintf("Shop: %s [%s]", shop.ShopName, shop.ShopStatus))
	}
	return nil
}
