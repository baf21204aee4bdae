package cli

import (
	"context"
	"os"
)

// getSimpleText and getSignature are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getSignature = GetSignature

// Login walks the user through the wallet sign-in flow: prompt for the
// wallet address, fetch a one-time nonce from the backend, ask for the
// signature produced by the wallet, and exchange it for a session token.
//
// On success the session is populated and mirrored to durable storage, and
// for merchants the shop profile is fetched as well. A failed shop profile
// fetch does not fail the login; the profile is simply left empty.
func (a *App) Login(ctx context.Context) error {
	address, err := getSimpleText(a.reader, "Enter wallet address", os.Stdout)
	if err != nil {
		return err
	}

	nonce, err := a.api.Nonce(ctx, address)
	if err != nil {
		a.log.Error(ctx, "nonce request failed", "error", err)
		printlnFn("Login failed:", err.Error())
		return err
	}
	printlnFn("Sign this nonce with your wallet:", nonce)

	signature, err := getSignature(os.Stdout)
	if err != nil {
		return err
	}

	res, err := a.api.SignIn(ctx, address, signature, nonce)
	if err != nil {
		a.log.Error(ctx, "sign-in failed", "error", err)
		printlnFn("Login failed:", err.Error())
		return err
	}

	if err := a.sess.SetIdentity(ctx, address); err != nil {
		return err
	}
	if err := a.sess.SetCredential(ctx, res.Token); err != nil {
		return err
	}
	if err := a.sess.SetRole(ctx, res.Role); err != nil {
		return err
	}
	a.sess.SetConnected(true)

	if a.sess.IsMerchant() {
		shop, err := a.api.MyShop(ctx)
		if err != nil {
			a.log.Warn(ctx, "could not fetch shop profile", "error", err)
		} else if err := a.sess.SetShopProfile(ctx, shop); err != nil {
			return err
		}
	}

	printlnFn("Signed in as", a.sess.ShortIdentity(), string(res.Role))
	return nil
}

// Logout clears the in-memory session and removes the saved copy from
// durable storage. Logging out an already signed-out session is a no-op.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sess.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Signed out")
	return nil
}
