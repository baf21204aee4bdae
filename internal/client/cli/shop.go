package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/liuwf/chainmarket/internal/client/api"
)

// Shop fetches and prints the signed-in merchant's shop profile, refreshing
// the cached copy in the session.
func (a *App) Shop(ctx context.Context) error {
	if !a.sess.IsMerchant() {
		printlnFn("Only merchants have a shop")
		return nil
	}

	shop, err := a.api.MyShop(ctx)
	if err != nil {
		a.log.Error(ctx, "shop profile fetch failed", "error", err)
		printlnFn("Could not fetch shop profile:", err.Error())
		return err
	}
	if err := a.sess.SetShopProfile(ctx, shop); err != nil {
		return err
	}

	if shop == nil {
		printlnFn("No shop yet. Use 'apply' to submit an application.")
		return nil
	}

	printlnFn("Name:", shop.ShopName)
	printlnFn("Status:", shop.ShopStatus)
	if shop.ShopDescription != "" {
		printlnFn("Description:", shop.ShopDescription)
	}
	printlnFn(fmt.Sprintf("Reputation: %d", shop.ReputationScore))
	return nil
}

// Apply prompts the merchant for shop details and submits an application.
// The resulting profile starts in the pending state; Shop shows progress.
func (a *App) Apply(ctx context.Context) error {
	if !a.sess.IsMerchant() {
		printlnFn("Only merchants can apply for a shop")
		return nil
	}

	name, err := getSimpleText(a.reader, "Shop name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := GetMultiline(a.reader, "Shop description", os.Stdout)
	if err != nil {
		return err
	}
	logo, err := getSimpleText(a.reader, "Logo URL (optional)", os.Stdout)
	if err != nil {
		return err
	}

	application := api.ShopApplication{
		ShopName:        name,
		ShopDescription: description,
		ShopLogo:        logo,
	}
	if err := a.api.ApplyShop(ctx, application); err != nil {
		a.log.Error(ctx, "shop application failed", "error", err)
		printlnFn("Application failed:", err.Error())
		return err
	}

	printlnFn("Application submitted, review is pending")
	return nil
}
