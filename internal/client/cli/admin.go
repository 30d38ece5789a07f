package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/wifikeeper/internal/client/guard"
)

// Admin lists every stored credential together with its owner's email.
// The route guard sends non-admins back to the dashboard before any request
// is made.
func (a *App) Admin(ctx context.Context) error {
	if !a.navigate(guard.PathAdminCodes) {
		return nil
	}

	creds, err := a.wifi.ListAll(ctx)
	if err != nil {
		printlnFn("Could not load credentials:", err.Error())
		return err
	}

	for _, c := range creds {
		printlnFn(fmt.Sprintf("%s  %-25s %-20s %-6s %s",
			c.ID, c.OwnerEmail, c.SSID, c.SecurityType, c.CreatedAt.Format("2006-01-02 15:04")))
	}
	printlnFn(len(creds), "credentials total")
	return nil
}
