package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/wifikeeper/internal/client/guard"
	"github.com/dmitrijs2005/wifikeeper/internal/client/models"
)

// Generate collects WiFi network details, creates a credential on the backend
// and reports the stored QR payload.
func (a *App) Generate(ctx context.Context) error {
	if !a.navigate(guard.PathQRGenerator) {
		return nil
	}

	ssid, err := getSimpleText(a.reader, "Enter network name (SSID)", os.Stdout)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf("Enter security type %v", models.SecurityTypes)
	answer, err := getSimpleText(a.reader, prompt, os.Stdout)
	if err != nil {
		return err
	}
	security := models.SecurityType(strings.ToUpper(strings.TrimSpace(answer)))
	if strings.EqualFold(answer, string(models.SecurityNone)) {
		security = models.SecurityNone
	}

	var password string
	if security != models.SecurityNone {
		password, err = getPassword(os.Stdout)
		if err != nil {
			return err
		}
	}

	hidden, err := GetConfirm(a.reader, "Hidden network?", os.Stdout)
	if err != nil {
		return err
	}

	cred, err := a.wifi.Create(ctx, models.CreateRequest{
		SSID:         ssid,
		Password:     password,
		SecurityType: security,
		Hidden:       hidden,
	})
	if err != nil {
		printlnFn("Could not create QR code:", err.Error())
		return err
	}

	printlnFn("Created", cred.ID, "for network", cred.SSID)
	return nil
}
