package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/wifikeeper/internal/client/guard"
	"github.com/dmitrijs2005/wifikeeper/internal/client/services"
	"github.com/dmitrijs2005/wifikeeper/internal/filex"
)

// List prints a short line for each of the current user's stored codes.
func (a *App) List(ctx context.Context) error {
	if !a.navigate(guard.PathMyCodes) {
		return nil
	}

	creds, err := a.wifi.ListMine(ctx)
	if err != nil {
		printlnFn("Could not load codes:", err.Error())
		return err
	}

	if len(creds) == 0 {
		printlnFn("No saved codes yet, use 'generate' to create one")
		return nil
	}

	for _, c := range creds {
		printlnFn(fmt.Sprintf("%s  %-20s %-6s hidden=%v  %s",
			c.ID, c.SSID, c.SecurityType, c.Hidden, c.CreatedAt.Format("2006-01-02 15:04")))
	}
	return nil
}

// Show prints one credential and saves its QR image under ./download/.
func (a *App) Show(ctx context.Context) error {
	if !a.navigate(guard.PathMyCodes) {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter code id to show", os.Stdout)
	if err != nil {
		return err
	}

	cred, err := a.wifi.GetByID(ctx, id)
	if err != nil {
		printlnFn("Could not load code:", err.Error())
		return err
	}

	printlnFn("SSID:", cred.SSID)
	printlnFn("Security:", cred.SecurityType)
	printlnFn("Hidden:", cred.Hidden)
	printlnFn("Created:", cred.CreatedAt.Format("2006-01-02 15:04:05"))

	dir, err := filex.EnsureSubDir("download")
	if err != nil {
		return err
	}

	outputFile := filepath.Join(dir, cred.ID+".txt")
	if err := os.WriteFile(outputFile, []byte(services.ResolveImageURL(cred.QRCodeData)), 0o600); err != nil {
		return err
	}
	printlnFn("QR image saved to:", outputFile)
	return nil
}

// Delete removes one of the current user's codes after confirmation.
func (a *App) Delete(ctx context.Context) error {
	if !a.navigate(guard.PathMyCodes) {
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter code id to delete", os.Stdout)
	if err != nil {
		return err
	}

	ok, err := GetConfirm(a.reader, "Delete "+id+"?", os.Stdout)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.wifi.Delete(ctx, id); err != nil {
		printlnFn("Could not delete:", err.Error())
		return err
	}

	printlnFn("Deleted", id)
	return nil
}
