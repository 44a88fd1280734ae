package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/carmarket/internal/client/models"
)

const msgNotificationsOn = "You will receive notifications from the app."

func (a *App) Settings(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	s, err := a.settings.Load(opCtx)
	if err != nil {
		return err
	}
	a.printSettings(s)
	return nil
}

// DarkMode sets the flag from "on"/"off" or toggles it without an argument.
func (a *App) DarkMode(ctx context.Context, args []string) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	current, err := a.settings.Load(opCtx)
	if err != nil {
		return err
	}
	v, err := switchValue(args, current.DarkMode)
	if err != nil {
		return err
	}

	s, err := a.settings.Update(opCtx, models.SettingsPatch{DarkMode: &v})
	if err != nil {
		return err
	}
	a.printSettings(s)
	return nil
}

// Notifications sets the flag from "on"/"off" or toggles it without an
// argument.
func (a *App) Notifications(ctx context.Context, args []string) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	current, err := a.settings.Load(opCtx)
	if err != nil {
		return err
	}
	v, err := switchValue(args, current.NotificationsEnabled)
	if err != nil {
		return err
	}

	s, err := a.settings.Update(opCtx, models.SettingsPatch{NotificationsEnabled: &v})
	if err != nil {
		return err
	}
	if v && !current.NotificationsEnabled {
		a.println("Notifications Enabled")
		a.println(msgNotificationsOn)
	}
	a.printSettings(s)
	return nil
}

func (a *App) printSettings(s models.Settings) {
	a.printf("Dark mode:     %s\n", onOff(s.DarkMode))
	a.printf("Notifications: %s\n", onOff(s.NotificationsEnabled))
}

func switchValue(args []string, current bool) (bool, error) {
	if len(args) == 0 {
		return !current, nil
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	default:
		return false, models.NewValidationError("value", "Use on or off.")
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
