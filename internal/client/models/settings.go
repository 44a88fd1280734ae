package models

// Store keys of the settings flags.
const (
	KeyDarkMode             = "darkMode"
	KeyNotificationsEnabled = "notificationsEnabled"
)

type Settings struct {
	DarkMode             bool
	NotificationsEnabled bool
}

// DefaultSettings is used for every flag that was never stored.
func DefaultSettings() Settings {
	return Settings{DarkMode: false, NotificationsEnabled: true}
}

// SettingsPatch changes only the non-nil flags.
type SettingsPatch struct {
	DarkMode             *bool
	NotificationsEnabled *bool
}

func (p SettingsPatch) Empty() bool {
	return p.DarkMode == nil && p.NotificationsEnabled == nil
}

// Apply returns s with the patch applied.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.DarkMode != nil {
		s.DarkMode = *p.DarkMode
	}
	if p.NotificationsEnabled != nil {
		s.NotificationsEnabled = *p.NotificationsEnabled
	}
	return s
}
