// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/zhubert/navigator/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "Navigator"

// notifier is the function used to deliver notifications.
var notifier = beeep.Notify

// SetNotifier replaces the delivery function. Used by tests.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores beeep delivery.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Use empty string for icon - beeep handles platform defaults
	err := notifier(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// SummaryReady announces a finished summary.
func SummaryReady() error {
	return Send(AppName, "Summary is ready")
}

// ThemeApplied announces a generated theme.
func ThemeApplied() error {
	return Send(AppName, "New theme applied")
}
