package view

import (
	"time"

	"github.com/msomdec/youth-portal/internal/flow"
)

// ModalContainerID is the element a screen's identity modal is patched into.
func ModalContainerID(screen flow.Screen) string {
	return "identity-modal-" + string(screen)
}

func flowURL(screen flow.Screen, suffix string) string {
	return "/flow/" + string(screen) + suffix
}

// bindPath names a screen-scoped signal for data-bind.
func bindPath(screen flow.Screen, field string) string {
	return string(screen) + "." + field
}

// areaShown is the data-show expression for the area-specific fields.
func areaShown(screen flow.Screen, rural bool) string {
	if rural {
		return "$" + bindPath(screen, "areatype") + " === 'rural'"
	}
	return "$" + bindPath(screen, "areatype") + " !== 'rural'"
}

func otpValidUntil(snap flow.Snapshot) string {
	if snap.ExpiresAt.IsZero() {
		return ""
	}
	return ", valid until " + snap.ExpiresAt.Format(time.Kitchen)
}

func registerSignals(screen flow.Screen, snap flow.Snapshot) string {
	return signals(map[string]map[string]string{string(screen): {"regmobile": snap.Form.Mobile}})
}

var areaOptions = []option{{"urban", "Urban"}, {"rural", "Rural"}}
