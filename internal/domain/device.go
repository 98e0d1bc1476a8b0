package domain

import (
	"fmt"
	"strings"
)

// DeviceProfile is the screen category a wallpaper is generated for.
type DeviceProfile string

const (
	DeviceDesktop DeviceProfile = "desktop"
	DeviceTablet  DeviceProfile = "tablet"
	DevicePhone   DeviceProfile = "phone"
)

// DefaultDevice is selected when a session starts.
const DefaultDevice = DeviceDesktop

// AspectRatio is the width:height ratio requested from the image service.
type AspectRatio string

const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio4x3  AspectRatio = "4:3"
	AspectRatio9x16 AspectRatio = "9:16"
)

var deviceOrder = []DeviceProfile{DeviceDesktop, DeviceTablet, DevicePhone}

// DeviceProfiles lists every device profile in display order.
func DeviceProfiles() []DeviceProfile {
	out := make([]DeviceProfile, len(deviceOrder))
	copy(out, deviceOrder)
	return out
}

// AspectRatioFor maps a device profile to its aspect ratio. It panics on a
// value outside the closed set.
func AspectRatioFor(d DeviceProfile) AspectRatio {
	switch d {
	case DeviceDesktop:
		return AspectRatio16x9
	case DeviceTablet:
		return AspectRatio4x3
	case DevicePhone:
		return AspectRatio9x16
	default:
		panic(fmt.Sprintf("domain: unknown device profile %q", string(d)))
	}
}

// Valid reports whether d belongs to the closed device set.
func (d DeviceProfile) Valid() bool {
	switch d {
	case DeviceDesktop, DeviceTablet, DevicePhone:
		return true
	}
	return false
}

// Next returns the following device in display order, wrapping around.
func (d DeviceProfile) Next() DeviceProfile {
	for i, candidate := range deviceOrder {
		if candidate == d {
			return deviceOrder[(i+1)%len(deviceOrder)]
		}
	}
	return DefaultDevice
}

// Valid reports whether r belongs to the closed aspect ratio set.
func (r AspectRatio) Valid() bool {
	switch r {
	case AspectRatio16x9, AspectRatio4x3, AspectRatio9x16:
		return true
	}
	return false
}

// ParseDeviceProfile normalizes free-form input into a device profile.
func ParseDeviceProfile(s string) (DeviceProfile, bool) {
	d := DeviceProfile(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", false
	}
	return d, true
}

// ParseAspectRatio accepts only the exact wire values.
func ParseAspectRatio(s string) (AspectRatio, bool) {
	r := AspectRatio(strings.TrimSpace(s))
	if !r.Valid() {
		return "", false
	}
	return r, true
}
