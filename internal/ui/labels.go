package ui

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"wallpaper/internal/domain"
)

// DeviceLabel is the display name of a device, e.g. "Phone (9:16)".
func DeviceLabel(d domain.DeviceProfile) string {
	return cases.Title(language.Und).String(string(d)) + " (" + string(domain.AspectRatioFor(d)) + ")"
}

// InspirationPrompts are offered to users who do not know where to start.
var InspirationPrompts = []string{
	"A serene Japanese garden with cherry blossoms under a full moon",
	"Minimalist mountain landscape with pastel sunset colors",
	"Futuristic neon cityscape with flying cars and holographic displays",
	"Abstract geometric patterns in vibrant blues and purples",
	"A majestic wolf howling at a galaxy-filled sky",
	"Cozy enchanted forest library with glowing mushrooms",
}
