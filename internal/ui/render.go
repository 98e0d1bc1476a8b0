package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wallpaper/internal/domain"
	"wallpaper/internal/imagegen"
	"wallpaper/internal/session"
)

const (
	Title    = "AI Wallpaper Craft"
	Subtitle = "Craft your perfect wallpaper. Just describe your vision and let AI bring it to life."

	maxPanelWidth  = 56
	maxPanelHeight = 22
	// minPanelWidth fits the longest fixed panel line without wrapping.
	minPanelWidth = 44
)

// Form holds the widget output that is not part of the session state.
type Form struct {
	Input   string
	Spinner string
	Width   int
	Notice  string
}

// Render draws the whole screen for s. It has no side effects.
func Render(s session.State, f Form) string {
	sections := []string{
		titleStyle.Render(Title),
		subtitleStyle.Render(Subtitle),
		"",
		labelStyle.Render("Prompt"),
		f.Input,
		"",
		renderDevices(s.Device),
		"",
		renderButton(s),
		"",
		renderDisplay(s, f),
	}
	if f.Notice != "" {
		sections = append(sections, noticeStyle.Render(f.Notice))
	}
	sections = append(sections, "", helpStyle.Render(helpLine(s)))

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if f.Width > 0 {
		out = lipgloss.NewStyle().MaxWidth(f.Width).Render(out)
	}
	return out
}

// ButtonLabel is the text of the generate button for s.
func ButtonLabel(s session.State) string {
	if s.IsLoading {
		return "Generating..."
	}
	return "Generate"
}

func renderButton(s session.State) string {
	style := buttonStyle
	if s.IsLoading || strings.TrimSpace(s.Prompt) == "" {
		style = disabledButtonStyle
	}
	return style.Render(ButtonLabel(s))
}

func renderDevices(active domain.DeviceProfile) string {
	items := make([]string, 0, 3)
	for _, d := range domain.DeviceProfiles() {
		style := deviceStyle
		if d == active {
			style = activeDeviceStyle
		}
		items = append(items, style.Render(DeviceLabel(d)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, items...)
}

// renderDisplay draws exactly one of the four display states.
func renderDisplay(s session.State, f Form) string {
	w, h := panelSize(domain.AspectRatioFor(s.Device))
	switch s.Phase() {
	case session.PhaseLoading:
		body := strings.TrimSpace(f.Spinner + " Crafting your wallpaper...")
		return panelStyle.Width(w).Height(h).Render(body)
	case session.PhaseError:
		body := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Generation Failed"),
			s.Error,
		)
		return errorPanelStyle.Width(w).Render(body)
	case session.PhaseResult:
		return resultPanelStyle.Width(w).Height(h).Render(resultSummary(s.Image))
	default:
		body := lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Bold(true).Render("Your wallpaper will appear here"),
			"Enter a prompt above and click generate!",
		)
		return placeholderPanelStyle.Width(w).Height(h).Render(body)
	}
}

func resultSummary(ref string) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Your wallpaper is ready")}
	if mime, data, err := imagegen.DecodeDataURI(ref); err == nil {
		lines = append(lines, fmt.Sprintf("%s, %s", mime, humanBytes(len(data))))
	}
	lines = append(lines, "", "Press ctrl+s to download "+DownloadFilename)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// panelSize approximates the ratio in terminal cells, which are about twice
// as tall as they are wide. Narrow ratios keep minPanelWidth and show their
// shape through the height alone.
func panelSize(ratio domain.AspectRatio) (width, height int) {
	var rw, rh int
	switch ratio {
	case domain.AspectRatio4x3:
		rw, rh = 4, 3
	case domain.AspectRatio9x16:
		rw, rh = 9, 16
	default:
		rw, rh = 16, 9
	}
	width = maxPanelWidth
	height = width * rh / rw / 2
	if height > maxPanelHeight {
		height = maxPanelHeight
		width = max(height*2*rw/rh, minPanelWidth)
	}
	return width, height
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

func helpLine(s session.State) string {
	keys := []string{"enter generate", "tab device", "ctrl+n inspire"}
	if s.Phase() == session.PhaseResult {
		keys = append(keys, "ctrl+s download")
	}
	keys = append(keys, "esc quit")
	return strings.Join(keys, " • ")
}
