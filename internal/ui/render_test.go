package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"wallpaper/internal/domain"
	"wallpaper/internal/imagegen"
	"wallpaper/internal/session"
)

func TestRenderDisplayStates(t *testing.T) {
	image := imagegen.EncodeDataURI("image/jpeg", []byte(strings.Repeat("x", 2048)))

	phases := []struct {
		name    string
		state   func(d domain.DeviceProfile) session.State
		want    []string
		notWant []string
	}{
		{
			name:    "idle",
			state:   func(d domain.DeviceProfile) session.State { return session.State{Device: d} },
			want:    []string{Title, "Your wallpaper will appear here", "Enter a prompt above and click generate!", "Generate"},
			notWant: []string{"Generation Failed", "Generating...", "download ai-wallpaper.jpeg"},
		},
		{
			name: "loading",
			state: func(d domain.DeviceProfile) session.State {
				return session.State{Prompt: "fog", Device: d, IsLoading: true}
			},
			want:    []string{"Generating...", "Crafting your wallpaper..."},
			notWant: []string{"Your wallpaper will appear here", "Generation Failed"},
		},
		{
			name: "error",
			state: func(d domain.DeviceProfile) session.State {
				return session.State{Prompt: "fog", Device: d, Error: "Resource has been exhausted"}
			},
			want:    []string{"Generation Failed", "Resource has been exhausted"},
			notWant: []string{"Your wallpaper will appear here", "Generating..."},
		},
		{
			name: "result",
			state: func(d domain.DeviceProfile) session.State {
				return session.State{Prompt: "fog", Device: d, Image: image}
			},
			want:    []string{"Your wallpaper is ready", "image/jpeg, 2.0 KB", "Press ctrl+s to download ai-wallpaper.jpeg", "ctrl+s download"},
			notWant: []string{"Generation Failed", "Your wallpaper will appear here"},
		},
	}
	for _, device := range domain.DeviceProfiles() {
		for _, phase := range phases {
			t.Run(string(device)+"/"+phase.name, func(t *testing.T) {
				out := Render(phase.state(device), Form{Input: "> fog"})
				for _, s := range phase.want {
					assert.Contains(t, out, s)
				}
				for _, s := range phase.notWant {
					assert.NotContains(t, out, s)
				}
			})
		}
	}
}

func TestPanelLinesFitNarrowestPanel(t *testing.T) {
	narrowest := maxPanelWidth
	for _, d := range domain.DeviceProfiles() {
		w, _ := panelSize(domain.AspectRatioFor(d))
		narrowest = min(narrowest, w)
	}
	for _, line := range []string{
		"Your wallpaper will appear here",
		"Enter a prompt above and click generate!",
		"Crafting your wallpaper...",
		"Generation Failed",
		"Your wallpaper is ready",
		"Press ctrl+s to download " + DownloadFilename,
	} {
		assert.LessOrEqual(t, lipgloss.Width(line), narrowest, line)
	}
}

func TestRenderIsPure(t *testing.T) {
	s := session.State{Prompt: "aurora", Device: domain.DeviceTablet}
	f := Form{Input: "> aurora", Notice: "Saved out/ai-wallpaper.jpeg"}

	first := Render(s, f)
	assert.Equal(t, first, Render(s, f))
	assert.Contains(t, first, "Saved out/ai-wallpaper.jpeg")
}

func TestRenderDeviceLabels(t *testing.T) {
	out := Render(session.NewState(), Form{})
	for _, label := range []string{"Desktop (16:9)", "Tablet (4:3)", "Phone (9:16)"} {
		assert.Contains(t, out, label)
	}
}

func TestButtonLabel(t *testing.T) {
	assert.Equal(t, "Generate", ButtonLabel(session.State{}))
	assert.Equal(t, "Generating...", ButtonLabel(session.State{IsLoading: true}))
}

func TestPanelSizeFollowsAspectRatio(t *testing.T) {
	dw, dh := panelSize(domain.AspectRatio16x9)
	tw, th := panelSize(domain.AspectRatio4x3)
	pw, ph := panelSize(domain.AspectRatio9x16)

	assert.Equal(t, [2]int{maxPanelWidth, 15}, [2]int{dw, dh})
	assert.Equal(t, [2]int{maxPanelWidth, 21}, [2]int{tw, th})
	assert.Equal(t, [2]int{minPanelWidth, maxPanelHeight}, [2]int{pw, ph})

	// width over height keeps the ratio order even where the width is clamped
	assert.Greater(t, float64(dw)/float64(dh), float64(tw)/float64(th))
	assert.Greater(t, float64(tw)/float64(th), float64(pw)/float64(ph))
}
