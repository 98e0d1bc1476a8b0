package ui

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallpaper/internal/domain"
	"wallpaper/internal/imagegen"
	"wallpaper/internal/session"
)

type fakeSession struct {
	state     session.State
	generates int
}

func (f *fakeSession) State() session.State { return f.state }

func (f *fakeSession) SetPrompt(prompt string) { f.state.Prompt = prompt }

func (f *fakeSession) SelectDevice(d domain.DeviceProfile) { f.state.Device = d }

func (f *fakeSession) Generate(ctx context.Context) <-chan struct{} {
	if f.state.IsLoading || f.state.Prompt == "" {
		return nil
	}
	f.generates++
	f.state.IsLoading = true
	f.state.Error, f.state.Image = "", ""
	return make(chan struct{})
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModelTypingUpdatesPrompt(t *testing.T) {
	s := &fakeSession{state: session.NewState()}
	m := NewModel(context.Background(), s, Options{})

	m = typeText(t, m, "mountains at dusk")

	assert.Equal(t, "mountains at dusk", s.state.Prompt)
	assert.Contains(t, m.View(), "mountains at dusk")
}

func TestModelEnterGenerates(t *testing.T) {
	s := &fakeSession{state: session.NewState()}
	m := NewModel(context.Background(), s, Options{})

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd, "blank prompt must not start a request")
	assert.Zero(t, s.generates)

	m = typeText(t, m, "fog")
	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, s.generates)
	assert.Contains(t, m.View(), "Generating...")

	_, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, s.generates)
}

func TestModelTabCyclesDevices(t *testing.T) {
	s := &fakeSession{state: session.NewState()}
	m := NewModel(context.Background(), s, Options{})

	var seen []domain.DeviceProfile
	for range 3 {
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		seen = append(seen, s.state.Device)
	}
	assert.Equal(t, []domain.DeviceProfile{domain.DeviceTablet, domain.DevicePhone, domain.DeviceDesktop}, seen)
}

func TestModelInspirationFillsPrompt(t *testing.T) {
	s := &fakeSession{state: session.NewState()}
	m := NewModel(context.Background(), s, Options{})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, InspirationPrompts[0], s.state.Prompt)
	_, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlN})
	assert.Equal(t, InspirationPrompts[1], s.state.Prompt)
}

func TestModelDownload(t *testing.T) {
	dir := t.TempDir()
	s := &fakeSession{state: session.NewState()}
	m := NewModel(context.Background(), s, Options{OutDir: dir})

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Contains(t, m.View(), "Nothing to download yet.")

	s.state.Image = imagegen.EncodeDataURI("image/jpeg", []byte("jpeg"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})

	path := filepath.Join(dir, DownloadFilename)
	assert.Contains(t, m.View(), "Saved "+path)
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(got))
}

func TestModelQuits(t *testing.T) {
	m := NewModel(context.Background(), &fakeSession{state: session.NewState()}, Options{})
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		_, cmd := press(t, m, tea.KeyMsg{Type: key})
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func TestNotifierDeliversStateMsg(t *testing.T) {
	out := make(chanSender, 1)
	Notifier(out)(session.State{Prompt: "aurora"})

	select {
	case msg := <-out:
		assert.Equal(t, StateMsg{State: session.State{Prompt: "aurora"}}, msg)
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}
}

func TestModelWithController(t *testing.T) {
	gen := generatorFunc(func(ctx context.Context, prompt string, ratio domain.AspectRatio) (string, error) {
		return imagegen.EncodeDataURI("image/jpeg", []byte(prompt+"@"+string(ratio))), nil
	})
	ctrl := session.NewController(gen, nil)
	m := NewModel(context.Background(), ctrl, Options{})

	m = typeText(t, m, "mountains at dusk")
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, domain.DevicePhone, ctrl.State().Device)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Eventually(t, func() bool { return ctrl.State().Phase() == session.PhaseResult }, 2*time.Second, 10*time.Millisecond)

	_, data, err := imagegen.DecodeDataURI(ctrl.State().Image)
	require.NoError(t, err)
	assert.Equal(t, "mountains at dusk@9:16", string(data))
	assert.Contains(t, m.View(), "Your wallpaper is ready")
}

type generatorFunc func(ctx context.Context, prompt string, ratio domain.AspectRatio) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string, ratio domain.AspectRatio) (string, error) {
	return f(ctx, prompt, ratio)
}
