package controller

import (
	"fmt"
	"math"

	"brandos/internal/session"
	"brandos/internal/tui/components"
	"brandos/internal/tui/model"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// handleKeyMsgGlobal turns key presses into session events and overlay
// toggles.
func handleKeyMsgGlobal(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		m.CurrentAppMode = model.ModeQuitting
		m.QuitApp = true
		return m, tea.Quit
	}

	// --- Overlay-specific key handling --------------------------------------
	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		switch {
		case key.Matches(keyMsg, m.Keys.ToggleLog), key.Matches(keyMsg, m.Keys.Back):
			m.CurrentAppMode = model.ModeDashboard
			return m, nil
		default:
			var vpCmd tea.Cmd
			m.LogViewport, vpCmd = m.LogViewport.Update(keyMsg)
			return m, vpCmd
		}
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Help) || key.Matches(keyMsg, m.Keys.Back) {
			m.CurrentAppMode = model.ModeDashboard
		}
		return m, nil
	}

	sess := m.Session
	reg := m.Registry()

	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		m.CurrentAppMode = model.ModeHelpOverlay
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleLog):
		m.CurrentAppMode = model.ModeLogOverlay
		if m.ActivityLogDirty {
			refreshLogViewport(m)
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDark):
		isDark := !lipgloss.HasDarkBackground()
		lipgloss.SetHasDarkBackground(isDark)
		m.ColorMode = fmt.Sprintf("%s (Dark: %v)", lipgloss.ColorProfile().Name(), isDark)
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleDebug):
		m.DebugMode = !m.DebugMode
		return m, nil

	case key.Matches(keyMsg, m.Keys.Up):
		if sess.Mode() == session.AgencyOverview {
			m.Cursor = wrap(m.Cursor-1, reg.Len())
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.Down):
		if sess.Mode() == session.AgencyOverview {
			m.Cursor = wrap(m.Cursor+1, reg.Len())
		}
		return m, nil

	case key.Matches(keyMsg, m.Keys.NextTenant), key.Matches(keyMsg, m.Keys.PrevTenant):
		step := 1
		if key.Matches(keyMsg, m.Keys.PrevTenant) {
			step = -1
		}
		if sess.Mode() == session.AgencyOverview {
			m.Cursor = wrap(m.Cursor+step, reg.Len())
			return m, nil
		}
		next := reg.At(reg.Index(sess.TenantID()) + step)
		sess.SelectTenant(next.ID)
		m.Cursor = reg.Index(next.ID)
		LogDebug(m, "Selected tenant %s", next.ID)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Enter):
		if sess.Mode() != session.AgencyOverview {
			return m, nil
		}
		target := reg.At(m.Cursor)
		sess.SelectClientFromOverview(target.ID)
		LogInfo(m, "Opened client %s", target.Name)
		return m, nil

	case key.Matches(keyMsg, m.Keys.Back):
		sess.BackToOverview()
		return m, nil

	case key.Matches(keyMsg, m.Keys.ToggleBrand):
		mode := sess.ToggleBrandMode()
		m.Cursor = reg.Index(sess.TenantID())
		LogInfo(m, "Switched to %s", mode)
		return m, nil

	case key.Matches(keyMsg, m.Keys.MoreVariations):
		sess.SetVariationCount(sess.Snapshot().VariationCount + 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.FewerVariations):
		sess.SetVariationCount(sess.Snapshot().VariationCount - 1)
		return m, nil

	case key.Matches(keyMsg, m.Keys.RaiseThreshold):
		return m, adjustThreshold(m, model.ThresholdStep)

	case key.Matches(keyMsg, m.Keys.LowerThreshold):
		return m, adjustThreshold(m, -model.ThresholdStep)

	case key.Matches(keyMsg, m.Keys.ToggleAuto):
		on := sess.ToggleAutomation()
		LogInfo(m, "Automation enabled: %v", on)
		return m, nil

	case key.Matches(keyMsg, m.Keys.CopyURL):
		rec := sess.Tenant()
		if rec.URL == "" {
			return m, m.SetStatusMessage(fmt.Sprintf("%s has no dashboard URL", rec.Name), components.MessageWarning, statusMessageTTL)
		}
		return m, m.CopyToClipboardCmd("Dashboard URL", rec.URL)
	}

	return m, nil
}

// adjustThreshold moves the threshold by delta, rounding to whole percent
// so repeated steps do not accumulate float error.
func adjustThreshold(m *model.Model, delta float64) tea.Cmd {
	current := m.Session.Snapshot().ConsistencyThreshold
	target := roundPercent(current + delta)
	stored := m.Session.SetThreshold(target)
	if stored != target {
		return m.SetStatusMessage(fmt.Sprintf("Threshold limited to %.0f%%", stored*100), components.MessageWarning, statusMessageTTL)
	}
	return nil
}

func roundPercent(v float64) float64 {
	return math.Round(v*100) / 100
}

func wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i % n) + n) % n
}
