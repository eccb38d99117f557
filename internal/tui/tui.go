package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive task list and blocks until the user quits. The
// list lives only as long as this call.
func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	m := newAppModel(opts)
	m.log.WithField("id_mode", m.list.IDMode()).Info("session started")
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		m.log.WithError(err).Error("tui exited with error")
		return err
	}
	m.log.Info("session ended")
	return nil
}
