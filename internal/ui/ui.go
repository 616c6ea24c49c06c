// SPDX-License-Identifier: Apache-2.0

// Package ui contains the startup shell the resolved configuration is
// handed to. The real media-server screens live behind this hand-off; for
// now the shell renders the effective settings and waits for quit.
package ui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/himanshuxd/ncmpcpp/internal/config"
	"github.com/himanshuxd/ncmpcpp/internal/screens"
)

type startupModel struct {
	cfg *config.EffectiveConfig
}

func newStartupModel(cfg *config.EffectiveConfig) startupModel {
	return startupModel{cfg: cfg}
}

func (m startupModel) Init() tea.Cmd { return nil }

func (m startupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m startupModel) View() string {
	out := titleStyle.Render("ncmpcpp") + "\n\n"
	out += "server:         " + m.cfg.Host + "\n"
	out += "port:           " + strconv.Itoa(m.cfg.Port) + "\n"
	out += "startup screen: " + m.cfg.StartupScreen.String() + "\n"
	if m.cfg.StartupSlaveScreen != screens.None {
		out += "slave screen:   " + m.cfg.StartupSlaveScreen.String() + "\n"
	}
	out += "bindings:       " + m.cfg.BindingsPath + "\n"
	out += "\n" + helpStyle.Render("q quit")
	return appStyle.Render(out)
}

// Run shows the startup shell until the user quits.
func Run(cfg *config.EffectiveConfig) error {
	_, err := tea.NewProgram(newStartupModel(cfg), tea.WithAltScreen()).Run()
	return err
}
