// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package inspector implements an interactive terminal browser over a
// compiled bytecode image.  The left pane lists every routine of the image;
// the right pane shows the disassembly of the selected routine, including
// its locals and literal pools.
package inspector

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/consensys/go-rook/pkg/bytecode"
)

// Run opens the inspector over a decoded image.
func Run(filename string, root *bytecode.CodeObject) error {
	program := tea.NewProgram(newModel(filename, root), tea.WithAltScreen())
	//
	_, err := program.Run()
	//
	return err
}

// Styling

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	paneStyle     = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).PaddingLeft(1)
)

// One routine of the image, flattened for listing.
type entry struct {
	co    *bytecode.CodeObject
	depth int
}

type model struct {
	filename string
	entries  []entry
	cursor   int
	view     viewport.Model
	ready    bool
}

func newModel(filename string, root *bytecode.CodeObject) model {
	return model{
		filename: filename,
		entries:  flatten(root, 0, nil),
	}
}

// Flatten the code object tree into listing order (parents before children).
func flatten(co *bytecode.CodeObject, depth int, entries []entry) []entry {
	entries = append(entries, entry{co, depth})
	//
	for _, child := range co.CodeObjects {
		entries = flatten(child, depth+1, entries)
	}
	//
	return entries
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				m.refresh()
			}
		case "down", "j":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.refresh()
			}
		case "pgup":
			m.view.HalfViewUp()
		case "pgdown":
			m.view.HalfViewDown()
		}
	case tea.WindowSizeMsg:
		m.view = viewport.New(msg.Width-listWidth(m.entries)-4, msg.Height-3)
		m.ready = true
		m.refresh()
	}
	//
	return m, nil
}

// Refresh the disassembly pane for the routine under the cursor.
func (m *model) refresh() {
	if !m.ready {
		return
	}
	//
	m.view.SetContent(bytecode.Disassemble(m.entries[m.cursor].co))
	m.view.GotoTop()
}

// View implements tea.Model.
func (m model) View() string {
	if !m.ready {
		return "loading..."
	}
	//
	var list strings.Builder
	//
	for i, e := range m.entries {
		label := fmt.Sprintf("%s%s %s", strings.Repeat("  ", e.depth), e.co.Kind, e.co.Name)
		//
		if i == m.cursor {
			label = selectedStyle.Render("> " + label)
		} else {
			label = "  " + label
		}
		//
		list.WriteString(label)
		list.WriteString("\n")
	}
	//
	var (
		title = titleStyle.Render(m.filename)
		help  = dimStyle.Render("up/down: select routine - pgup/pgdown: scroll - q: quit")
		panes = lipgloss.JoinHorizontal(lipgloss.Top, list.String(), paneStyle.Render(m.view.View()))
	)
	//
	return fmt.Sprintf("%s\n%s\n%s", title, panes, help)
}

func listWidth(entries []entry) int {
	width := 0
	//
	for _, e := range entries {
		if n := 2*e.depth + len(e.co.Name) + len(e.co.Kind.String()) + 3; n > width {
			width = n
		}
	}
	//
	return width
}
