package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

// BrowseModel lists the signed-in user's records.
type BrowseModel struct {
	records  []models.Record
	selected int
	errText  string
}

func NewBrowseModel() BrowseModel {
	return BrowseModel{}
}

func (m *BrowseModel) SetRecords(records []models.Record) {
	m.records = records
	m.errText = ""
	if m.selected >= len(records) {
		m.selected = 0
	}
}

func (m BrowseModel) Update(msg tea.Msg, store *services.RecordStore, userID string) (BrowseModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.records)-1 {
				m.selected++
			}
		case "d":
			if len(m.records) == 0 {
				return m, nil
			}
			id := m.records[m.selected].ID
			return m, func() tea.Msg {
				if err := store.Delete(userID, id); err != nil {
					return errMsg{err}
				}
				records, err := store.ListForUser(userID, "")
				if err != nil {
					return errMsg{err}
				}
				return recordsLoadedMsg{records}
			}
		}

	case errMsg:
		m.errText = msg.err.Error()
	}

	return m, nil
}

func (m BrowseModel) View(user *models.User) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Super Weird One Bud - Surf Tracker") + "\n")
	if user != nil {
		b.WriteString(mutedStyle.Render("👤 "+user.GetDisplayName()) + "\n\n")
	}

	b.WriteString(headerStyle.Render("Your Surf Sessions") + "\n\n")

	if len(m.records) == 0 {
		b.WriteString(mutedStyle.Render("No sessions recorded yet. Press 'n' to add your first one!") + "\n")
	} else {
		// Columns shown by their display labels, same as the web table.
		header := fmt.Sprintf("%-12s %-20s %-14s %-12s %s",
			models.LabelForColumn("date"),
			models.LabelForColumn("break"),
			models.LabelForColumn("zone"),
			models.LabelForColumn("total_score"),
			"Visibility",
		)
		b.WriteString(labelStyle.Render(header) + "\n")

		for i, r := range m.records {
			row := fmt.Sprintf("%-12s %-20s %-14s %-12.1f %s",
				r.Date, truncate(r.Break, 20), truncate(r.Zone, 14), r.TotalScore, r.Publicity)
			if i == m.selected {
				b.WriteString(selectedRowStyle.Render("> "+row) + "\n")
			} else {
				b.WriteString("  " + row + "\n")
			}
		}
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("n: new session • d: delete • r: refresh • s: sign out • q: quit"))

	return boxStyle.Render(b.String())
}

// truncate shortens by display width so multibyte break and zone names
// are never cut mid-rune.
func truncate(s string, n int) string {
	return runewidth.Truncate(s, n, "…")
}
