package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

// Create form fields, in display order.
const (
	createBreak = iota
	createZone
	createDate
	createTime
	createCost
	createReturn
	createSwellScore
	createWindScore
	createTideScore
	createSwellComments
	createWindComments
	createTideComments
	createFieldCount
)

var publicityOptions = []string{
	models.PublicityPrivate,
	models.PublicityPublic,
	models.PublicityCommunity,
}

// CreateModel is the new-session form. Cost and estimated return feed
// the scoring engine together with whichever sub-scores were entered;
// the computed total is stored with the record and never recomputed.
type CreateModel struct {
	store  *services.RecordStore
	userID string

	inputs      []textinput.Model
	focused     int
	publicity   int // index into publicityOptions, cycled after the last row
	onPublicity bool

	errText string
}

func NewCreateModel(store *services.RecordStore, userID string) CreateModel {
	inputs := make([]textinput.Model, createFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	inputs[createBreak].Placeholder = "Break (required)"
	inputs[createBreak].CharLimit = 200
	inputs[createBreak].Focus()
	inputs[createZone].Placeholder = "Zone"
	inputs[createDate].Placeholder = "Date (YYYY-MM-DD, empty = today)"
	inputs[createTime].Placeholder = "Time (HH:MM, empty = now)"
	inputs[createCost].Placeholder = "Cost 0-100 (required)"
	inputs[createReturn].Placeholder = "Estimated Return 0-100 (required)"
	inputs[createSwellScore].Placeholder = models.LabelForColumn("swell_score") + " (optional)"
	inputs[createWindScore].Placeholder = models.LabelForColumn("wind_score") + " (optional)"
	inputs[createTideScore].Placeholder = models.LabelForColumn("tide_score") + " (optional)"
	inputs[createSwellComments].Placeholder = models.LabelForColumn("swell_comments")
	inputs[createWindComments].Placeholder = models.LabelForColumn("wind_comments")
	inputs[createTideComments].Placeholder = models.LabelForColumn("tide_comments")

	return CreateModel{store: store, userID: userID, inputs: inputs}
}

func (m CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CreateModel) Update(msg tea.Msg) (CreateModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down", "tab":
			m.next()
			return m, nil

		case "up", "shift+tab":
			m.prev()
			return m, nil

		case "left", "right":
			if m.onPublicity {
				if msg.String() == "right" {
					m.publicity = (m.publicity + 1) % len(publicityOptions)
				} else {
					m.publicity = (m.publicity + len(publicityOptions) - 1) % len(publicityOptions)
				}
				return m, nil
			}

		case "enter":
			if m.onPublicity {
				return m.submit()
			}
			m.next()
			return m, nil
		}

	case errMsg:
		m.errText = msg.err.Error()
		return m, nil
	}

	if !m.onPublicity {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}
	return m, nil
}

// The publicity selector sits after the last text input.
func (m *CreateModel) next() {
	m.inputs[m.focused].Blur()
	if m.onPublicity {
		m.onPublicity = false
		m.focused = 0
	} else if m.focused == createFieldCount-1 {
		m.onPublicity = true
	} else {
		m.focused++
	}
	if !m.onPublicity {
		m.inputs[m.focused].Focus()
	}
}

func (m *CreateModel) prev() {
	m.inputs[m.focused].Blur()
	if m.onPublicity {
		m.onPublicity = false
		m.focused = createFieldCount - 1
	} else if m.focused == 0 {
		m.onPublicity = true
	} else {
		m.focused--
	}
	if !m.onPublicity {
		m.inputs[m.focused].Focus()
	}
}

func (m CreateModel) submit() (CreateModel, tea.Cmd) {
	breakName := strings.TrimSpace(m.inputs[createBreak].Value())
	if breakName == "" {
		m.errText = "Please enter a break name"
		return m, nil
	}

	cost, err := parseScore(m.inputs[createCost].Value())
	if err != nil || cost == nil {
		m.errText = "Cost must be a number between 0 and 100"
		return m, nil
	}
	estReturn, err := parseScore(m.inputs[createReturn].Value())
	if err != nil || estReturn == nil {
		m.errText = "Estimated Return must be a number between 0 and 100"
		return m, nil
	}

	swell, err := parseSub(m.inputs[createSwellScore].Value())
	if err != nil {
		m.errText = "Swell Score must be a number"
		return m, nil
	}
	wind, err := parseSub(m.inputs[createWindScore].Value())
	if err != nil {
		m.errText = "Wind Score must be a number"
		return m, nil
	}
	tide, err := parseSub(m.inputs[createTideScore].Value())
	if err != nil {
		m.errText = "Tide Score must be a number"
		return m, nil
	}

	total := services.CalculateScore(*cost, *estReturn, swell, wind, tide)

	date := strings.TrimSpace(m.inputs[createDate].Value())
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	sessionTime := strings.TrimSpace(m.inputs[createTime].Value())
	if sessionTime == "" {
		sessionTime = time.Now().Format("15:04")
	}

	swellComments := m.inputs[createSwellComments].Value()
	windComments := m.inputs[createWindComments].Value()
	tideComments := m.inputs[createTideComments].Value()

	record := models.Record{
		UserID:         m.userID,
		Publicity:      publicityOptions[m.publicity],
		Date:           date,
		Time:           sessionTime,
		Break:          breakName,
		Zone:           strings.TrimSpace(m.inputs[createZone].Value()),
		TotalScore:     total,
		SwellScore:     subAsInt(swell),
		WindScore:      subAsInt(wind),
		TideScore:      subAsInt(tide),
		SwellComments:  swellComments,
		WindComments:   windComments,
		TideComments:   tideComments,
		FullCommentary: strings.TrimSpace(swellComments + " " + windComments + " " + tideComments),
	}

	store := m.store
	return m, func() tea.Msg {
		if err := store.Save(&record); err != nil {
			return errMsg{err}
		}
		return recordSavedMsg{}
	}
}

func parseScore(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || v > 100 {
		return nil, fmt.Errorf("value out of range: %s", raw)
	}
	return &v, nil
}

func parseSub(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func subAsInt(f *float64) int {
	if f == nil {
		return 0
	}
	return int(*f)
}

func (m CreateModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Create New Session") + "\n")
	b.WriteString(mutedStyle.Render("esc: back to list") + "\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View() + "\n")
	}

	marker := "  "
	if m.onPublicity {
		marker = "> "
	}
	b.WriteString(fmt.Sprintf("%s%s %s\n", marker,
		labelStyle.Render("Visibility:"),
		publicityOptions[m.publicity]))

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("enter on Visibility: save • ←/→: change visibility"))

	return boxStyle.Render(b.String())
}
