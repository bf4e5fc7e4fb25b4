package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DougLewin/SuperWeirdOneBudFast/models"
	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

// view is the dashboard's state machine. Exactly one view is active at
// a time; user actions drive the transitions auth -> browsing <->
// creating, and sign-out returns to auth.
type view int

const (
	viewAuth view = iota
	viewBrowsing
	viewCreating
)

// Messages passed back from commands.
type (
	signedInMsg struct {
		user  *models.User
		token string
	}
	recordsLoadedMsg struct{ records []models.Record }
	recordSavedMsg   struct{}
	errMsg           struct{ err error }
)

// Dashboard is the root TUI model.
type Dashboard struct {
	auth  services.AuthService
	store *services.RecordStore

	view  view
	user  *models.User
	token string

	authForm AuthModel
	browse   BrowseModel
	create   CreateModel

	width  int
	height int
}

// NewDashboard wires the TUI to the identity provider and record
// store.
func NewDashboard(auth services.AuthService, store *services.RecordStore) Dashboard {
	return Dashboard{
		auth:     auth,
		store:    store,
		view:     viewAuth,
		authForm: NewAuthModel(auth),
		browse:   NewBrowseModel(),
	}
}

func (m Dashboard) Init() tea.Cmd {
	return nil
}

func (m Dashboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case signedInMsg:
		m.user = msg.user
		m.token = msg.token
		m.view = viewBrowsing
		return m, loadRecords(m.store, m.user.ID)

	case recordsLoadedMsg:
		m.browse.SetRecords(msg.records)
		return m, nil

	case recordSavedMsg:
		m.view = viewBrowsing
		return m, loadRecords(m.store, m.user.ID)
	}

	switch m.view {
	case viewAuth:
		var cmd tea.Cmd
		m.authForm, cmd = m.authForm.Update(msg)
		return m, cmd

	case viewBrowsing:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "n":
				m.create = NewCreateModel(m.store, m.user.ID)
				m.view = viewCreating
				return m, m.create.Init()
			case "r":
				return m, loadRecords(m.store, m.user.ID)
			case "s":
				// Sign-out is best-effort; drop local identity either way.
				m.auth.SignOut(m.token)
				m.user = nil
				m.token = ""
				m.authForm = NewAuthModel(m.auth)
				m.view = viewAuth
				return m, nil
			case "q":
				return m, tea.Quit
			}
		}
		var cmd tea.Cmd
		m.browse, cmd = m.browse.Update(msg, m.store, m.user.ID)
		return m, cmd

	case viewCreating:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			m.view = viewBrowsing
			return m, nil
		}
		var cmd tea.Cmd
		m.create, cmd = m.create.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Dashboard) View() string {
	switch m.view {
	case viewAuth:
		return m.authForm.View()
	case viewBrowsing:
		return m.browse.View(m.user)
	case viewCreating:
		return m.create.View()
	}
	return ""
}

func loadRecords(store *services.RecordStore, userID string) tea.Cmd {
	return func() tea.Msg {
		records, err := store.ListForUser(userID, "")
		if err != nil {
			return errMsg{err}
		}
		return recordsLoadedMsg{records}
	}
}

// Run starts the dashboard.
func Run(auth services.AuthService, store *services.RecordStore) error {
	p := tea.NewProgram(NewDashboard(auth, store), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
