package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DougLewin/SuperWeirdOneBudFast/services"
)

// Auth form fields, sign-in and sign-up share the model.
const (
	fieldEmail = iota
	fieldPassword
	fieldFullName
	fieldConfirm
	authFieldCount
)

// AuthModel is the sign-in / sign-up view.
type AuthModel struct {
	auth services.AuthService

	signUp  bool // false: sign in tab, true: sign up tab
	inputs  []textinput.Model
	focused int
	errText string
}

func NewAuthModel(auth services.AuthService) AuthModel {
	inputs := make([]textinput.Model, authFieldCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
	}

	inputs[fieldEmail].Placeholder = "Email"
	inputs[fieldEmail].Focus()
	inputs[fieldPassword].Placeholder = "Password"
	inputs[fieldPassword].EchoMode = textinput.EchoPassword
	inputs[fieldFullName].Placeholder = "Full Name (optional)"
	inputs[fieldConfirm].Placeholder = "Confirm Password"
	inputs[fieldConfirm].EchoMode = textinput.EchoPassword

	return AuthModel{auth: auth, inputs: inputs}
}

func (m AuthModel) fields() []int {
	if m.signUp {
		return []int{fieldFullName, fieldEmail, fieldPassword, fieldConfirm}
	}
	return []int{fieldEmail, fieldPassword}
}

func (m AuthModel) Update(msg tea.Msg) (AuthModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			// Switch between the sign-in and sign-up tabs.
			m.signUp = !m.signUp
			m.errText = ""
			m.focused = 0
			m.refocus()
			return m, nil

		case "up", "shift+tab":
			m.focused--
			if m.focused < 0 {
				m.focused = len(m.fields()) - 1
			}
			m.refocus()
			return m, nil

		case "down":
			m.focused = (m.focused + 1) % len(m.fields())
			m.refocus()
			return m, nil

		case "enter":
			if m.focused < len(m.fields())-1 {
				m.focused++
				m.refocus()
				return m, nil
			}
			return m.submit()

		case "ctrl+c", "esc":
			return m, tea.Quit
		}

	case errMsg:
		m.errText = msg.err.Error()
		return m, nil
	}

	idx := m.fields()[m.focused]
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m *AuthModel) refocus() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.inputs[m.fields()[m.focused]].Focus()
}

// submit validates the form locally before touching the identity
// provider, mirroring the web dashboard's rules.
func (m AuthModel) submit() (AuthModel, tea.Cmd) {
	email := strings.TrimSpace(m.inputs[fieldEmail].Value())
	password := m.inputs[fieldPassword].Value()

	if email == "" || password == "" {
		m.errText = "Please enter both email and password"
		return m, nil
	}

	if m.signUp {
		if len(password) < 6 {
			m.errText = "Password must be at least 6 characters long"
			return m, nil
		}
		if password != m.inputs[fieldConfirm].Value() {
			m.errText = "Passwords do not match"
			return m, nil
		}
		fullName := strings.TrimSpace(m.inputs[fieldFullName].Value())
		auth := m.auth
		return m, func() tea.Msg {
			user, token, err := auth.SignUp(email, password, fullName)
			if err != nil {
				return errMsg{err}
			}
			return signedInMsg{user: user, token: token}
		}
	}

	auth := m.auth
	return m, func() tea.Msg {
		user, token, err := auth.SignIn(email, password)
		if err != nil {
			return errMsg{err}
		}
		return signedInMsg{user: user, token: token}
	}
}

func (m AuthModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🏄 Super Weird One Bud") + "\n")

	tab := "Sign In"
	other := "sign up"
	if m.signUp {
		tab = "Create Account"
		other = "sign in"
	}
	b.WriteString(headerStyle.Render(tab) + mutedStyle.Render(fmt.Sprintf("  (tab: switch to %s)", other)) + "\n\n")

	for _, idx := range m.fields() {
		b.WriteString(m.inputs[idx].View() + "\n")
	}

	if m.errText != "" {
		b.WriteString("\n" + errorStyle.Render(m.errText) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("enter: next/submit • esc: quit"))

	return boxStyle.Render(b.String())
}
