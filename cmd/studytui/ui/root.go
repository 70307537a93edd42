package ui

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateStudy
	stateAdmin
)

type RootModel struct {
	State    state
	Client   *Client
	User     User
	Login    LoginModel
	Study    StudyModel
	Admin    AdminModel
	Quitting bool
	width    int
	height   int
	rng      *rand.Rand
}

func NewRootModel(serverURL string) RootModel {
	client := NewClient(serverURL)
	return RootModel{
		State:  stateLogin,
		Client: client,
		Login:  NewLoginModel(client),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.State == stateAdmin {
			m.Admin.Table.SetHeight(max(msg.Height-10, 5))
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}
		if msg.String() == "q" && m.State != stateLogin && !m.inForm() {
			m.Quitting = true
			return m, tea.Quit
		}
	}

	switch m.State {
	case stateLogin:
		if authMsg, ok := msg.(authResultMsg); ok && authMsg.Err == nil && authMsg.Resp != nil {
			m.User = authMsg.Resp.User
			m.State = stateStudy
			m.Study = NewStudyModel(m.Client, m.User, m.rng)
			return m, m.Study.Init()
		}
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)

	case stateStudy:
		if _, ok := msg.(SwitchToAdminMsg); ok {
			m.State = stateAdmin
			m.Admin = NewAdminModel(m.Client, m.width, m.height)
			return m, m.Admin.Init()
		}
		newStudy, cmd := m.Study.Update(msg)
		m.Study = newStudy
		cmds = append(cmds, cmd)

	case stateAdmin:
		if _, ok := msg.(SwitchToStudyMsg); ok {
			m.State = stateStudy
			m.Study = NewStudyModel(m.Client, m.User, m.rng)
			return m, m.Study.Init()
		}
		newAdmin, cmd := m.Admin.Update(msg)
		m.Admin = newAdmin
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) inForm() bool {
	switch m.State {
	case stateStudy:
		return m.Study.Form != nil
	case stateAdmin:
		return m.Admin.Form != nil
	}
	return false
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Tạm biệt!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateStudy:
		return m.Study.View()
	case stateAdmin:
		return m.Admin.View()
	}
	return ""
}
