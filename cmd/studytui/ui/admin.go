package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type cardDeletedMsg struct{ Err error }

type seedResultMsg struct {
	Result *SeedResult
	Err    error
}

type SwitchToStudyMsg struct{}

// AdminModel is a table over every card regardless of ownership. The server
// still enforces authorization; this view just surfaces its answers.
type AdminModel struct {
	Client *Client
	Table  table.Model
	Cards  []Card
	Form   *CardFormModel
	Err    error
	Status string
}

func NewAdminModel(c *Client, width, height int) AdminModel {
	columns := []table.Column{
		{Title: "Chinese", Width: 12},
		{Title: "Pinyin", Width: 14},
		{Title: "Vietnamese", Width: 18},
		{Title: "Categories", Width: 22},
		{Title: "System", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-10, 5)),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return AdminModel{Client: c, Table: t}
}

func (m AdminModel) Init() tea.Cmd {
	return m.fetchCmd()
}

func (m AdminModel) fetchCmd() tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		cards, err := client.ListCards("")
		return cardsMsg{Cards: cards, Err: err}
	}
}

func (m AdminModel) Update(msg tea.Msg) (AdminModel, tea.Cmd) {
	if m.Form != nil {
		switch msg := msg.(type) {
		case formCancelledMsg:
			m.Form = nil
			return m, nil
		case cardSavedMsg:
			if msg.Err == nil {
				m.Form = nil
				m.Status = "Đã lưu thẻ"
				return m, m.fetchCmd()
			}
		}
		form, cmd := m.Form.Update(msg)
		m.Form = &form
		return m, cmd
	}

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case cardsMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Cards = msg.Cards
		rows := make([]table.Row, 0, len(m.Cards))
		for _, c := range m.Cards {
			system := ""
			if c.IsSystemCard {
				system = "yes"
			}
			rows = append(rows, table.Row{c.Chinese, c.Pinyin, c.Vietnamese, strings.Join(c.Categories, ", "), system})
		}
		m.Table.SetRows(rows)
		return m, nil

	case cardDeletedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Status = "Đã xóa thẻ"
		return m, m.fetchCmd()

	case seedResultMsg:
		switch {
		case msg.Err != nil:
			m.Err = msg.Err
		case msg.Result.Success:
			m.Err = nil
			m.Status = msg.Result.Message
		default:
			m.Err = nil
			m.Status = msg.Result.Message + ": " + msg.Result.Error
		}
		return m, m.fetchCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return m, m.fetchCmd()
		case "n":
			form := NewCardForm(m.Client)
			m.Form = &form
			return m, form.Init()
		case "e":
			if card, ok := m.selectedCard(); ok {
				form := NewEditCardForm(m.Client, card)
				m.Form = &form
				return m, form.Init()
			}
		case "d":
			if card, ok := m.selectedCard(); ok {
				client := m.Client
				id := card.ID
				return m, func() tea.Msg {
					return cardDeletedMsg{Err: client.DeleteCard(id)}
				}
			}
		case "S":
			client := m.Client
			return m, func() tea.Msg {
				result, err := client.Seed()
				return seedResultMsg{Result: result, Err: err}
			}
		case "esc", "tab":
			return m, func() tea.Msg { return SwitchToStudyMsg{} }
		}
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m AdminModel) selectedCard() (Card, bool) {
	idx := m.Table.Cursor()
	if idx < 0 || idx >= len(m.Cards) {
		return Card{}, false
	}
	return m.Cards[idx], true
}

func (m AdminModel) View() string {
	if m.Form != nil {
		return docStyle.Render(m.Form.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Quản trị thẻ") + "\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n")

	if m.Err != nil {
		b.WriteString(errorMessageStyle(m.Err.Error()) + "\n")
	}
	if m.Status != "" {
		b.WriteString(statusMessageStyle(m.Status) + "\n")
	}

	b.WriteString("\n" + blurredStyle.Render("n thêm · e sửa · d xóa · S seed · r tải lại · esc quay lại · q thoát"))
	return docStyle.Render(b.String())
}
