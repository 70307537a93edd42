package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type cardSavedMsg struct {
	Card *Card
	Err  error
}

type formCancelledMsg struct{}

const (
	formChinese = iota
	formPinyin
	formVietnamese
	formCategories
)

// CardFormModel is a shared create/edit form. EditID empty means create.
type CardFormModel struct {
	Client  *Client
	Inputs  []textinput.Model
	Focused int
	EditID  string
	Err     error
}

func NewCardForm(c *Client) CardFormModel {
	inputs := make([]textinput.Model, 4)

	inputs[formChinese] = textinput.New()
	inputs[formChinese].Prompt = "Chinese: "
	inputs[formChinese].Placeholder = "你好"
	inputs[formChinese].Focus()

	inputs[formPinyin] = textinput.New()
	inputs[formPinyin].Prompt = "Pinyin: "
	inputs[formPinyin].Placeholder = "nǐ hǎo"

	inputs[formVietnamese] = textinput.New()
	inputs[formVietnamese].Prompt = "Vietnamese: "
	inputs[formVietnamese].Placeholder = "Xin chào"

	inputs[formCategories] = textinput.New()
	inputs[formCategories].Prompt = "Categories: "
	inputs[formCategories].Placeholder = "Greetings, Common"

	return CardFormModel{Client: c, Inputs: inputs}
}

func NewEditCardForm(c *Client, card Card) CardFormModel {
	m := NewCardForm(c)
	m.EditID = card.ID
	m.Inputs[formChinese].SetValue(card.Chinese)
	m.Inputs[formPinyin].SetValue(card.Pinyin)
	m.Inputs[formVietnamese].SetValue(card.Vietnamese)
	m.Inputs[formCategories].SetValue(strings.Join(card.Categories, ", "))
	return m
}

func (m CardFormModel) Init() tea.Cmd { return textinput.Blink }

func (m CardFormModel) Update(msg tea.Msg) (CardFormModel, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.Inputs))

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc:
			return m, func() tea.Msg { return formCancelledMsg{} }
		case tea.KeyEnter:
			if m.Focused == len(m.Inputs)-1 {
				return m, m.submitCmd()
			}
			m.nextInput()
		case tea.KeyTab, tea.KeyDown:
			m.nextInput()
		case tea.KeyShiftTab, tea.KeyUp:
			m.prevInput()
		}
	case cardSavedMsg:
		if msg.Err != nil {
			m.Err = msg.Err
		}
	}

	for i := range m.Inputs {
		m.Inputs[i], cmds[i] = m.Inputs[i].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m *CardFormModel) nextInput() {
	m.Inputs[m.Focused].Blur()
	m.Focused = (m.Focused + 1) % len(m.Inputs)
	m.Inputs[m.Focused].Focus()
}

func (m *CardFormModel) prevInput() {
	m.Inputs[m.Focused].Blur()
	m.Focused--
	if m.Focused < 0 {
		m.Focused = len(m.Inputs) - 1
	}
	m.Inputs[m.Focused].Focus()
}

func (m CardFormModel) submitCmd() tea.Cmd {
	in := CardInput{
		Chinese:    strings.TrimSpace(m.Inputs[formChinese].Value()),
		Pinyin:     strings.TrimSpace(m.Inputs[formPinyin].Value()),
		Vietnamese: strings.TrimSpace(m.Inputs[formVietnamese].Value()),
		Categories: parseCategories(m.Inputs[formCategories].Value()),
	}
	client := m.Client
	editID := m.EditID
	return func() tea.Msg {
		var card *Card
		var err error
		if editID == "" {
			card, err = client.CreateCard(in)
		} else {
			card, err = client.UpdateCard(editID, in)
		}
		return cardSavedMsg{Card: card, Err: err}
	}
}

func parseCategories(s string) []string {
	parts := strings.Split(s, ",")
	out := []string{}
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (m CardFormModel) View() string {
	var b strings.Builder

	title := "Thêm thẻ mới"
	if m.EditID != "" {
		title = "Sửa thẻ"
	}
	b.WriteString(titleStyle.Render(title) + "\n\n")

	for i := range m.Inputs {
		b.WriteString(m.Inputs[i].View())
		b.WriteRune('\n')
	}

	b.WriteString("\n")
	b.WriteString(blurredStyle.Render("Enter on last field saves, Esc cancels"))

	if m.Err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorMessageStyle(m.Err.Error()))
	}

	return b.String()
}
