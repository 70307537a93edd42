package ui

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type cardsMsg struct {
	Cards []Card
	Err   error
}

type SwitchToAdminMsg struct{}

// StudyModel pages through the active filtered card set one at a time.
// Shuffle permutes indices only; the card data itself is never reordered.
type StudyModel struct {
	Client     *Client
	User       User
	Cards      []Card
	Order      []int
	Pos        int
	Flipped    bool
	Category   string
	Categories []string
	Form       *CardFormModel
	Err        error
	Status     string
	rng        *rand.Rand
}

func NewStudyModel(c *Client, user User, rng *rand.Rand) StudyModel {
	return StudyModel{Client: c, User: user, rng: rng}
}

func (m StudyModel) Init() tea.Cmd {
	return m.fetchCmd(m.Category)
}

func (m StudyModel) fetchCmd(category string) tea.Cmd {
	client := m.Client
	return func() tea.Msg {
		cards, err := client.ListCards(category)
		return cardsMsg{Cards: cards, Err: err}
	}
}

func (m StudyModel) Update(msg tea.Msg) (StudyModel, tea.Cmd) {
	if m.Form != nil {
		switch msg := msg.(type) {
		case formCancelledMsg:
			m.Form = nil
			return m, nil
		case cardSavedMsg:
			if msg.Err == nil {
				m.Form = nil
				m.Status = "Đã lưu thẻ"
				return m, m.fetchCmd(m.Category)
			}
		}
		form, cmd := m.Form.Update(msg)
		m.Form = &form
		return m, cmd
	}

	switch msg := msg.(type) {
	case cardsMsg:
		if msg.Err != nil {
			m.Err = msg.Err
			return m, nil
		}
		m.Err = nil
		m.Cards = msg.Cards
		m.Order = identityPerm(len(m.Cards))
		m.Pos = 0
		m.Flipped = false
		if m.Category == "" {
			m.Categories = collectCategories(m.Cards)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "l", "n":
			if len(m.Order) > 0 {
				m.Pos = (m.Pos + 1) % len(m.Order)
				m.Flipped = false
			}
		case "left", "h", "p":
			if len(m.Order) > 0 {
				m.Pos = (m.Pos - 1 + len(m.Order)) % len(m.Order)
				m.Flipped = false
			}
		case " ", "enter", "f":
			m.Flipped = !m.Flipped
		case "s":
			if len(m.Cards) > 0 {
				m.Order = shuffledPerm(len(m.Cards), m.rng)
				m.Pos = 0
				m.Flipped = false
				m.Status = "Đã xáo trộn"
			}
		case "c":
			m.Category = nextCategory(m.Categories, m.Category)
			m.Status = ""
			return m, m.fetchCmd(m.Category)
		case "a":
			form := NewCardForm(m.Client)
			m.Form = &form
			return m, form.Init()
		case "tab":
			if m.User.IsAdmin() {
				return m, func() tea.Msg { return SwitchToAdminMsg{} }
			}
		case "r":
			return m, m.fetchCmd(m.Category)
		}
	}
	return m, nil
}

// nextCategory cycles all → first → ... → last → all.
func nextCategory(categories []string, current string) string {
	if len(categories) == 0 {
		return ""
	}
	if current == "" {
		return categories[0]
	}
	for i, c := range categories {
		if c == current {
			if i == len(categories)-1 {
				return ""
			}
			return categories[i+1]
		}
	}
	return ""
}

func collectCategories(cards []Card) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, c := range cards {
		for _, cat := range c.Categories {
			if !seen[cat] {
				seen[cat] = true
				out = append(out, cat)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (m StudyModel) View() string {
	if m.Form != nil {
		return docStyle.Render(m.Form.View())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Học Từ Vựng") + "  ")
	b.WriteString(statusMessageStyle(fmt.Sprintf("Xin chào, %s", m.User.Username)))
	b.WriteString("\n\n")

	filter := "Tất cả danh mục"
	if m.Category != "" {
		filter = m.Category
	}
	b.WriteString(blurredStyle.Render("Danh mục: "+filter) + "\n\n")

	if m.Err != nil {
		b.WriteString(errorMessageStyle(m.Err.Error()) + "\n")
	} else if len(m.Cards) == 0 {
		b.WriteString("Không có thẻ nào.\n")
	} else {
		card := m.Cards[m.Order[m.Pos]]
		if m.Flipped {
			b.WriteString(cardBackStyle.Render(card.Vietnamese))
		} else {
			front := card.Chinese
			if card.Pinyin != "" {
				front += "\n" + pinyinStyle.Render(card.Pinyin)
			}
			b.WriteString(cardFrontStyle.Render(front))
		}
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("%d / %d", m.Pos+1, len(m.Order)))
		if len(card.Categories) > 0 {
			b.WriteString("  " + blurredStyle.Render(strings.Join(card.Categories, ", ")))
		}
		b.WriteString("\n")
	}

	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status) + "\n")
	}

	help := "←/→ chuyển thẻ · space lật · s xáo trộn · c lọc danh mục · a thêm thẻ · q thoát"
	if m.User.IsAdmin() {
		help += " · tab quản trị"
	}
	b.WriteString("\n" + blurredStyle.Render(help))

	return docStyle.Render(b.String())
}
