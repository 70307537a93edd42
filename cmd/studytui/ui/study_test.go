package ui

import (
	"math/rand"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedStudy(t *testing.T, cards []Card) StudyModel {
	t.Helper()
	m := NewStudyModel(NewClient("http://unused"), User{ID: "u1", Username: "bob", Role: "user"}, rand.New(rand.NewSource(1)))
	m, _ = m.Update(cardsMsg{Cards: cards})
	return m
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func threeCards() []Card {
	return []Card{
		{ID: "a", Chinese: "一", Vietnamese: "Một"},
		{ID: "b", Chinese: "二", Vietnamese: "Hai"},
		{ID: "c", Chinese: "三", Vietnamese: "Ba"},
	}
}

func TestStudy_NavigationWrapsModulo(t *testing.T) {
	m := loadedStudy(t, threeCards())
	require.Equal(t, 0, m.Pos)

	m, _ = m.Update(key("n"))
	assert.Equal(t, 1, m.Pos)
	m, _ = m.Update(key("n"))
	m, _ = m.Update(key("n"))
	assert.Equal(t, 0, m.Pos, "next wraps past the end")

	m, _ = m.Update(key("p"))
	assert.Equal(t, 2, m.Pos, "previous wraps below zero")
}

func TestStudy_FlipResetsOnNavigation(t *testing.T) {
	m := loadedStudy(t, threeCards())

	m, _ = m.Update(key(" "))
	assert.True(t, m.Flipped)

	m, _ = m.Update(key("n"))
	assert.False(t, m.Flipped)
}

func TestStudy_ShufflePermutesIndicesOnly(t *testing.T) {
	m := loadedStudy(t, threeCards())
	before := append([]Card(nil), m.Cards...)

	m, _ = m.Update(key("s"))

	assert.Equal(t, before, m.Cards, "card data must not be reordered")
	assert.Len(t, m.Order, 3)
	assert.Equal(t, 0, m.Pos)
	seen := map[int]bool{}
	for _, i := range m.Order {
		seen[i] = true
	}
	assert.Len(t, seen, 3, "order must remain a permutation")
}

func TestStudy_LoadResetsShuffleAndPosition(t *testing.T) {
	m := loadedStudy(t, threeCards())
	m, _ = m.Update(key("s"))
	m, _ = m.Update(key("n"))

	// a filter change refetches; the new load discards shuffle order
	m, _ = m.Update(cardsMsg{Cards: threeCards()[:2]})
	assert.Equal(t, []int{0, 1}, m.Order)
	assert.Equal(t, 0, m.Pos)
	assert.False(t, m.Flipped)
}

func TestStudy_EmptySetNavigationIsSafe(t *testing.T) {
	m := loadedStudy(t, nil)

	m, _ = m.Update(key("n"))
	m, _ = m.Update(key("p"))
	m, _ = m.Update(key("s"))
	assert.Equal(t, 0, m.Pos)
}

func TestStudy_CategoriesCollectedFromUnfilteredSet(t *testing.T) {
	cards := []Card{
		{ID: "a", Chinese: "水", Vietnamese: "Nước", Categories: []string{"Food & Drink"}},
		{ID: "b", Chinese: "谢谢", Vietnamese: "Cảm ơn", Categories: []string{"Greetings", "Common"}},
	}
	m := loadedStudy(t, cards)
	assert.Equal(t, []string{"Common", "Food & Drink", "Greetings"}, m.Categories)
}

func TestCollectCategories_Dedupes(t *testing.T) {
	cards := []Card{
		{Categories: []string{"A", "B"}},
		{Categories: []string{"B", "C"}},
	}
	assert.Equal(t, []string{"A", "B", "C"}, collectCategories(cards))
}

func TestParseCategories(t *testing.T) {
	assert.Equal(t, []string{"Greetings", "Common"}, parseCategories("Greetings, Common"))
	assert.Equal(t, []string{"One"}, parseCategories(" One ,, "))
	assert.Empty(t, parseCategories(""))
}
