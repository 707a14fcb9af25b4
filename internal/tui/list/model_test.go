package listview

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderInt(i int, selected bool) string {
	if selected {
		return fmt.Sprintf("> %d", i)
	}
	return fmt.Sprintf("  %d", i)
}

func numbers(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestVirtualList_Navigation(t *testing.T) {
	m := NewVirtualListModel(numbers(100), 10, 80, renderInt)
	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 10, m.VisibleTo())

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	assert.Equal(t, 2, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, 99, m.Selected())
	assert.Equal(t, 90, m.VisibleFrom())
	assert.Equal(t, 100, m.VisibleTo())

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Equal(t, 89, m.Selected())

	m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Selected())
}

func TestVirtualList_ViewRendersWindowOnly(t *testing.T) {
	m := NewVirtualListModel(numbers(1000), 10, 80, renderInt)
	m.SetSelected(500)

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 10+2*defaultBufferSize)
	assert.Contains(t, m.View(), "> 500")

	selected := m.GetSelectedItem()
	require.NotNil(t, selected)
	assert.Equal(t, 500, *selected)
}

func TestVirtualList_Empty(t *testing.T) {
	m := NewVirtualListModel[int](nil, 10, 80, renderInt)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, m.View())
	assert.Nil(t, m.GetSelectedItem())
	assert.Zero(t, m.ItemCount())
}

func TestVirtualList_Resize(t *testing.T) {
	m := NewVirtualListModel(numbers(50), 10, 80, renderInt)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 20})
	assert.Equal(t, 20, m.VisibleTo())
	m.SetSelected(-5)
	assert.Equal(t, 0, m.Selected())
	m.SetSelected(500)
	assert.Equal(t, 49, m.Selected())
}
