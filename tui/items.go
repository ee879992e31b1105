// SPDX-License-Identifier: MIT

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/katalvlaran/tapematrix/session"
)

// menuItem is a numbered menu entry; key is the shortcut digit.
type menuItem struct {
	key   string
	title string
	desc  string
}

func (m menuItem) Title() string       { return m.key + ") " + m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

// Menu shortcuts. The detail screen reuses the digits.
const (
	keyList         = "1"
	keyReadMatrix   = "2"
	keyReadStorage  = "3"
	keyMultiply     = "4"
	keyExit         = "0"
	keyWriteMatrix  = "1"
	keyWriteStorage = "2"
	keyRename       = "3"
	keyRemove       = "4"
	keyBack         = "0"
)

func homeItems() []list.Item {
	return []list.Item{
		menuItem{keyList, "list of matrices", "show, export, rename or remove stored matrices"},
		menuItem{keyReadMatrix, "read matrix from file", "dense symmetric matrix, one row per line"},
		menuItem{keyReadStorage, "read diagonal storage for tape matrix from file", "compact band, main diagonal last"},
		menuItem{keyMultiply, "multiply matrices", "store the product of two matrices"},
		menuItem{keyExit, "exit", ""},
	}
}

func detailItems() []list.Item {
	return []list.Item{
		menuItem{keyWriteMatrix, "write tape matrix to file", ""},
		menuItem{keyWriteStorage, "write storage to file", ""},
		menuItem{keyRename, "rename", ""},
		menuItem{keyRemove, "remove", ""},
		menuItem{keyBack, "back", ""},
	}
}

// entryItem is one stored matrix in the matrices list.
type entryItem struct {
	idx   int
	entry session.Entry
}

func (e entryItem) Title() string { return fmt.Sprintf("%d) %s", e.idx+1, e.entry.Name) }
func (e entryItem) Description() string {
	return fmt.Sprintf("order %d, bandwidth %d", e.entry.Storage.Order(), e.entry.Storage.Bandwidth())
}
func (e entryItem) FilterValue() string { return e.entry.Name }

func entryItems(entries []session.Entry) []list.Item {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{idx: i, entry: e}
	}

	return items
}

func newList(title string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return l
}
