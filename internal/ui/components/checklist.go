package components

import (
	"fmt"
	"strings"

	"github.com/abhisek/kosakata/internal/ui/theme"
)

// Checklist is a multi-select list. Cursor is owned by the caller so the
// list can share navigation with other rows on the same screen.
type Checklist struct {
	Options []string
	Counts  []int // optional, shown next to each option
	checked []bool
}

// NewChecklist creates a list with every option in selected checked.
func NewChecklist(options []string, counts []int, selected []string) Checklist {
	c := Checklist{Options: options, Counts: counts, checked: make([]bool, len(options))}
	want := make(map[string]bool, len(selected))
	for _, s := range selected {
		want[s] = true
	}
	for i, o := range options {
		c.checked[i] = want[o]
	}
	return c
}

// Toggle flips option i.
func (c *Checklist) Toggle(i int) {
	if i >= 0 && i < len(c.checked) {
		c.checked[i] = !c.checked[i]
	}
}

// ToggleAll checks everything, or clears everything when all are checked.
func (c *Checklist) ToggleAll() {
	all := c.AllChecked()
	for i := range c.checked {
		c.checked[i] = !all
	}
}

// AllChecked reports whether every option is checked.
func (c Checklist) AllChecked() bool {
	for _, v := range c.checked {
		if !v {
			return false
		}
	}
	return true
}

// Checked reports whether option i is checked.
func (c Checklist) Checked(i int) bool {
	return i >= 0 && i < len(c.checked) && c.checked[i]
}

// Selected returns the checked options in display order.
func (c Checklist) Selected() []string {
	var out []string
	for i, o := range c.Options {
		if c.checked[i] {
			out = append(out, o)
		}
	}
	return out
}

// View renders the list; cursor < 0 highlights nothing.
func (c Checklist) View(cursor int) string {
	var b strings.Builder
	for i, o := range c.Options {
		box := "[ ]"
		if c.checked[i] {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s", box, o)
		if i < len(c.Counts) {
			line += theme.Dim.Render(fmt.Sprintf("  (%d)", c.Counts[i]))
		}
		if i == cursor {
			b.WriteString(theme.Selected.Render("▸ ") + theme.Selected.Render(line))
		} else {
			b.WriteString("  " + theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
