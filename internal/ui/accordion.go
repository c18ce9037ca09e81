package ui

// AccordionItem is one collapsible row.
type AccordionItem struct {
	Expanded bool
}

// Toggle flips the row and returns the new state.
func (a *AccordionItem) Toggle() bool {
	a.Expanded = !a.Expanded
	return a.Expanded
}

// Accordion is a list of independent rows. Opening one row does not close
// the others.
type Accordion struct {
	items []AccordionItem
}

// NewAccordion creates n collapsed rows, then expands the given indexes.
// Out of range indexes are ignored.
func NewAccordion(n int, expanded ...int) *Accordion {
	a := &Accordion{items: make([]AccordionItem, n)}
	for _, i := range expanded {
		if i >= 0 && i < n {
			a.items[i].Expanded = true
		}
	}
	return a
}

func (a *Accordion) Len() int {
	return len(a.items)
}

// Toggle flips row i. It returns false for an out of range index.
func (a *Accordion) Toggle(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	return a.items[i].Toggle()
}

// Expanded reports whether row i is open.
func (a *Accordion) Expanded(i int) bool {
	if i < 0 || i >= len(a.items) {
		return false
	}
	return a.items[i].Expanded
}
