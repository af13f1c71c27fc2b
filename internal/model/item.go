package model

// Item is the domain model for a todo entry.
// ID is a millisecond timestamp taken at creation and is the only stable
// reference used by toggle, edit and delete.
type Item struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Stats counts completed and pending items.
func Stats(items []Item) (done, pending int) {
	for _, it := range items {
		if it.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
