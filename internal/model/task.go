package model

// Task is one to-do entry.
// ID is the only stable identity; Text is stored trimmed and is never empty.
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Toggled returns a copy of t with Completed negated.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}
