package models

// NewsItem is immutable after insert; listings show newest id first.
type NewsItem struct {
	ID    int
	Title string
	Body  string
	Date  string
}

// ScheduleItem dates are free text and sort lexicographically, so entries
// should use a sortable form like 2026-08-31.
type ScheduleItem struct {
	ID       int
	Activity string
	Date     string
	Location string
}

// Achievement references an athlete by name only. There is no foreign key:
// renaming or deleting the athlete leaves these rows untouched.
type Achievement struct {
	ID          int
	AthleteName string
	Event       string
	Result      string
	Year        string
}
