package note

import "time"

// DestroyedContent replaces the content of a revealed note once its grace delay has passed.
const DestroyedContent = "[this note has been destroyed]"

type Note struct {
	Id        string
	Content   string
	Viewed    bool
	CreatedAt time.Time
}

type NewNote struct {
	Content string
}
