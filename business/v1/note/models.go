package note

import (
	"errors"
	"time"
)

// ErrInvalidNote is returned when a new note fails validation
var ErrInvalidNote = errors.New("invalid note")

// Outcome is the verdict of the reveal gate for one id
type Outcome int

const (
	NotFound Outcome = iota
	AlreadyDestroyed
	Revealable
)

func (o Outcome) String() string {
	switch o {
	case AlreadyDestroyed:
		return "already destroyed"
	case Revealable:
		return "revealable"
	default:
		return "not found"
	}
}

// Result carries the content only when Outcome is Revealable
type Result struct {
	Outcome Outcome
	Content string
}

type Note struct {
	Id        string
	Content   string
	Viewed    bool
	CreatedAt time.Time
}

type NewNote struct {
	Content  string `json:"content" example:"U2FsdGVkX1+Yk0c3..."`
	DeviceId string `json:"deviceId" example:"device-7f3a"`
}

type Created struct {
	Id string `json:"id" example:"0b6e3a3c-5a7d-4b8f-9a55-2f1f0c7e9d11"`
}

type Revealed struct {
	Content   string `json:"content" example:"U2FsdGVkX1+Yk0c3..."`
	Destroyed bool   `json:"destroyed" example:"true"`
}

// Event is the envelope of every message consumed from the notes topic
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Premium struct {
	DeviceId string `json:"deviceId"`
	Premium  bool   `json:"premium"`
}
