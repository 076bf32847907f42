// Package telemetry provides population tracking, bookmarking, and snapshots.
package telemetry

import (
	"github.com/pthm-cable/cells/components"
	"github.com/pthm-cable/cells/systems"
)

// EventType identifies telemetry events.
type EventType uint8

const (
	EventBirth EventType = iota
	EventDeath
	EventDivisionBlocked
	EventMutation
	EventPhotosynthesis
	EventMove
	EventMoveRefused
	EventIdle
)

// Event represents a single telemetry event.
type Event struct {
	Type EventType
	Tick int32
	Cell components.Cell // the acting cell, or the offspring for births

	// Optional fields depending on event type
	Amount int // photosynthesis energy change
}

// NewBirthEvent creates a birth event for an offspring appended by division.
func NewBirthEvent(tick int32, child components.Cell) Event {
	return Event{Type: EventBirth, Tick: tick, Cell: child}
}

// NewDeathEvent creates a death event for a cell removed by the death check.
func NewDeathEvent(tick int32, cell components.Cell) Event {
	return Event{Type: EventDeath, Tick: tick, Cell: cell}
}

// NewDivisionEvents returns the events produced by one division attempt.
func NewDivisionEvents(tick int32, parent components.Cell, div systems.Division) []Event {
	switch div.Outcome {
	case systems.DivisionBorn:
		events := []Event{NewBirthEvent(tick, div.Child)}
		if div.Mutated {
			events = append(events, Event{Type: EventMutation, Tick: tick, Cell: div.Child})
		}
		return events
	case systems.DivisionBlocked:
		return []Event{{Type: EventDivisionBlocked, Tick: tick, Cell: parent}}
	}
	return nil
}

// NewActionEvent creates the event describing a cell's action for this tick.
func NewActionEvent(tick int32, cell components.Cell, res systems.ActionResult) Event {
	ev := Event{Tick: tick, Cell: cell}
	switch res.Action {
	case systems.ActionPhotosynthesize:
		ev.Type = EventPhotosynthesis
		ev.Amount = res.Gain
	case systems.ActionMove:
		ev.Type = EventMove
		if !res.Moved {
			ev.Type = EventMoveRefused
		}
	default:
		ev.Type = EventIdle
	}
	return ev
}
