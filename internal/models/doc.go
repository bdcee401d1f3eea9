// Package models defines the core domain models for tab splitting.
//
// # Models
//
//   - Participant: a person on a proportional split with a running balance
//   - SplitMode: which calculator a session drives (proportional or even)
//
// Participants are identified by an opaque UUID; names are free text and may
// repeat within one tab.
//
// # Lifecycle
//
// A Participant is created when added to a proportional split. Its balance
// starts at the rounded item price, grows once when tax and tip are applied,
// is rounded up to the cent once during finalization, and the participant is
// discarded on reset.
package models
