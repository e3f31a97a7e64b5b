/**
 * @description
 * Typed errors for the orchestration layer. Two of the four failure classes the
 * gateway distinguishes live here: ValidationError (required-field and range
 * checks that fail before any network call) and StateError (an action attempted
 * against an entity whose cached lifecycle state forbids it). The remaining two,
 * service and network failures, are raised by pkg/marketclient.
 */

package app

import (
	"fmt"
	"strings"
)

// ValidationError reports caller input rejected before any request was issued.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func newValidationError(reason string, fields ...string) error {
	return &ValidationError{Fields: fields, Reason: reason}
}

// StateError reports an action incompatible with an entity's lifecycle state,
// judged against the cached snapshot. The remote service remains the final
// authority; this is the client refusing to send a request it knows is wrong.
type StateError struct {
	Entity string
	ID     int64
	Reason string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Entity, e.ID, e.Reason)
}

func newStateError(entity string, id int64, reason string) error {
	return &StateError{Entity: entity, ID: id, Reason: reason}
}
