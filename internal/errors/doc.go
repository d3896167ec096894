// Package errors provides the structured error type used across rpg-progression.
//
// Every infrastructure or precondition failure is an *Error carrying a Code, a
// user-facing message, an optional cause and free-form metadata:
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", charID)
//
// Wrapping keeps the code of the wrapped error so repository failures surface
// with their original meaning:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character")
//	}
//
// Domain validation outcomes (theme rules, impact checks) are NOT errors. They
// travel as values in entities.ValidationResult; this package is reserved for
// the faults listed below.
//
// # Layer guidelines
//
// Repository layer:
//   - NotFound / AlreadyExists with the ID in metadata
//   - Aborted when an optimistic transaction keeps conflicting
//
// Orchestrator layer:
//   - InvalidArgument for malformed input
//   - FailedPrecondition for state machine violations
//
// Handler layer:
//   - ToGRPCError at the boundary; metadata rides along as google.rpc.ErrorInfo
//
// Configuration structs validate themselves with ValidationBuilder.
package errors
