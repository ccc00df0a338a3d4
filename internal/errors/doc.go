// Package errors carries the game's error taxonomy.
//
// Every failure a player can trigger maps onto one code:
//
//	errors.NotFound("no TAC with that id")             // unknown instance, species, boss, offer
//	errors.PermissionDenied("only the target can accept") // wrong actor, not on allow-list or raid
//	errors.InvalidState("a boss is already active")   // operation not allowed from current state
//	errors.InsufficientResources("not enough gold")   // balance cannot cover a debit
//	errors.Stale("ownership changed")                 // offer preconditions no longer hold
//
// Malformed input uses InvalidArgument and storage failures are Internal.
// The gateway renders any error with PlayerMessage; only codes whose
// Player() is true expose their message.
//
// Wrapping keeps the original code:
//
//	if err := repo.Save(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to save account")
//	}
//
// Config structs validate with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.AccountRepo == nil {
//	    vb.RequiredField("AccountRepo")
//	}
//	return vb.Build()
//
// The admin gRPC surface converts with ToGRPCError and FromGRPCError.
package errors
