// Package errors provides the structured error type used at the edges of the
// legality service: configuration, dataset loading, request validation and
// transport.
//
// Level-up resolution and level verification never return errors. A query
// outside the known data range is a "not learnable" result and a malformed
// record is a verdict, so batch scans keep going past bad input. Errors from
// this package are for conditions that stop an operation outright.
//
// # Basic Usage
//
//	err := errors.InvalidArgument("creature is required")
//	err := errors.NotFoundf("learnset table %s not found", version)
//
// Adding metadata:
//
//	err := errors.InvalidArgument("unknown table").
//	    WithMeta("version", version.String())
//
// Wrapping keeps the code of an existing *Error:
//
//	if err := repo.Load(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load learnset dataset")
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("generation", gen, 1, 8, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # gRPC
//
// Handlers return errors.ToGRPCError(err). Metadata travels as a
// google.protobuf.Struct status detail and is restored by FromGRPCError on the
// client side.
package errors
