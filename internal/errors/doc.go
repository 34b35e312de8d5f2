// Package errors provides structured errors for dungeon-tracker.
//
// Every error carries a Code, a message, an optional cause and metadata.
// Codes survive wrapping, so a caller several layers up can still ask what
// kind of failure happened.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.NotFound("dungeon not found")
//	err := errors.InvalidArgumentf("key door %s does not belong to %s", door, dungeonID)
//
// Adding metadata:
//
//	err := errors.Internal("accessibility did not converge").
//	    WithMeta("dungeon_id", string(id)).
//	    WithMeta("passes", passes)
//
// Wrapping errors keeps the code of the cause and a copy of its metadata:
//
//	if err := md.ApplyState(state); err != nil {
//	    return errors.Wrapf(err, "failed to search %s", id)
//	}
//
// Changing error semantics:
//
//	if err := dec.Decode(&s); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid snapshot yaml")
//	}
//
// # Error Checking
//
//	if errors.IsNotFound(err) {
//	    // unknown dungeon or missing snapshot
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
// Config structs validate with the builder; the result is an InvalidArgument
// error whose "validation_errors" metadata maps field names to messages:
//
//	vb := errors.NewValidationBuilder()
//	if c.Factory == nil {
//	    vb.RequiredField("Factory")
//	}
//	return vb.Build()
//
// # Layer-Specific Guidelines
//
// Engine (dungeons):
//   - malformed static tables are Internal and fail factory construction
//   - foreign doors or negative key counts are InvalidArgument, rejected before mutation
//   - a fixed point that does not settle is Internal
//
// Repositories:
//   - missing snapshots are NotFound with the profile in metadata
//   - client failures are Unavailable, context errors go through FromContext
//   - a stored value that no longer decodes is DataLoss
//
// Commands:
//   - Code.ExitCode picks the process exit status
package errors
