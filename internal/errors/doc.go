// Package errors provides the structured error type used across rpg-inventory.
//
// Every failure surfaced by the item model, the codec and the repositories is
// an *Error carrying a Code, a caller-facing message, an optional cause and
// free-form metadata.
//
// # Item model taxonomy
//
//   - UnknownRarity: a rarity outside common/uncommon/epic/legendary
//   - UnknownVariant: a persisted type tag with no registered constructor
//   - MalformedRecord: a persisted record missing a required field
//   - IOFailure: the sink or source could not be opened, read or written
//
// Creating errors:
//
//	err := errors.UnknownRarity("mythic")
//	err := errors.NotFoundf("%s is not in the inventory.", name)
//
// Wrapping keeps the code of the innermost *Error:
//
//	if err := codec.Save(inv, f); err != nil {
//	    return errors.Wrapf(err, "failed to save inventory to %s", path)
//	}
//
// Checking:
//
//	if errors.IsUnknownVariant(err) {
//	    tag := errors.GetMeta(err)["type_tag"]
//	}
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("path", input.Path, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
