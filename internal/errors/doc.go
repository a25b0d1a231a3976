// Package errors provides structured errors for the edges of the randomizer:
// configuration, catalog loading, profile storage and the command line.
//
// The selection engines never fail; everything that can is wrapped here
// with a code, a message and optional metadata.
//
// Creating errors:
//
//	err := errors.NotFound("profile not found").WithMeta("profile_id", id)
//	err := errors.InvalidArgumentf("unknown direction %q", raw)
//
// Wrapping keeps the code of an existing *Error and defaults to Internal
// for anything else:
//
//	if err := yaml.Unmarshal(data, &doc); err != nil {
//	    return errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog is not valid yaml")
//	}
//
// Config validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	if cfg.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
//
// The command line turns a code into a process exit status with
// Code.ExitCode.
package errors
