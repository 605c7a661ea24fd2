package structgeo

import errorsmod "cosmossdk.io/errors"

const codespace = "structgeo"

var (
	// ErrValidation signals an input outside its documented domain.
	ErrValidation = errorsmod.Register(codespace, 2, "input outside documented domain")

	// ErrSingularity signals that a stage hit a mathematically undefined
	// point despite valid inputs. No partial or default result is returned.
	ErrSingularity = errorsmod.Register(codespace, 3, "geometric singularity")
)
