package scene

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRadius           = errors.New("scene: sphere radius must be positive")
	ErrInvalidBox              = errors.New("scene: box min corner must not exceed max corner")
	ErrUnresolvedMaterial      = errors.New("scene: primitive references an unregistered material")
	ErrMaterialIndexOutOfRange = errors.New("scene: material index out of range")
	ErrUnknownPrimitive        = errors.New("scene: unknown primitive type")
)

// ValidationError describes a primitive that violates a scene invariant.
type ValidationError struct {
	// Position of the offending primitive in insertion order or -1 if the
	// primitive was rejected before being added.
	Primitive int

	// The primitive type.
	Type PrimitiveType

	Err error
}

func (e *ValidationError) Error() string {
	if e.Primitive < 0 {
		return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Type)
	}
	return fmt.Sprintf("%s (%s #%d)", e.Err.Error(), e.Type, e.Primitive)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
