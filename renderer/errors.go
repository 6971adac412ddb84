package renderer

import "errors"

var (
	ErrSceneNotDefined  = errors.New("renderer: no scene defined")
	ErrCameraNotDefined = errors.New("renderer: no camera defined")
	ErrInvalidFrameDims = errors.New("renderer: frame dimensions must be positive")
	ErrMissingShaders   = errors.New("renderer: compute, vertex and fragment shader sources are required")
)
