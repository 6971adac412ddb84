package opengl

import "errors"

var (
	ErrNoShaderSources  = errors.New("opengl tracer: no shader sources supplied")
	ErrNoSceneData      = errors.New("opengl tracer: no scene data uploaded")
	ErrNotInitialized   = errors.New("opengl tracer: tracer not initialized")
	ErrInvalidFrameDims = errors.New("opengl tracer: frame dimensions must be positive")
)
