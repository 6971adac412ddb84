package cmd

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/rsolis096/RealTimeRT/tracer/opengl"
	"github.com/urfave/cli"
)

// Display the capabilities of the opengl device.
func ListDevices(ctx *cli.Context) error {
	if _, err := loadConfig(ctx); err != nil {
		return err
	}

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize glfw: %s", err.Error())
	}
	defer glfw.Terminate()

	// A context is needed to query the device so create a hidden window.
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(1, 1, "device-info", nil, nil)
	if err != nil {
		return fmt.Errorf("could not create opengl context: %s", err.Error())
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err = gl.Init(); err != nil {
		return fmt.Errorf("could not init opengl: %s", err.Error())
	}

	info := opengl.GetDeviceInfo()
	logger.Noticef("opengl device:\n%s", info)
	if !info.SupportsKernel() {
		logger.Warning("device does not meet the requirements of the tracing kernel")
	}

	return nil
}
