package opengl

import (
	"bytes"
	"fmt"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/olekukonko/tablewriter"
)

// Information about the GL implementation backing the current context.
type DeviceInfo struct {
	Version     string
	GLSLVersion string
	Vendor      string
	Renderer    string

	// Compute limits.
	MaxWorkGroupCount       [3]int32
	MaxWorkGroupSize        [3]int32
	MaxWorkGroupInvocations int32
	MaxStorageBlockSize     int32
}

// Query the current GL context. gl.Init must have been called.
func GetDeviceInfo() DeviceInfo {
	info := DeviceInfo{
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
	}

	for axis := uint32(0); axis < 3; axis++ {
		gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_COUNT, axis, &info.MaxWorkGroupCount[axis])
		gl.GetIntegeri_v(gl.MAX_COMPUTE_WORK_GROUP_SIZE, axis, &info.MaxWorkGroupSize[axis])
	}
	gl.GetIntegerv(gl.MAX_COMPUTE_WORK_GROUP_INVOCATIONS, &info.MaxWorkGroupInvocations)
	gl.GetIntegerv(gl.MAX_SHADER_STORAGE_BLOCK_SIZE, &info.MaxStorageBlockSize)

	return info
}

// Check that the device can run the tracing kernel.
func (info DeviceInfo) SupportsKernel() bool {
	return info.MaxWorkGroupSize[0] >= workGroupSize &&
		info.MaxWorkGroupSize[1] >= workGroupSize &&
		info.MaxWorkGroupInvocations >= workGroupSize*workGroupSize
}

// Build a tabular representation of the device info.
func (info DeviceInfo) String() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})
	table.Append([]string{"Version", info.Version})
	table.Append([]string{"GLSL version", info.GLSLVersion})
	table.Append([]string{"Vendor", info.Vendor})
	table.Append([]string{"Renderer", info.Renderer})
	table.Append([]string{"Max work groups", fmtVec3i(info.MaxWorkGroupCount)})
	table.Append([]string{"Max work group size", fmtVec3i(info.MaxWorkGroupSize)})
	table.Append([]string{"Max invocations", fmt.Sprint(info.MaxWorkGroupInvocations)})
	table.Append([]string{"Max storage block", fmt.Sprintf("%d bytes", info.MaxStorageBlockSize)})
	table.SetFooter([]string{"Kernel supported", fmt.Sprintf("%t", info.SupportsKernel())})

	table.Render()
	return buf.String()
}

func fmtVec3i(v [3]int32) string {
	return fmt.Sprintf("%d x %d x %d", v[0], v[1], v[2])
}
