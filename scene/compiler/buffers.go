package compiler

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rsolis096/RealTimeRT/scene"
)

// Counts holds the number of records in each packed array.
type Counts struct {
	Materials int
	Spheres   int
	Boxes     int
	Hittables int
}

// Buffers contains the packed scene records ready for upload.
type Buffers struct {
	Materials []scene.GPUMaterial
	Spheres   []scene.GPUSphere
	Boxes     []scene.GPUBox

	// One entry per scene primitive, in insertion order.
	Hittables []scene.GPUHittable
}

// Get the record counts.
func (b *Buffers) Counts() Counts {
	return Counts{
		Materials: len(b.Materials),
		Spheres:   len(b.Spheres),
		Boxes:     len(b.Boxes),
		Hittables: len(b.Hittables),
	}
}

// Serialize the material records into a tightly packed little endian byte slice.
func (b *Buffers) MaterialBytes() []byte {
	out := make([]byte, len(b.Materials)*scene.SizeofGPUMaterial)
	for index := range b.Materials {
		b.Materials[index].Marshal(out[index*scene.SizeofGPUMaterial:])
	}
	return out
}

// Serialize the sphere records into a tightly packed little endian byte slice.
func (b *Buffers) SphereBytes() []byte {
	out := make([]byte, len(b.Spheres)*scene.SizeofGPUSphere)
	for index := range b.Spheres {
		b.Spheres[index].Marshal(out[index*scene.SizeofGPUSphere:])
	}
	return out
}

// Serialize the box records into a tightly packed little endian byte slice.
func (b *Buffers) BoxBytes() []byte {
	out := make([]byte, len(b.Boxes)*scene.SizeofGPUBox)
	for index := range b.Boxes {
		b.Boxes[index].Marshal(out[index*scene.SizeofGPUBox:])
	}
	return out
}

// Serialize the hittable records into a tightly packed little endian byte slice.
func (b *Buffers) HittableBytes() []byte {
	out := make([]byte, len(b.Hittables)*scene.SizeofGPUHittable)
	for index := range b.Hittables {
		b.Hittables[index].Marshal(out[index*scene.SizeofGPUHittable:])
	}
	return out
}

// Build a tabular representation of the packed buffer sizes.
func (b *Buffers) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Buffer", "Records", "Size"})
	table.Append([]string{"Materials", fmt.Sprint(len(b.Materials)), fmtSize(b.Materials)})
	table.Append([]string{"Spheres", fmt.Sprint(len(b.Spheres)), fmtSize(b.Spheres)})
	table.Append([]string{"Boxes", fmt.Sprint(len(b.Boxes)), fmtSize(b.Boxes)})
	table.Append([]string{"Hittables", fmt.Sprint(len(b.Hittables)), fmtSize(b.Hittables)})
	table.SetFooter([]string{"Total", " ", strings.TrimLeft(fmtSize(b.Materials, b.Spheres, b.Boxes, b.Hittables), " ")})

	table.Render()
	return buf.String()
}

// Sum the total space used by a set of slices and return back a formatted
// value with the appropriate byte/kb/mb unit.
func fmtSize(items ...interface{}) string {
	var totalBytes float32 = 0.0
	for _, item := range items {
		t := reflect.TypeOf(item)
		v := reflect.ValueOf(item)
		if v.Len() == 0 {
			continue
		}

		totalBytes += float32(int(t.Elem().Size()) * v.Len())
	}

	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", int(totalBytes))
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", totalBytes/1e3)
	}
	return fmt.Sprintf("%5.1f mb", totalBytes/1e6)
}
