package compiler

import (
	"time"

	"github.com/rsolis096/RealTimeRT/log"
	"github.com/rsolis096/RealTimeRT/scene"
)

type bufferCompiler struct {
	sc      *scene.Scene
	buffers *Buffers
	logger  log.Logger
}

// Validate a scene and pack its materials and primitives into the fixed
// layout records consumed by the shading kernel. Records are emitted in
// insertion order. The scene is not modified.
func BuildBuffers(sc *scene.Scene) (*Buffers, error) {
	compiler := &bufferCompiler{
		sc:      sc,
		buffers: &Buffers{},
		logger:  log.New("scene compiler"),
	}

	start := time.Now()
	compiler.logger.Infof("packing scene (%d primitives, %d materials)", sc.Len(), sc.Materials().Len())

	var err error
	err = sc.Validate()
	if err != nil {
		return nil, err
	}

	compiler.packMaterials()
	compiler.packPrimitives()

	compiler.logger.Infof("packed scene in %d ms", time.Since(start).Nanoseconds()/1e6)
	return compiler.buffers, nil
}

func (c *bufferCompiler) packMaterials() {
	materials := c.sc.Materials().All()
	c.buffers.Materials = make([]scene.GPUMaterial, len(materials))
	for index, m := range materials {
		c.buffers.Materials[index] = m.Pack()
	}
}

// Pack primitives into the per-kind arrays. Each primitive also gets a
// hittable record pointing to its slot in the array for its kind.
func (c *bufferCompiler) packPrimitives() {
	prims := c.sc.Primitives()
	c.buffers.Spheres = make([]scene.GPUSphere, 0, c.sc.Count(scene.SpherePrimitive))
	c.buffers.Boxes = make([]scene.GPUBox, 0, c.sc.Count(scene.BoxPrimitive))
	c.buffers.Hittables = make([]scene.GPUHittable, len(prims))

	for index, p := range prims {
		var slot int
		switch p.Type {
		case scene.SpherePrimitive:
			slot = len(c.buffers.Spheres)
			c.buffers.Spheres = append(c.buffers.Spheres, p.Sphere.Pack())
		case scene.BoxPrimitive:
			slot = len(c.buffers.Boxes)
			c.buffers.Boxes = append(c.buffers.Boxes, p.Box.Pack())
		}

		c.buffers.Hittables[index] = scene.GPUHittable{
			Type:  int32(p.Type),
			Index: int32(slot),
		}
	}

	c.logger.Debugf(
		"packed %d spheres, %d boxes and %d hittables",
		len(c.buffers.Spheres), len(c.buffers.Boxes), len(c.buffers.Hittables),
	)
}
