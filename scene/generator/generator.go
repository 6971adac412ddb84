package generator

import (
	"math/rand"
	"time"

	"github.com/rsolis096/RealTimeRT/log"
	"github.com/rsolis096/RealTimeRT/scene"
	"github.com/rsolis096/RealTimeRT/types"
)

// RandomSource provides uniformly distributed values in [0, 1). A *rand.Rand
// satisfies this interface.
type RandomSource interface {
	Float32() float32
}

// Create a random source seeded with the given value.
func NewRandomSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Options controls the layout and material mix of generated scenes.
type Options struct {
	// Small spheres are placed on the cells of the [GridMin, GridMax) grid
	// on the XZ plane.
	GridMin int
	GridMax int

	// Maximum random offset added to each cell position.
	Jitter float32

	// Height and radius of the small spheres.
	Height      float32
	SmallRadius float32

	// Cells whose center falls within ExclusionRadius of HeroPosition are
	// left empty.
	HeroPosition    types.Vec3
	ExclusionRadius float32

	// Material selection bands. Draws below DiffuseBand produce diffuse
	// materials, draws below MetalBand produce metals and the rest glass.
	DiffuseBand float32
	MetalBand   float32
	GlassIOR    float32

	// The ground sphere.
	GroundCenter types.Vec3
	GroundRadius float32
	GroundAlbedo types.Vec3

	// Chance that a non-empty cell gets a cube instead of a sphere. No
	// extra random values are drawn when this is zero.
	BoxChance float32
}

// Get the default generator options.
func DefaultOptions() Options {
	return Options{
		GridMin:         -4,
		GridMax:         4,
		Jitter:          0.9,
		Height:          0.2,
		SmallRadius:     0.2,
		HeroPosition:    types.XYZ(4, 0.2, 0),
		ExclusionRadius: 0.9,
		DiffuseBand:     0.8,
		MetalBand:       0.95,
		GlassIOR:        1.5,
		GroundCenter:    types.XYZ(0, -1000, 0),
		GroundRadius:    1000,
		GroundAlbedo:    types.Splat3(0.5),
		BoxChance:       0,
	}
}

type hero struct {
	center   types.Vec3
	material scene.Material
}

// The showcase spheres appended after the grid.
var heroes = []hero{
	{types.XYZ(0, 1, 0), scene.MakeGlass(1.5)},
	{types.XYZ(-4, 1, 0), scene.MakeDiffuse(types.XYZ(0.4, 0.2, 0.1))},
	{types.XYZ(4, 1, 0), scene.MakeMetal(types.XYZ(0.7, 0.6, 0.5), 0)},
}

const heroRadius float32 = 1.0

type builder struct {
	sc     *scene.Scene
	rng    RandomSource
	opts   Options
	logger log.Logger
}

// Populate sc with a ground sphere, a jittered grid of small primitives with
// random materials and the three hero spheres, in that order.
func Build(sc *scene.Scene, rng RandomSource, opts Options) error {
	b := &builder{
		sc:     sc,
		rng:    rng,
		opts:   opts,
		logger: log.New("scene generator"),
	}

	start := time.Now()
	b.logger.Infof("generating scene (grid [%d, %d))", opts.GridMin, opts.GridMax)

	var err error
	if err = b.addGround(); err != nil {
		return err
	}

	if err = b.addGrid(); err != nil {
		return err
	}

	if err = b.addHeroes(); err != nil {
		return err
	}

	b.logger.Infof(
		"generated %d primitives and %d materials in %d ms",
		sc.Len(), sc.Materials().Len(), time.Since(start).Nanoseconds()/1e6,
	)
	return nil
}

// Create a scene that only contains the ground sphere.
func GroundOnly() (*scene.Scene, error) {
	sc := scene.NewScene()
	b := &builder{sc: sc, opts: DefaultOptions()}

	if err := b.addGround(); err != nil {
		return nil, err
	}
	return sc, nil
}

// Create a new randomly populated scene.
func RandomScene(rng RandomSource, opts Options) (*scene.Scene, error) {
	sc := scene.NewScene()
	if err := Build(sc, rng, opts); err != nil {
		return nil, err
	}
	return sc, nil
}

func (b *builder) addGround() error {
	mat := b.sc.AddMaterial(scene.MakeDiffuse(b.opts.GroundAlbedo))
	_, err := b.sc.AddSphere(scene.NewSphere(b.opts.GroundCenter, b.opts.GroundRadius, scene.MaterialIndex(mat)))
	return err
}

func (b *builder) addGrid() error {
	opts := b.opts
	skipped := 0
	for cx := opts.GridMin; cx < opts.GridMax; cx++ {
		for cz := opts.GridMin; cz < opts.GridMax; cz++ {
			center := types.XYZ(
				float32(cx)+opts.Jitter*b.rng.Float32(),
				opts.Height,
				float32(cz)+opts.Jitter*b.rng.Float32(),
			)

			if center.Sub(opts.HeroPosition).Len() <= opts.ExclusionRadius {
				skipped++
				continue
			}

			ref := scene.EmbeddedMaterial(b.randomMaterial())

			var err error
			if opts.BoxChance > 0 && b.rng.Float32() < opts.BoxChance {
				_, err = b.sc.AddBox(scene.NewCube(center, opts.SmallRadius, ref))
			} else {
				_, err = b.sc.AddSphere(scene.NewSphere(center, opts.SmallRadius, ref))
			}
			if err != nil {
				return err
			}
		}
	}

	b.logger.Debugf("skipped %d grid cells near the hero position", skipped)
	return nil
}

func (b *builder) addHeroes() error {
	for _, h := range heroes {
		if _, err := b.sc.AddSphere(scene.NewSphere(h.center, heroRadius, scene.EmbeddedMaterial(h.material))); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) randomMaterial() scene.Material {
	choice := b.rng.Float32()
	switch {
	case choice < b.opts.DiffuseBand:
		return scene.MakeDiffuse(b.randomVec(0, 1).MulVec(b.randomVec(0, 1)))
	case choice < b.opts.MetalBand:
		albedo := b.randomVec(0.5, 1)
		return scene.MakeMetal(albedo, b.randomRange(0, 0.5))
	default:
		return scene.MakeGlass(b.opts.GlassIOR)
	}
}

// Get a random value in [min, max).
func (b *builder) randomRange(min, max float32) float32 {
	return min + (max-min)*b.rng.Float32()
}

func (b *builder) randomVec(min, max float32) types.Vec3 {
	return types.XYZ(
		b.randomRange(min, max),
		b.randomRange(min, max),
		b.randomRange(min, max),
	)
}
