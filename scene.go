package main

import (
	"github.com/lixenwraith/colossus/config"
	"github.com/lixenwraith/colossus/engine"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/parameter"
	"github.com/lixenwraith/colossus/spatial"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

// colossusPoints is the authored grip layout, seen from the actor's side (-Z)
var colossusPoints = []host.AttachPoint{
	{Name: "shin", Offset: vmath.Vec3F{X: -1.5, Y: -3, Z: -4}, Forward: vmath.Vec3F{Z: -1}, Radius: 1.5},
	{Name: "belt", Offset: vmath.Vec3F{Y: -0.5, Z: -5}, Forward: vmath.Vec3F{Z: -1}, Radius: 1.5,
		HasSurfaceGrip: true, GripBonusFactor: 2},
	{Name: "chest", Offset: vmath.Vec3F{X: 1, Y: 2, Z: -4.5}, Forward: vmath.Vec3F{Z: -1}, Radius: 1.5},
	{Name: "shoulder", Offset: vmath.Vec3F{X: 3, Y: 3.5, Z: -3}, Forward: vmath.Vec3F{X: 0.3, Z: -1}, Up: vmath.V3FUp, Radius: 1.2,
		RequiresApproach: true, ApproachDirection: vmath.Vec3F{Y: 1}, ApproachToleranceDeg: 60},
	{Name: "crown", Offset: vmath.Vec3F{Y: 4.8, Z: -1.5}, Forward: vmath.Vec3F{Y: 0.4, Z: -1}, Radius: 1,
		IsWeakPoint: true, DamageMultiplier: parameter.WeakPointDamageMultiplier},
}

// colossusPath is a slow loop the host walks when movement is enabled
var colossusPath = []vmath.Vec3F{
	{X: 6},
	{X: 6, Z: 6},
	{X: -6, Z: 6},
	{X: -6},
}

var sceneObstacles = []spatial.Obstacle{
	{Center: vmath.Vec3F{X: -12, Y: -2, Z: -6}, Radius: 2},
	{Center: vmath.Vec3F{X: 12, Y: -3, Z: -4}, Radius: 1.5},
}

// actorStart is just outside the belt point
var actorStart = vmath.Vec3F{Y: -0.5, Z: -6}

// buildScene spawns the demo host, obstacles and one actor
func buildScene(w *engine.World, cfg config.Config) (*host.Host, *traction.Controller) {
	opts := []host.Option{
		host.WithPoints(colossusPoints...),
		host.WithWaypoints(colossusPath...),
	}
	if cfg.Sim.Seed != 0 {
		opts = append(opts, host.WithSeed(cfg.Sim.Seed))
	}
	h := w.SpawnHost(cfg.Host, opts...)

	for _, o := range sceneObstacles {
		w.AddObstacle(o)
	}

	a := w.SpawnActor(cfg.Traction,
		traction.WithPosition(actorStart),
		traction.WithAim(vmath.V3FForward),
	)
	return h, a
}
