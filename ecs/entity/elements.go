package entity

import (
	"image/color"

	"github.com/milk9111/tethered/ecs"
	"github.com/milk9111/tethered/ecs/component"
	"github.com/milk9111/tethered/levels"
)

// Flat placeholder palette, one color per element family.
var (
	colPlatform = color.RGBA{R: 0x4a, G: 0x4a, B: 0x55, A: 0xff}
	colDoor     = color.RGBA{R: 0xb8, G: 0x6f, B: 0x2e, A: 0xff}
	colElevator = color.RGBA{R: 0x5a, G: 0x8a, B: 0xd6, A: 0xff}
	colBridge   = color.RGBA{R: 0x8a, G: 0x5a, B: 0x2e, A: 0xff}
	colBlock    = color.RGBA{R: 0x9a, G: 0x86, B: 0x5c, A: 0xff}
	colTrigger  = color.RGBA{R: 0xd6, G: 0xc0, B: 0x3a, A: 0xff}
	colZone     = color.RGBA{R: 0x3a, G: 0xd6, B: 0x8a, A: 0x40}
	colGen      = color.RGBA{R: 0x3a, G: 0xd6, B: 0xd6, A: 0xff}
	colTerminal = color.RGBA{R: 0x6a, G: 0x3a, B: 0xd6, A: 0xff}
	colPlayer   = color.RGBA{R: 0xe8, G: 0xe8, B: 0xf0, A: 0xff}
	colSpike    = color.RGBA{R: 0xd6, G: 0x3a, B: 0x3a, A: 0xff}
	colEnemy    = color.RGBA{R: 0xa0, G: 0x20, B: 0x50, A: 0xff}
)

// NewPlatform adds one static slab of level geometry.
func NewPlatform(w *ecs.World, pw *ecs.PhysicsWorld, r levels.RectSpec) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyStatic,
		Width:  r.W,
		Height: r.H,
	})
	addSprite(w, e, r.W, r.H, colPlatform, 0)
	if pw != nil {
		pw.AddStatic(e, r.X, r.Y, r.W, r.H)
	}
	return e
}

func NewSpike(w *ecs.World, pw *ecs.PhysicsWorld, r levels.RectSpec) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y})
	_ = ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Width: r.W, Height: r.H})
	addSprite(w, e, r.W, r.H, colSpike, 1)
	if pw != nil {
		pw.AddSensor(e, r.X, r.Y, r.W, r.H)
	}
	return e
}

func NewEnemy(w *ecs.World, spec levels.EnemySpec) ecs.Entity {
	width, height := spec.W, spec.H
	if width <= 0 {
		width = 28
	}
	if height <= 0 {
		height = 28
	}
	speed := spec.Speed
	if speed <= 0 {
		speed = 60
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: spec.X, Y: spec.Y})
	_ = ecs.Add(w, e, component.EnemyComponent.Kind(), &component.Enemy{
		MinX:  spec.MinX,
		MaxX:  spec.MaxX,
		Speed: speed,
		Dir:   1,
	})
	_ = ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Width: width, Height: height})
	addSprite(w, e, width, height, colEnemy, 2)
	return e
}

// NewPlayer spawns the avatar at the level spawn point with a dynamic body.
func NewPlayer(w *ecs.World, pw *ecs.PhysicsWorld, lvl *levels.Level) ecs.Entity {
	const playerW, playerH = 24.0, 48.0
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: lvl.Spawn.X, Y: lvl.Spawn.Y})
	_ = ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:   lvl.Player.MoveSpeed,
		JumpSpeed:   lvl.Player.JumpSpeed,
		SpawnX:      lvl.Spawn.X,
		SpawnY:      lvl.Spawn.Y,
		GeneratorID: lvl.Player.Generator,
	})
	_ = ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyDynamic,
		Width:  playerW,
		Height: playerH,
		Mass:   1,
	})
	addSprite(w, e, playerW, playerH, colPlayer, 3)
	if pw != nil {
		pw.AddDynamic(e, lvl.Spawn.X, lvl.Spawn.Y, playerW, playerH, 1, false)
	}
	return e
}

// NewDoor builds a slide door closed at its placed position. The open resting
// Y is the closed Y shifted by range along the slide direction.
func NewDoor(w *ecs.World, pw *ecs.PhysicsWorld, spec levels.ElementSpec) (ecs.Entity, error) {
	openY := spec.Y - spec.Range
	if spec.Direction == "down" {
		openY = spec.Y + spec.Range
	}
	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.DoorComponent.Kind(), &component.Door{
		ClosedY:    spec.Y,
		OpenY:      openY,
		SlideSpeed: spec.Speed,
		State:      component.DoorClosed,
	})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyKinematic,
		Width:  spec.Width,
		Height: spec.Height,
	})
	addSprite(w, e, spec.Width, spec.Height, colDoor, 1)
	if pw != nil {
		pw.AddKinematic(e, spec.X, spec.Y, spec.Width, spec.Height)
	}
	return e, nil
}

// NewElevator builds a platform resting at its start Y.
func NewElevator(w *ecs.World, pw *ecs.PhysicsWorld, spec levels.ElementSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.ElevatorComponent.Kind(), &component.Elevator{
		StartY:  spec.Y,
		EndY:    spec.EndY,
		Speed:   spec.Speed,
		PauseMs: spec.PauseMs,
		State:   component.ElevatorAtStart,
	})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyKinematic,
		Width:  spec.Width,
		Height: spec.Height,
	})
	addSprite(w, e, spec.Width, spec.Height, colElevator, 1)
	if pw != nil {
		pw.AddKinematic(e, spec.X, spec.Y, spec.Width, spec.Height)
	}
	return e, nil
}

// NewDrawbridge builds a plank hanging closed from its pivot plus the fixed
// footprint body spanning the open position, disabled until the first open
// completes.
func NewDrawbridge(w *ecs.World, pw *ecs.PhysicsWorld, spec levels.ElementSpec) (ecs.Entity, error) {
	const footprintH = 8.0
	closedAngle := 90.0
	footX := spec.X
	if spec.Direction == "left" {
		closedAngle = -90.0
		footX = spec.X - spec.Length
	}

	foot := ecs.CreateEntity(w)
	_ = ecs.Add(w, foot, component.TransformComponent.Kind(), &component.Transform{X: footX, Y: spec.Y})
	_ = ecs.Add(w, foot, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:   component.BodyStatic,
		Width:  spec.Length,
		Height: footprintH,
	})
	if pw != nil {
		pw.AddStatic(foot, footX, spec.Y, spec.Length, footprintH)
		pw.SetFootprintEnabled(foot, false)
	}

	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.DrawbridgeComponent.Kind(), &component.Drawbridge{
		PivotX:      spec.X,
		PivotY:      spec.Y,
		Length:      spec.Length,
		ClosedAngle: closedAngle,
		Speed:       spec.Speed,
		Angle:       closedAngle,
		State:       component.BridgeClosed,
		Footprint:   component.Entity(foot),
	})
	addSprite(w, e, spec.Length, footprintH, colBridge, 1)
	return e, nil
}

// NewPushBlock builds a crate in background mode: dynamic body, sides
// transparent to the player, top always walkable.
func NewPushBlock(w *ecs.World, pw *ecs.PhysicsWorld, spec levels.ElementSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.PushBlockComponent.Kind(), &component.PushBlock{Size: spec.Size})
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Kind:    component.BodyDynamic,
		Width:   spec.Size,
		Height:  spec.Size,
		Mass:    4,
		TopOnly: true,
	})
	addSprite(w, e, spec.Size, spec.Size, colBlock, 1)
	if pw != nil {
		pw.AddDynamic(e, spec.X, spec.Y, spec.Size, spec.Size, 4, true)
	}
	return e, nil
}

func NewTrigger(w *ecs.World, spec levels.ElementSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.TriggerComponent.Kind(), &component.Trigger{
		Type:         component.TriggerType(spec.TriggerType),
		ConnectedIDs: spec.ConnectedTo,
		Width:        spec.Width,
		Height:       spec.Height,
	})
	addSprite(w, e, spec.Width, spec.Height, colTrigger, 1)
	return e, nil
}

func NewTriggerZone(w *ecs.World, spec levels.ElementSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.TriggerZoneComponent.Kind(), &component.TriggerZone{
		Width:             spec.Width,
		Height:            spec.Height,
		TargetGeneratorID: spec.Generator,
		OnceOnly:          spec.Once,
		Enabled:           true,
	})
	addSprite(w, e, spec.Width, spec.Height, colZone, 0)
	return e, nil
}

func NewGenerator(w *ecs.World, spec levels.ElementSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.GeneratorComponent.Kind(), &component.Generator{
		Primary:         spec.Primary,
		Goal:            spec.Goal,
		LinkIDs:         spec.Links,
		AutoActivateIDs: spec.AutoActivate,
	})
	addSprite(w, e, 40, 48, colGen, 1)
	return e, nil
}

func NewTerminal(w *ecs.World, spec levels.ElementSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := addCore(w, e, spec.ID, spec.X, spec.Y); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.TerminalComponent.Kind(), &component.Terminal{
		LinkTo: spec.LinkTo,
		Range:  spec.PlugRange,
	})
	addSprite(w, e, 16, 32, colTerminal, 1)
	return e, nil
}
