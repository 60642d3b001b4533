package levels

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Level is the declarative description of one puzzle stage. Geometry is in
// pixels, top-left origin. Every puzzle mechanism lives in Elements, keyed
// by Kind; the build factory matches the closed kind set and skips unknown
// kinds with a log line instead of failing the load.
type Level struct {
	Name   string      `yaml:"name"`
	Spawn  PointSpec   `yaml:"spawn"`
	Player PlayerSpec  `yaml:"player"`
	Script string      `yaml:"script"`
	Next   string      `yaml:"next"`

	Platforms []RectSpec    `yaml:"platforms"`
	Elements  []ElementSpec `yaml:"elements"`
	Spikes    []RectSpec    `yaml:"spikes"`
	Enemies   []EnemySpec   `yaml:"enemies"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PlayerSpec struct {
	MoveSpeed float64 `yaml:"move_speed"`
	JumpSpeed float64 `yaml:"jump_speed"`
	Generator string  `yaml:"generator"`
}

type EnemySpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	W      float64 `yaml:"w"`
	H      float64 `yaml:"h"`
	MinX   float64 `yaml:"min_x"`
	MaxX   float64 `yaml:"max_x"`
	Speed  float64 `yaml:"speed"`
}

// ElementKind is the closed set of puzzle element kinds.
type ElementKind string

const (
	KindDoor        ElementKind = "door"
	KindElevator    ElementKind = "elevator"
	KindDrawbridge  ElementKind = "drawbridge"
	KindPushBlock   ElementKind = "block"
	KindTrigger     ElementKind = "trigger"
	KindTriggerZone ElementKind = "trigger_zone"
	KindGenerator   ElementKind = "generator"
	KindTerminal    ElementKind = "terminal"
)

// ElementSpec is the field superset across element kinds; each kind reads
// the slice it cares about.
type ElementSpec struct {
	Kind ElementKind `yaml:"kind"`
	ID   string      `yaml:"id"`
	X    float64     `yaml:"x"`
	Y    float64     `yaml:"y"`

	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// door
	Direction string  `yaml:"direction"` // up or down
	Range     float64 `yaml:"range"`
	Speed     float64 `yaml:"speed"` // also elevator px/s and bridge deg/s

	// elevator
	EndY    float64 `yaml:"end_y"`
	PauseMs float64 `yaml:"pause_ms"`

	// drawbridge
	Length float64 `yaml:"length"`
	// hang direction: left or right of pivot

	// block
	Size float64 `yaml:"size"`

	// trigger
	TriggerType string   `yaml:"trigger_type"` // pressurePlate, switch, lever
	ConnectedTo []string `yaml:"connected_to"`

	// trigger zone
	Generator string `yaml:"generator"`
	Once      bool   `yaml:"once"`

	// generator
	Primary      bool     `yaml:"primary"`
	Goal         bool     `yaml:"goal"`
	Links        []string `yaml:"links"`
	AutoActivate []string `yaml:"auto_activate"`

	// terminal
	LinkTo    string  `yaml:"link_to"`
	PlugRange float64 `yaml:"plug_range"`
}

// LoadLevel reads and validates a level by file name (disk first, embedded
// fallback).
func LoadLevel(name string) (*Level, error) {
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	return ParseLevel(data)
}

// ParseLevel unmarshals a level document and applies defaults.
func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := yaml.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal: %w", err)
	}
	lvl.applyDefaults()
	return &lvl, nil
}

func (l *Level) applyDefaults() {
	if l.Player.MoveSpeed <= 0 {
		l.Player.MoveSpeed = 240
	}
	if l.Player.JumpSpeed <= 0 {
		l.Player.JumpSpeed = 620
	}
	for i := range l.Elements {
		el := &l.Elements[i]
		if el.ID == "" {
			// generated fallback identity, unique within the level
			el.ID = fmt.Sprintf("%s_%d", el.Kind, i)
		}
		switch el.Kind {
		case KindDoor:
			if el.Speed <= 0 {
				el.Speed = 120
			}
			if el.Direction == "" {
				el.Direction = "up"
			}
			if el.Width <= 0 {
				el.Width = 32
			}
			if el.Height <= 0 {
				el.Height = 128
			}
		case KindElevator:
			if el.Speed <= 0 {
				el.Speed = 100
			}
			if el.PauseMs <= 0 {
				el.PauseMs = 1000
			}
			if el.Width <= 0 {
				el.Width = 96
			}
			if el.Height <= 0 {
				el.Height = 16
			}
		case KindDrawbridge:
			if el.Speed <= 0 {
				el.Speed = 90
			}
			if el.Length <= 0 {
				el.Length = 128
			}
			if el.Direction == "" {
				el.Direction = "right"
			}
		case KindPushBlock:
			if el.Size <= 0 {
				el.Size = 32
			}
		case KindTrigger:
			if el.TriggerType == "" {
				el.TriggerType = "pressurePlate"
			}
			if el.Width <= 0 {
				el.Width = 32
			}
			if el.Height <= 0 {
				el.Height = 8
			}
		case KindTriggerZone:
			if el.Width <= 0 {
				el.Width = 64
			}
			if el.Height <= 0 {
				el.Height = 64
			}
		case KindTerminal:
			if el.PlugRange <= 0 {
				el.PlugRange = 96
			}
		}
	}
}
