package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/tethered/ecs"
)

const signalDispatchScript = `
onSignal(__signal, __element, __target)
`

// ScriptSystem runs a level's optional tengo hook script against every
// puzzle signal drained this tick. The script defines onSignal(name,
// element, target); errors are logged and swallowed, so a broken hook script
// must not take the simulation down with it.
type ScriptSystem struct {
	compiled *tengo.Compiled
	pending  []ecs.Event
}

// NewScriptSystem compiles the hook source. An empty source yields an
// inert system.
func NewScriptSystem(source []byte, signals *SignalSystem) (*ScriptSystem, error) {
	s := &ScriptSystem{}
	if len(source) == 0 {
		return s, nil
	}

	src := append(append([]byte{}, source...), []byte("\n"+signalDispatchScript)...)
	script := tengo.NewScript(src)
	_ = script.Add("__signal", "")
	_ = script.Add("__element", "")
	_ = script.Add("__target", "")
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile hooks: %w", err)
	}
	s.compiled = compiled

	if signals != nil {
		signals.Observe(func(evt ecs.Event) {
			s.pending = append(s.pending, evt)
		})
	}
	return s, nil
}

func (s *ScriptSystem) Update(w *ecs.World) {
	if s == nil || s.compiled == nil || len(s.pending) == 0 {
		s.drop()
		return
	}

	events := s.pending
	s.pending = nil
	for _, evt := range events {
		c := s.compiled.Clone()
		_ = c.Set("__signal", evt.Type)
		_ = c.Set("__element", evt.ElementID)
		_ = c.Set("__target", evt.TargetID)
		if err := c.Run(); err != nil {
			log.Printf("script: onSignal(%s, %s): %v", evt.Type, evt.ElementID, err)
		}
	}
}

func (s *ScriptSystem) drop() {
	if s != nil {
		s.pending = nil
	}
}
