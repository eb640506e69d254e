package engine

import (
	"strconv"

	"floatbox/pkg/core"
)

// Parameters returns a readout of the engine configuration and counters.
func (e *Engine) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Boxes",
			Params: []core.Parameter{
				intParam("count", "Boxes", len(e.boxes)),
				floatParam("min_speed", "Min speed", e.cfg.Params.MinSpeed),
				floatParam("max_speed", "Max speed", e.cfg.Params.MaxSpeed),
			},
		},
		{
			Name: "Engine",
			Params: []core.Parameter{
				stringParam("mode", "Color action", string(e.cfg.ColorAction)),
				boolParam("recolor", "Recolor on collision", e.cfg.RecolorOnCollision),
				floatParam("delta_cap", "Delta cap", e.clock.Cap()),
				boolParam("paused", "Paused", e.paused),
			},
		},
		{
			Name: "Container",
			Params: []core.Parameter{
				floatParam("w", "Width", e.bounds.W),
				floatParam("h", "Height", e.bounds.H),
			},
		},
		{
			Name: "Counters",
			Params: []core.Parameter{
				intParam("frames", "Frames", e.frames),
				intParam("collisions", "Collisions", e.collisions),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
