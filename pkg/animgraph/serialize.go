package animgraph

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/animcore/pkg/resourceio"
)

const (
	docType    = "StateMachine"
	docVersion = "1.0"
)

type paramDoc struct {
	Name         string      `json:"name"`
	Type         int         `json:"type"`
	DefaultValue interface{} `json:"default_value"`
}

type conditionDoc struct {
	ParameterName string      `json:"parameter_name"`
	Operator      int         `json:"operator"`
	Value         interface{} `json:"value"`
}

type stateDoc struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	AnimationClip string     `json:"animation_clip"`
	Speed         float64    `json:"speed"`
	Looping       bool       `json:"looping"`
	Position      [2]float64 `json:"position"`
}

type transitionDoc struct {
	ID                  uuid.UUID      `json:"id"`
	FromState           string         `json:"from_state"`
	ToState             string         `json:"to_state"`
	TransitionDuration  float64        `json:"transition_duration"`
	ExitTime            float64        `json:"exit_time"`
	HasExitTime         bool           `json:"has_exit_time"`
	CanTransitionToSelf bool           `json:"can_transition_to_self"`
	Conditions          []conditionDoc `json:"conditions"`
}

type layerDoc struct {
	Name         string          `json:"name"`
	Weight       float64         `json:"weight"`
	Additive     bool            `json:"additive"`
	DefaultState string          `json:"default_state"`
	States       []stateDoc      `json:"states"`
	Transitions  []transitionDoc `json:"transitions"`
}

type resourceDoc struct {
	Type       string     `json:"type"`
	Version    string     `json:"version"`
	Parameters []paramDoc `json:"parameters"`
	Layers     []layerDoc `json:"layers"`
}

// Load reads a state-machine resource document from path.
func Load(path string) (*Resource, error) {
	return LoadWithLogger(path, nil)
}

// LoadWithLogger reads a state-machine resource document from path,
// logging dropped references through logger (which may be nil).
func LoadWithLogger(path string, logger *logrus.Logger) (*Resource, error) {
	var entry *logrus.Entry
	if logger != nil {
		entry = logger.WithField("component", "animgraph")
	}

	var doc resourceDoc
	if err := resourceio.NewLoader(logger).Load(path, &doc); err != nil {
		if errors.Is(err, resourceio.ErrNotFound) {
			return nil, fmt.Errorf("animgraph: load %s: %w", path, ErrFileNotFound)
		}
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
			return nil, fmt.Errorf("animgraph: load %s: %w: %v", path, ErrInvalidFormat, err)
		}
		return nil, err
	}
	if doc.Type != docType {
		return nil, fmt.Errorf("animgraph: load %s: %w: unrecognised type %q", path, ErrInvalidFormat, doc.Type)
	}

	return decodeResource(&doc, entry)
}

func decodeResource(doc *resourceDoc, logger *logrus.Entry) (*Resource, error) {
	r := NewResource()

	for _, pd := range doc.Parameters {
		kind := ParameterKind(pd.Type)
		if kind < Bool || kind > Trigger {
			return nil, fmt.Errorf("animgraph: %w: unknown parameter type %d", ErrInvalidFormat, pd.Type)
		}
		value, err := decodeParameterValue(kind, pd.DefaultValue)
		if err != nil {
			return nil, fmt.Errorf("animgraph: parameter %q: %w", pd.Name, err)
		}
		r.AddParameter(Parameter{Name: pd.Name, Kind: kind, DefaultValue: value})
	}

	for _, ld := range doc.Layers {
		layer := Layer{
			Name:         ld.Name,
			Weight:       ld.Weight,
			Additive:     ld.Additive,
			DefaultState: ld.DefaultState,
		}

		for _, sd := range ld.States {
			layer.States = append(layer.States, State{
				ID:             sd.ID,
				Name:           sd.Name,
				AnimationClip:  sd.AnimationClip,
				Speed:          sd.Speed,
				Looping:        sd.Looping,
				EditorPosition: sd.Position,
			})
		}

		if layer.DefaultState != "" {
			if _, ok := layer.StateByName(layer.DefaultState); !ok {
				if logger != nil {
					logger.WithFields(logrus.Fields{"layer": layer.Name, "default_state": layer.DefaultState}).
						Warn("default_state references a missing state, clearing")
				}
				layer.DefaultState = ""
			}
		}

		for _, td := range ld.Transitions {
			t := Transition{
				ID:                  td.ID,
				FromState:           td.FromState,
				ToState:             td.ToState,
				TransitionDuration:  td.TransitionDuration,
				ExitTime:            td.ExitTime,
				HasExitTime:         td.HasExitTime,
				CanTransitionToSelf: td.CanTransitionToSelf,
			}

			for _, cd := range td.Conditions {
				param, ok := r.Parameters[cd.ParameterName]
				if !ok {
					if logger != nil {
						logger.WithField("parameter", cd.ParameterName).Warn("condition references unknown parameter, dropping")
					}
					continue
				}
				op := ComparisonOperator(cd.Operator)
				if op < Eq || op > Le {
					if logger != nil {
						logger.WithField("operator", cd.Operator).Warn("condition references unknown operator, dropping")
					}
					continue
				}
				value, err := decodeParameterValue(param.Kind, cd.Value)
				if err != nil {
					if logger != nil {
						logger.WithField("parameter", cd.ParameterName).Warn("condition value kind mismatch, dropping")
					}
					continue
				}
				t.Conditions = append(t.Conditions, TransitionCondition{
					ParameterName: cd.ParameterName,
					Operator:      op,
					CompareValue:  value,
				})
			}

			layer.Transitions = append(layer.Transitions, t)
		}

		r.AddLayer(layer)
	}

	return r, nil
}

func decodeParameterValue(kind ParameterKind, raw interface{}) (ParameterValue, error) {
	switch kind {
	case Bool, Trigger:
		b, ok := raw.(bool)
		if !ok {
			return ParameterValue{}, ErrInvalidFormat
		}
		return ParameterValue{Kind: kind, BoolValue: b}, nil
	case Int:
		f, ok := raw.(float64)
		if !ok {
			return ParameterValue{}, ErrInvalidFormat
		}
		return ParameterValue{Kind: Int, IntValue: int(f)}, nil
	case Float:
		f, ok := raw.(float64)
		if !ok {
			return ParameterValue{}, ErrInvalidFormat
		}
		return ParameterValue{Kind: Float, FloatValue: f}, nil
	default:
		return ParameterValue{}, ErrInvalidFormat
	}
}

// Save writes resource to path as a pretty-printed, versioned JSON document.
func Save(path string, resource *Resource) error {
	return SaveWithLogger(path, resource, nil)
}

// SaveWithLogger writes resource to path, logging through logger (which may
// be nil).
func SaveWithLogger(path string, resource *Resource, logger *logrus.Logger) error {
	doc := encodeResource(resource)
	return resourceio.NewLoader(logger).Save(path, &doc)
}

func encodeResource(r *Resource) resourceDoc {
	doc := resourceDoc{Type: docType, Version: docVersion}

	for _, name := range r.ParameterNames() {
		p := r.Parameters[name]
		doc.Parameters = append(doc.Parameters, paramDoc{
			Name:         p.Name,
			Type:         int(p.Kind),
			DefaultValue: encodeParameterValue(p.DefaultValue),
		})
	}

	for _, name := range r.LayerNames() {
		layer := r.Layers[name]
		ld := layerDoc{
			Name:         layer.Name,
			Weight:       layer.Weight,
			Additive:     layer.Additive,
			DefaultState: layer.DefaultState,
		}
		for _, s := range layer.States {
			ld.States = append(ld.States, stateDoc{
				ID:            s.ID,
				Name:          s.Name,
				AnimationClip: s.AnimationClip,
				Speed:         s.Speed,
				Looping:       s.Looping,
				Position:      s.EditorPosition,
			})
		}
		for _, t := range layer.Transitions {
			td := transitionDoc{
				ID:                  t.ID,
				FromState:           t.FromState,
				ToState:             t.ToState,
				TransitionDuration:  t.TransitionDuration,
				ExitTime:            t.ExitTime,
				HasExitTime:         t.HasExitTime,
				CanTransitionToSelf: t.CanTransitionToSelf,
			}
			for _, c := range t.Conditions {
				td.Conditions = append(td.Conditions, conditionDoc{
					ParameterName: c.ParameterName,
					Operator:      int(c.Operator),
					Value:         encodeParameterValue(c.CompareValue),
				})
			}
			ld.Transitions = append(ld.Transitions, td)
		}
		doc.Layers = append(doc.Layers, ld)
	}

	return doc
}

func encodeParameterValue(v ParameterValue) interface{} {
	switch v.Kind {
	case Bool, Trigger:
		return v.BoolValue
	case Int:
		return v.IntValue
	case Float:
		return v.FloatValue
	default:
		return nil
	}
}
