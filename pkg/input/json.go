package input

import (
	"encoding/json"
	"fmt"
	"time"
)

// Wire types mirroring the BiDi input.performActions "actions" payload.
// Only pointer sources are supported; key and wheel sources are rejected.

type wireSource struct {
	Type       string         `json:"type"`
	ID         string         `json:"id,omitempty"`
	Parameters wireParameters `json:"parameters"`
	Actions    []wireAction   `json:"actions"`
}

type wireParameters struct {
	PointerType PointerType `json:"pointerType"`
}

type wireAction struct {
	Type          string          `json:"type"`
	Button        *Button         `json:"button,omitempty"`
	X             float64         `json:"x"`
	Y             float64         `json:"y"`
	Duration      *int64          `json:"duration,omitempty"` // milliseconds
	Origin        json.RawMessage `json:"origin,omitempty"`
	Width         *float64        `json:"width,omitempty"`
	Height        *float64        `json:"height,omitempty"`
	Pressure      *float64        `json:"pressure,omitempty"`
	TiltX         *int            `json:"tiltX,omitempty"`
	TiltY         *int            `json:"tiltY,omitempty"`
	Twist         *int            `json:"twist,omitempty"`
	AltitudeAngle *float64        `json:"altitudeAngle,omitempty"`
	AzimuthAngle  *float64        `json:"azimuthAngle,omitempty"`
}

type wireElementOrigin struct {
	Type    string          `json:"type"`
	Element json.RawMessage `json:"element,omitempty"`
}

// DecodeActions parses a BiDi-shaped action sequence. The result still
// goes through Validate at dispatch time; decoding only rejects payloads
// that cannot be represented at all.
func DecodeActions(data []byte) (*Actions, error) {
	var sources []wireSource
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("decode actions: %w", err)
	}

	actions := NewActions()
	for i, ws := range sources {
		if ws.Type != "pointer" {
			return nil, fmt.Errorf("decode actions: source %d: unsupported source type %q", i, ws.Type)
		}
		pointerType := ws.Parameters.PointerType
		if pointerType == "" {
			pointerType = PointerMouse
		}
		src := actions.AddPointer(pointerType)
		for j, wa := range ws.Actions {
			act, err := decodeAction(wa)
			if err != nil {
				return nil, fmt.Errorf("decode actions: source %d, action %d: %w", i, j, err)
			}
			src.actions = append(src.actions, act)
		}
	}
	return actions, nil
}

func decodeAction(wa wireAction) (Action, error) {
	act := Action{
		X: wa.X,
		Y: wa.Y,
		Contact: ContactUpdate{
			Width:         wa.Width,
			Height:        wa.Height,
			Pressure:      wa.Pressure,
			TiltX:         wa.TiltX,
			TiltY:         wa.TiltY,
			Twist:         wa.Twist,
			AltitudeAngle: wa.AltitudeAngle,
			AzimuthAngle:  wa.AzimuthAngle,
		},
	}
	if wa.Duration != nil {
		act.Duration = time.Duration(*wa.Duration) * time.Millisecond
	}

	switch wa.Type {
	case string(ActionPointerDown):
		act.Kind = ActionPointerDown
		if wa.Button != nil {
			act.Button = *wa.Button
		}
	case string(ActionPointerUp):
		act.Kind = ActionPointerUp
		if wa.Button != nil {
			act.Button = *wa.Button
		}
	case string(ActionPointerMove):
		act.Kind = ActionPointerMove
		origin, err := decodeOrigin(wa.Origin)
		if err != nil {
			return Action{}, err
		}
		act.Origin = origin
	case string(ActionPause):
		act.Kind = ActionPause
	default:
		return Action{}, fmt.Errorf("unsupported action type %q", wa.Type)
	}
	return act, nil
}

func decodeOrigin(raw json.RawMessage) (Origin, error) {
	if len(raw) == 0 {
		return ViewportOrigin(), nil
	}

	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		switch name {
		case string(OriginViewport):
			return ViewportOrigin(), nil
		case string(OriginPointer):
			return PointerOrigin(), nil
		default:
			return Origin{}, fmt.Errorf("unsupported origin %q", name)
		}
	}

	var elem wireElementOrigin
	if err := json.Unmarshal(raw, &elem); err != nil {
		return Origin{}, fmt.Errorf("decode origin: %w", err)
	}
	if elem.Type != string(OriginElement) {
		return Origin{}, fmt.Errorf("unsupported origin type %q", elem.Type)
	}
	id, err := decodeElementRef(elem.Element)
	if err != nil {
		return Origin{}, err
	}
	return ElementOrigin(id), nil
}

// decodeElementRef accepts either a bare element id or the BiDi shared
// reference object form {"sharedId": "..."}.
func decodeElementRef(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("element origin requires an element reference")
	}
	var id string
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, nil
	}
	var ref struct {
		SharedID string `json:"sharedId"`
	}
	if err := json.Unmarshal(raw, &ref); err != nil {
		return "", fmt.Errorf("decode element reference: %w", err)
	}
	if ref.SharedID == "" {
		return "", fmt.Errorf("element reference missing sharedId")
	}
	return ref.SharedID, nil
}
