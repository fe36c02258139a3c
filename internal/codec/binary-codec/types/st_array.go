package types

import (
	"fmt"

	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/definitions"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/serdes"
	"github.com/LeJamon/goXRPLcodec/internal/codec/binary-codec/types/interfaces"
	"go.uber.org/zap"
)

// STArray is a list of single-key wrapper objects, such as
// [{"Memo": {...}}, {"Memo": {...}}], terminated by the array end marker.
type STArray struct {
	opts  Options
	depth int
}

func (a *STArray) options() Options {
	return a.opts.withDefaults()
}

func (a *STArray) element() *STObject {
	return &STObject{
		Serializer: newSerializer(),
		opts:       a.options(),
		depth:      a.depth + 1,
		nested:     true,
	}
}

// FromJSON writes each wrapper field and its object, then the array end marker.
func (a *STArray) FromJSON(json any) ([]byte, error) {
	opts := a.options()
	if a.depth > opts.MaxDepth {
		return nil, fmt.Errorf("%w: limit is %d", ErrMaxDepthExceeded, opts.MaxDepth)
	}

	var elems []any
	switch j := json.(type) {
	case []any:
		elems = j
	case []map[string]any:
		elems = make([]any, len(j))
		for i := range j {
			elems[i] = j[i]
		}
	default:
		return nil, fmt.Errorf("%w: array expected, got %T", ErrNotSerializable, json)
	}

	defs := definitions.Get()
	s := newSerializer()
	for i, raw := range elems {
		wrapper, ok := raw.(map[string]any)
		if !ok || len(wrapper) != 1 {
			return nil, fmt.Errorf("%w: array element %d must be an object with exactly one key", ErrNotSerializable, i)
		}
		for name, inner := range wrapper {
			fi, err := defs.GetFieldInstanceByFieldName(name)
			if err != nil {
				if opts.Mode == ModeLenient {
					opts.Logger.Debug("skipping unknown array element", zap.String("field", name))
					continue
				}
				return nil, fmt.Errorf("array element %d: %w", i, err)
			}
			if fi.Type != "STObject" {
				return nil, fmt.Errorf("%w: array element %d wraps %s of type %s", ErrNotSerializable, i, name, fi.Type)
			}
			b, err := a.element().FromJSON(inner)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			if err := s.WriteFieldAndValue(*fi, b); err != nil {
				return nil, err
			}
		}
	}
	return append(s.GetSink(), serdes.ArrayEndMarker), nil
}

// ToJSON reads wrapper objects up to the array end marker.
func (a *STArray) ToJSON(p interfaces.BinaryParser, _ ...int) (any, error) {
	opts := a.options()
	if a.depth > opts.MaxDepth {
		return nil, fmt.Errorf("%w: limit is %d", ErrMaxDepthExceeded, opts.MaxDepth)
	}

	defs := definitions.Get()
	out := make([]any, 0)
	for {
		if p.AtEnd() {
			return nil, fmt.Errorf("%w: array is missing its end marker", serdes.ErrParserOutOfBound)
		}
		elem := a.element()
		fi, skipped, err := elem.readField(p, defs)
		if err != nil {
			return nil, err
		}
		if skipped {
			continue
		}

		switch {
		case fi.FieldName == "ArrayEndMarker":
			return out, nil
		case fi.FieldName == "ObjectEndMarker":
			return nil, fmt.Errorf("%w: object end marker inside an array", ErrUnexpectedMarker)
		case fi.Type != "STObject":
			return nil, fmt.Errorf("%w: array element %s has type %s", ErrNotSerializable, fi.FieldName, fi.Type)
		}

		v, err := elem.ToJSON(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fi.FieldName, err)
		}
		out = append(out, map[string]any{fi.FieldName: v})
	}
}
