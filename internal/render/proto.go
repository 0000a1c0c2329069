package render

import (
	"fmt"

	"github.com/goccy/go-json"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// ProtoValue converts v into a google.protobuf.Value through its JSON form.
// Struct fields lose their order; numbers become doubles.
func ProtoValue(v any) (*structpb.Value, error) {
	compact, err := json.MarshalNoEscape(v)
	if err != nil {
		return nil, fmt.Errorf("render: marshal: %w", err)
	}
	tree, err := Parse(compact)
	if err != nil {
		return nil, fmt.Errorf("render: reparse: %w", err)
	}
	pv, err := structpb.NewValue(Plain(tree))
	if err != nil {
		return nil, fmt.Errorf("render: proto value: %w", err)
	}
	return pv, nil
}

// Proto renders v as a binary google.protobuf.Value. Map entries are
// written in sorted order so equal trees give equal bytes.
func Proto(v any) ([]byte, error) {
	pv, err := ProtoValue(v)
	if err != nil {
		return nil, err
	}
	out, err := proto.MarshalOptions{Deterministic: true}.Marshal(pv)
	if err != nil {
		return nil, fmt.Errorf("render: proto marshal: %w", err)
	}
	return out, nil
}
