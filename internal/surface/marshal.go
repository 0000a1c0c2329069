package surface

import (
	"bytes"

	"github.com/goccy/go-json"
)

// marshalTagged encodes payload (a struct) and splices the "type" member in
// front of its fields, so every node starts with its discriminant.
func marshalTagged(tag string, payload any) ([]byte, error) {
	body, err := json.MarshalNoEscape(payload)
	if err != nil {
		return nil, err
	}
	head, err := json.MarshalNoEscape(tag)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(`{"type":,`) + len(head) + len(body))
	buf.WriteString(`{"type":`)
	buf.Write(head)
	if len(body) > len("{}") {
		buf.WriteByte(',')
		buf.Write(body[1:])
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}
