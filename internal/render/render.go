// Package render serializes surface trees and other values for output.
//
// JSON output is produced by goccy/go-json: members appear in struct field
// order (or document order for parsed Objects), HTML characters are not
// escaped, and the same value always renders to the same bytes. Indentation
// and replacer semantics follow the engine toolchain's JSON printer: width is
// clamped to 0..10 spaces and a replacer sees every member top-down.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// MaxIndent is the widest indentation honoured; wider requests are clamped.
const MaxIndent = 10

// Replacer rewrites a member before it is written. key is the member name,
// the decimal index for array elements, or "" for the root. Returning false
// drops an object member; a dropped array element becomes null.
type Replacer func(key string, value any) (any, bool)

type options struct {
	indent   int
	replacer Replacer
}

// Option configures JSON and Write.
type Option func(*options)

// WithIndent sets the indentation width in spaces. 0 renders compact output.
func WithIndent(n int) Option {
	return func(o *options) {
		switch {
		case n < 0:
			o.indent = 0
		case n > MaxIndent:
			o.indent = MaxIndent
		default:
			o.indent = n
		}
	}
}

// WithReplacer installs a replacer applied to the generic form of the value.
func WithReplacer(r Replacer) Option {
	return func(o *options) { o.replacer = r }
}

// JSON renders v.
func JSON(v any, opts ...Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	compact, err := json.MarshalNoEscape(v)
	if err != nil {
		return nil, fmt.Errorf("render: marshal: %w", err)
	}

	if o.replacer != nil {
		tree, err := Parse(compact)
		if err != nil {
			return nil, fmt.Errorf("render: reparse: %w", err)
		}
		replaced, keep := replace(o.replacer, "", tree)
		if !keep {
			return nil, fmt.Errorf("render: replacer dropped the root value")
		}
		compact, err = json.MarshalNoEscape(replaced)
		if err != nil {
			return nil, fmt.Errorf("render: marshal replaced value: %w", err)
		}
	}

	if o.indent == 0 {
		return compact, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", strings.Repeat(" ", o.indent)); err != nil {
		return nil, fmt.Errorf("render: indent: %w", err)
	}
	return buf.Bytes(), nil
}

// Write renders v to w followed by a newline.
func Write(w io.Writer, v any, opts ...Option) error {
	out, err := JSON(v, opts...)
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

// replace walks top-down: the replacer sees a container before its children
// and recursion continues into whatever it returned.
func replace(r Replacer, key string, v any) (any, bool) {
	v, keep := r(key, v)
	if !keep {
		return nil, false
	}
	switch t := v.(type) {
	case Object:
		out := make(Object, 0, len(t))
		for _, m := range t {
			nv, ok := replace(r, m.Key, m.Value)
			if !ok {
				continue
			}
			out = append(out, Member{Key: m.Key, Value: nv})
		}
		return out, true
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			nv, ok := replace(r, strconv.Itoa(i), e)
			if !ok {
				nv = nil
			}
			out[i] = nv
		}
		return out, true
	}
	return v, true
}
