// internal/surface/validate.go
package surface

import (
	"errors"
	"fmt"
	"strings"
)

/*
 * Opt-in tree linting.
 *
 * Constructors accept any shape (empty biome lists, inverted noise bounds,
 * unset anchors). Validate walks a finished tree and reports every problem
 * it finds as an Issue keyed by JSON pointer, so a caller can fix a whole
 * tree in one pass instead of one error at a time.
 *
 * Checks:
 *   - biome_is non-empty
 *   - min_threshold <= max_threshold
 *   - vanilla noise ids present in BuiltinNoise (namespaced ids pass)
 *   - stone_depth surface_type in SurfaceTypes
 *   - anchors built by AboveBottom/BelowTop/Absolute
 *   - block names non-empty
 *   - no nil children, nesting within MaxTreeDepth
 */

// Issue is one lint finding.
type Issue struct {
	Path string // JSON pointer of the node, e.g. /then_run/sequence/2
	Err  error  // one of the sentinel errors
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %v", pointer(i.Path), i.Err)
}

// Issues is a collection of lint findings that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(iss[i].Error())
	}
	if len(iss) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(iss))
	}
	return b.String()
}

// Unwrap exposes the sentinel causes to errors.Is.
func (iss Issues) Unwrap() []error {
	errs := make([]error, len(iss))
	for i, it := range iss {
		errs[i] = it.Err
	}
	return errs
}

// AsIssues extracts Issues from an error.
func AsIssues(err error) (Issues, bool) {
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Validate lints a surface rule tree. Returns nil or a non-empty Issues.
func Validate(rule SurfaceRule) error {
	var l linter
	l.rule(rule, "", 1)
	return l.result()
}

// ValidateCondition lints a condition subtree.
func ValidateCondition(c Condition) error {
	var l linter
	l.condition(c, "", 1)
	return l.result()
}

type linter struct {
	issues Issues
}

func (l *linter) add(path string, err error) {
	l.issues = append(l.issues, Issue{Path: path, Err: err})
}

func (l *linter) result() error {
	if len(l.issues) == 0 {
		return nil
	}
	return l.issues
}

func (l *linter) rule(r SurfaceRule, path string, depth int) {
	if depth > MaxTreeDepth {
		l.add(path, ErrTreeTooDeep)
		return
	}
	switch r := r.(type) {
	case nil:
		l.add(path, ErrMissingChild)
	case BadlandsSurfaceRule:
	case BlockSurfaceRule:
		if r.ResultState.Name == "" {
			l.add(path+"/result_state/Name", ErrEmptyBlockName)
		}
	case ConditionSurfaceRule:
		l.condition(r.IfTrue, path+"/if_true", depth+1)
		l.rule(r.ThenRun, path+"/then_run", depth+1)
	case SequenceSurfaceRule:
		for i, child := range r.Sequence {
			l.rule(child, fmt.Sprintf("%s/sequence/%d", path, i), depth+1)
		}
	}
}

func (l *linter) condition(c Condition, path string, depth int) {
	if depth > MaxTreeDepth {
		l.add(path, ErrTreeTooDeep)
		return
	}
	switch c := c.(type) {
	case nil:
		l.add(path, ErrMissingChild)
	case BiomeCondition:
		if len(c.BiomeIs) == 0 {
			l.add(path+"/biome_is", ErrEmptyBiomeList)
		}
	case NoiseThresholdCondition:
		if !knownNoise(c.Noise) {
			l.add(path+"/noise", ErrUnknownNoise)
		}
		if c.MinThreshold > c.MaxThreshold {
			l.add(path, ErrThresholdRange)
		}
	case NotCondition:
		l.condition(c.Invert, path+"/invert", depth+1)
	case StoneDepthCondition:
		if !SurfaceTypes.Has(c.SurfaceType) {
			l.add(path+"/surface_type", ErrInvalidSurfaceType)
		}
	case VerticalGradientCondition:
		if !c.TrueAtAndBelow.Valid() {
			l.add(path+"/true_at_and_below", ErrInvalidAnchor)
		}
		if !c.FalseAtAndAbove.Valid() {
			l.add(path+"/false_at_and_above", ErrInvalidAnchor)
		}
	case YAboveCondition:
		if !c.Anchor.Valid() {
			l.add(path+"/anchor", ErrInvalidAnchor)
		}
	}
}
