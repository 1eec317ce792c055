package views

import (
	"fmt"
	"html/template"
	"strconv"
)

// RevealOptions configures the fade-in applied by static/reveal.js when an element first enters
// the viewport. It is presentation only; without JavaScript the element is simply shown.
type RevealOptions struct {
	Threshold   float64
	TriggerOnce bool
}

// DefaultReveal fades in once a tenth of the element is visible and never resets.
var DefaultReveal = RevealOptions{Threshold: 0.1, TriggerOnce: true}

// Clamp keeps Threshold inside [0,1].
func (o RevealOptions) Clamp() RevealOptions {
	switch {
	case o.Threshold < 0:
		o.Threshold = 0
	case o.Threshold > 1:
		o.Threshold = 1
	}
	return o
}

// Attrs renders the data attributes read by reveal.js.
func (o RevealOptions) Attrs() template.HTMLAttr {
	o = o.Clamp()
	return template.HTMLAttr(fmt.Sprintf(`data-reveal data-reveal-threshold="%s" data-reveal-once="%t"`,
		strconv.FormatFloat(o.Threshold, 'f', -1, 64), o.TriggerOnce))
}

// reveal is the template function: {{reveal}} or {{reveal 0.5}} or {{reveal 0.5 false}}.
func reveal(args ...interface{}) (template.HTMLAttr, error) {
	o := DefaultReveal
	if len(args) > 0 {
		switch v := args[0].(type) {
		case float64:
			o.Threshold = v
		case int:
			o.Threshold = float64(v)
		default:
			return "", fmt.Errorf("reveal: threshold must be a number, got %T", args[0])
		}
	}
	if len(args) > 1 {
		once, ok := args[1].(bool)
		if !ok {
			return "", fmt.Errorf("reveal: triggerOnce must be a bool, got %T", args[1])
		}
		o.TriggerOnce = once
	}
	return o.Attrs(), nil
}
