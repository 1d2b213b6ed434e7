// Package controller groups the logical controls of one physical device and
// dispatches raw input events to the callbacks registered on them.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/Alia5/padwatch/control"
)

var (
	ErrDuplicateControl = errors.New("duplicate control name")
	ErrDuplicateCode    = errors.New("event code mapped to more than one control")
	ErrNilSink          = errors.New("debug sink is nil")
)

type options struct {
	logger *slog.Logger
	strict bool
}

// Option configures a Controller.
type Option func(*options)

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Strict makes New fail when two descriptors share a name or an event code.
// Without it the later descriptor silently wins.
func Strict() Option {
	return func(o *options) { o.strict = true }
}

// route is the reverse index entry for one raw code.
type route struct {
	control string
	axis    control.Axis
}

// Controller is the registry of one device profile. Its membership is fixed
// at construction; callbacks can be added at any time.
type Controller struct {
	name     string
	order    []string
	controls map[string]*control.Descriptor
	routes   map[string]route
	logger   *slog.Logger
}

// New builds a controller from descriptors.
//
// A descriptor whose name was already used replaces the earlier one but
// keeps its position. The reverse index is built over every descriptor in
// input order, so a code claimed twice resolves to the later claimant's
// name, and codes of a replaced descriptor still route to the surviving
// control of that name. Both cases are logged; pass Strict to reject them
// instead.
func New(name string, descriptors []*control.Descriptor, opts ...Option) (*Controller, error) {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Controller{
		name:     name,
		controls: make(map[string]*control.Descriptor, len(descriptors)),
		routes:   make(map[string]route),
		logger:   o.logger.With("controller", name),
	}

	for i, d := range descriptors {
		if d == nil {
			return nil, fmt.Errorf("%w: descriptor %d is nil", control.ErrInvalidDescriptor, i)
		}
		if _, exists := c.controls[d.Name()]; exists {
			if o.strict {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateControl, d.Name())
			}
			c.logger.Warn("Control name reused, later descriptor wins", "control", d.Name())
		} else {
			c.order = append(c.order, d.Name())
		}
		c.controls[d.Name()] = d
	}

	for _, d := range descriptors {
		for _, code := range d.Codes() {
			if prev, exists := c.routes[code]; exists && prev.control != d.Name() {
				if o.strict {
					return nil, fmt.Errorf("%w: %s claimed by %q and %q", ErrDuplicateCode, code, prev.control, d.Name())
				}
				c.logger.Warn("Event code reassigned", "code", code, "from", prev.control, "to", d.Name())
			}
			axis, _ := control.Classify(code)
			c.routes[code] = route{control: d.Name(), axis: axis}
		}
	}

	return c, nil
}

// Name returns the device profile name.
func (c *Controller) Name() string { return c.name }

// Names returns all control names in lexicographic order.
func (c *Controller) Names() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	slices.Sort(names)
	return names
}

// Control returns the descriptor registered under name.
func (c *Controller) Control(name string) (*control.Descriptor, error) {
	d, ok := c.controls[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", control.ErrUnknownControl, name, c.name)
	}
	return d, nil
}

// Lookup returns the control a raw code belongs to and its axis tag.
func (c *Controller) Lookup(code string) (string, control.Axis, bool) {
	r, ok := c.routes[code]
	return r.control, r.axis, ok
}

// ResolveCodes returns the raw codes of the named controls, concatenated in
// the order given. Repeated names repeat their codes. With no names it
// returns every control's codes in declaration order.
func (c *Controller) ResolveCodes(names ...string) ([]string, error) {
	if len(names) == 0 {
		names = c.order
	}
	var codes []string
	for _, name := range names {
		d, err := c.Control(name)
		if err != nil {
			return nil, err
		}
		codes = append(codes, d.Codes()...)
	}
	return codes, nil
}

// RegisterCallback appends cb to the named control's callbacks.
func (c *Controller) RegisterCallback(name string, cb control.Callback) error {
	d, err := c.Control(name)
	if err != nil {
		return err
	}
	return d.RegisterCallback(cb)
}

func (c *Controller) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s", c.name)
	for _, name := range c.order {
		fmt.Fprintf(&sb, "\n%s", c.controls[name])
	}
	return sb.String()
}
