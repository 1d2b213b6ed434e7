// Package control declares the logical controls of a game controller: named
// groups of raw event codes such as a thumbstick made of ABS_X and ABS_Y.
package control

import (
	"crypto/rand"
	"fmt"
	"slices"
	"strings"
	"sync"
)

const (
	generatedNameLength = 16
	base62Chars         = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Descriptor is one logical control. Its name, kind and codes are fixed at
// construction; only the callback list grows.
type Descriptor struct {
	name  string
	kind  Kind
	codes []string

	mu        sync.RWMutex
	callbacks []Callback
	deadzone  Deadzone
}

// New builds a descriptor. An empty name is replaced with a freshly
// generated one, so two unnamed descriptors never share a name.
func New(kind Kind, name string, codes ...string) (*Descriptor, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: %s %q has no event codes", ErrInvalidDescriptor, kind, name)
	}
	for _, c := range codes {
		if c == "" {
			return nil, fmt.Errorf("%w: %s %q has an empty event code", ErrInvalidDescriptor, kind, name)
		}
	}
	if name == "" {
		name = generateName()
	}
	return &Descriptor{
		name:  name,
		kind:  kind,
		codes: slices.Clone(codes),
	}, nil
}

func NewStick(name string, codes ...string) (*Descriptor, error) {
	return New(Stick, name, codes...)
}

func NewDPad(name string, codes ...string) (*Descriptor, error) {
	return New(DirectionalPad, name, codes...)
}

func NewButton(name string, codes ...string) (*Descriptor, error) {
	return New(Button, name, codes...)
}

func NewTrigger(name string, codes ...string) (*Descriptor, error) {
	return New(Trigger, name, codes...)
}

func (d *Descriptor) Name() string { return d.name }
func (d *Descriptor) Kind() Kind   { return d.kind }

// Codes returns a copy of the raw event codes in declaration order.
func (d *Descriptor) Codes() []string {
	return slices.Clone(d.codes)
}

// RegisterCallback appends cb. The same callback may be registered more than
// once and is then invoked once per registration.
func (d *Descriptor) RegisterCallback(cb Callback) error {
	if cb == nil {
		return fmt.Errorf("%w: nil callback for %q", ErrInvalidDescriptor, d.name)
	}
	d.mu.Lock()
	d.callbacks = append(d.callbacks, cb)
	d.mu.Unlock()
	return nil
}

// Callbacks returns a snapshot of the registered callbacks in registration order.
func (d *Descriptor) Callbacks() []Callback {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return slices.Clone(d.callbacks)
}

func (d *Descriptor) String() string {
	return fmt.Sprintf("<%s %s [%s]>", d.kind, d.name, strings.Join(d.codes, " "))
}

// generateName creates a random 16-char base62 name.
func generateName() string {
	randomBytes := make([]byte, generatedNameLength)
	// crypto/rand.Read never returns an error since go1.24.
	_, _ = rand.Read(randomBytes)

	name := make([]byte, generatedNameLength)
	for i, b := range randomBytes {
		name[i] = base62Chars[int(b)%62]
	}
	return string(name)
}
