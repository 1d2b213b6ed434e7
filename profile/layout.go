package profile

import (
	"github.com/Alia5/padwatch/control"
	"github.com/Alia5/padwatch/controller"
)

// Control declares one control of a profile layout.
type Control struct {
	Kind  control.Kind
	Name  string
	Codes []string
}

// Build turns a layout into a controller. Layouts are hand-written, so name
// and code collisions are rejected.
func Build(name string, layout []Control, opts ...controller.Option) (*controller.Controller, error) {
	descriptors := make([]*control.Descriptor, 0, len(layout))
	for _, c := range layout {
		d, err := control.New(c.Kind, c.Name, c.Codes...)
		if err != nil {
			return nil, err
		}
		descriptors = append(descriptors, d)
	}
	return controller.New(name, descriptors, append([]controller.Option{controller.Strict()}, opts...)...)
}
