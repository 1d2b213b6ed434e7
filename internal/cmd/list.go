package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/Alia5/padwatch/profile"
	"github.com/Alia5/padwatch/source"
)

// Profiles lists the built-in device profiles.
type Profiles struct{}

func (p *Profiles) Run() error {
	return printProfiles(os.Stdout)
}

func printProfiles(w io.Writer) error {
	for _, name := range profile.Names() {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// Controls describes the controls of a profile.
type Controls struct {
	Profile string   `help:"Device profile" default:"LogitechR710" env:"PADWATCH_PROFILE"`
	Names   []string `arg:"" optional:"" help:"Only show these controls"`
	Codes   bool     `help:"Print the event codes of the controls instead of their descriptors"`
}

func (c *Controls) Run() error {
	return c.print(os.Stdout)
}

func (c *Controls) print(w io.Writer) error {
	ctrl, err := profile.New(c.Profile)
	if err != nil {
		return err
	}

	if c.Codes {
		codes, err := ctrl.ResolveCodes(c.Names...)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, strings.Join(codes, " "))
		return err
	}

	names := c.Names
	if len(names) == 0 {
		names = ctrl.Names()
	}
	for _, name := range names {
		d, err := ctrl.Control(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, d); err != nil {
			return err
		}
	}
	return nil
}

// Devices lists the gamepads currently plugged in.
type Devices struct{}

func (d *Devices) Run() error {
	return printDevices(os.Stdout, source.FindGamepads)
}

func printDevices(w io.Writer, find func() ([]source.Device, error)) error {
	devices, err := find()
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		_, err := fmt.Fprintln(w, "No gamepads found")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tID")
	for _, dev := range devices {
		fmt.Fprintf(tw, "%s\t%s\n", dev.Path, dev.ID)
	}
	return tw.Flush()
}
