package source

import (
	"path/filepath"
	"sort"
	"strings"
)

const byIDDir = "/dev/input/by-id"

// Device is a gamepad event node found under /dev/input/by-id.
type Device struct {
	ID   string
	Path string
}

// FindGamepads lists the joystick event nodes present right now. It is a
// one-shot scan; devices plugged in later are not reported.
func FindGamepads() ([]Device, error) {
	return findGamepads(byIDDir)
}

func findGamepads(dir string) ([]Device, error) {
	links, err := filepath.Glob(filepath.Join(dir, "*-event-joystick"))
	if err != nil {
		return nil, err
	}
	sort.Strings(links)

	devices := make([]Device, 0, len(links))
	for _, link := range links {
		target, err := filepath.EvalSymlinks(link)
		if err != nil {
			continue
		}
		devices = append(devices, Device{
			ID:   strings.TrimSuffix(filepath.Base(link), "-event-joystick"),
			Path: target,
		})
	}
	return devices, nil
}
