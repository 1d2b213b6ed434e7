// Package registry links every built-in device profile into the binary.
package registry

import (
	_ "github.com/Alia5/padwatch/profile/logitechr710" // Register Logitech F710/R710 profile
	_ "github.com/Alia5/padwatch/profile/xbox360"      // Register Xbox 360 profile
)
