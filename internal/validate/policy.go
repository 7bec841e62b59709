package validate

import (
	"github.com/virtbox/vbdfcheck/internal/bdf"
	"github.com/virtbox/vbdfcheck/internal/platform"
)

// Post-launched machines may only use device slots in [0x03, 0x1e). Slots
// below 3 and from 0x1e up are reserved for native and firmware-visible
// devices, which an unprivileged machine must not be able to shadow.
const (
	minPostLaunchedDevice = 0x03
	maxPostLaunchedDevice = 0x1e
)

// AddressAllowed reports whether a machine of the given launch class may be
// assigned addr. Pre-launched and service machines may use any valid
// address, including slots reserved by firmware and bootstrap conventions.
func AddressAllowed(class platform.LaunchClass, addr bdf.Address) bool {
	if class != platform.PostLaunched {
		return true
	}
	dev := addr.Device()
	return dev >= minPostLaunchedDevice && dev < maxPostLaunchedDevice
}
