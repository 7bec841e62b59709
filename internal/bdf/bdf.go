// Package bdf handles bus:device.function identifiers, the low-level slot
// addresses used for PCI-like device assignment.
package bdf

import (
	"regexp"
	"strconv"
	"strings"
)

// addrPattern recognizes a BDF inside a free-form string: one or two hex bus
// digits, a device in 0x00-0x1f, and a function in 0-7. Board inventories and
// scenario fields carry trailing annotations ("00:02.0 VGA controller ...")
// which are not part of the address.
var addrPattern = regexp.MustCompile(`[0-9a-fA-F]{1,2}:[0-1][0-9A-Fa-f]\.[0-7]`)

// Address is a canonical bus:device.function identifier. Two addresses are
// equal iff their string forms match; the hex case of the input is preserved.
type Address string

// Parse extracts the first BDF found in raw. The second return is false when
// raw contains no well-formed address; callers drop such entries rather than
// treating them as errors.
func Parse(raw string) (Address, bool) {
	m := addrPattern.FindString(strings.TrimSpace(raw))
	if m == "" {
		return "", false
	}
	return Address(m), true
}

// Bus returns the bus number.
func (a Address) Bus() int {
	bus, _ := strconv.ParseInt(string(a)[:strings.IndexByte(string(a), ':')], 16, 0)
	return int(bus)
}

// Device returns the device (slot) number.
func (a Address) Device() int {
	s := string(a)
	dev, _ := strconv.ParseInt(s[strings.IndexByte(s, ':')+1:strings.IndexByte(s, '.')], 16, 0)
	return int(dev)
}

// Function returns the function number.
func (a Address) Function() int {
	s := string(a)
	fn, _ := strconv.Atoi(s[strings.IndexByte(s, '.')+1:])
	return fn
}

func (a Address) String() string {
	return string(a)
}
