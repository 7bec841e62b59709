// Package validate detects bus-address collisions between virtual device
// assignments and the devices physically present on a board.
package validate

import (
	"fmt"
	"slices"

	"github.com/containerd/errdefs"
	"github.com/containerd/log"

	"github.com/virtbox/vbdfcheck/internal/bdf"
	"github.com/virtbox/vbdfcheck/internal/platform"
)

// ErrMalformedInput reports an endpoint group that violates the upstream
// decoder's contract, such as a UART connection with a single endpoint.
var ErrMalformedInput = fmt.Errorf("malformed endpoint group: %w", errdefs.ErrInvalidArgument)

// hostBridge is the root device of every board inventory. It is never a
// collision candidate.
const hostBridge bdf.Address = "00:00.0"

// Engine runs one collision-validation pass over a board and scenario pair.
// Inputs are treated as immutable; re-validating a changed scenario requires
// a new Engine.
type Engine struct {
	scenario *platform.Scenario

	// Addresses of physically-present devices, host bridge excluded.
	native map[bdf.Address]struct{}

	// The platform-reserved debug UART slot, when configured. Not a native
	// PCI device, but no virtual assignment may reuse it.
	reserved map[bdf.Address]struct{}

	strict bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrictParsing makes an endpoint whose address string is malformed fail
// its category instead of being silently skipped.
func WithStrictParsing() Option {
	return func(e *Engine) { e.strict = true }
}

// New builds an Engine from decoded board and scenario records.
func New(board *platform.Board, scenario *platform.Scenario, opts ...Option) *Engine {
	e := &Engine{
		scenario: scenario,
		native:   make(map[bdf.Address]struct{}),
		reserved: make(map[bdf.Address]struct{}),
	}
	for _, line := range board.PCIDevices {
		addr, ok := bdf.Parse(line)
		if !ok || addr == hostBridge {
			continue
		}
		e.native[addr] = struct{}{}
	}
	if scenario.HasDebugUART {
		if addr, ok := bdf.Parse(scenario.DebugUART); ok {
			e.reserved[addr] = struct{}{}
		}
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate checks every configured category and assembles the report.
func (e *Engine) Validate() Report {
	pci := e.validatePCI()

	vuart := e.checkCategory(VirtualUART, e.scenario.VUARTConnections, 2)
	ivshmem := e.checkCategory(SharedMemory, e.scenario.SharedMemRegions, 1)

	report := aggregate(pci, vuart, ivshmem)
	log.L.WithField("pci", pci).WithField("result", report.Result).Debug("validation pass complete")
	return report
}

func (e *Engine) validatePCI() bool {
	for addr := range e.reserved {
		if _, hit := e.native[addr]; hit {
			return false
		}
	}
	return true
}

// checkCategory returns nil when the category has no configured groups, so
// the report can omit it entirely.
func (e *Engine) checkCategory(cat Category, groups []platform.EndpointGroup, minEndpoints int) *bool {
	if len(groups) == 0 {
		return nil
	}
	result, err := e.runCategory(groups, minEndpoints)
	if err != nil {
		log.L.WithError(err).WithField("category", cat.String()).Warn("category failed structural check")
		result = false
	}
	return &result
}

// runCategory walks every endpoint of every group in one category,
// accumulating per-machine and category-wide address sets. The error return
// is reserved for structural input violations; ordinary collisions and
// policy failures report as false.
func (e *Engine) runCategory(groups []platform.EndpointGroup, minEndpoints int) (bool, error) {
	perVM := make(map[string][]bdf.Address)
	seen := make(map[bdf.Address]struct{})

	for _, group := range groups {
		if len(group.Endpoints) < minEndpoints {
			return false, fmt.Errorf("group %q has %d endpoints, need at least %d: %w",
				group.Name, len(group.Endpoints), minEndpoints, ErrMalformedInput)
		}
		for _, ep := range group.Endpoints {
			addr, ok := bdf.Parse(ep.VBDF)
			if !ok {
				if e.strict {
					return false, nil
				}
				continue
			}

			vm, known := e.scenario.VM(ep.VMName)
			if !known {
				return false, nil
			}
			if !AddressAllowed(vm.Class, addr) {
				return false, nil
			}

			// The same machine must not claim one slot twice for one
			// feature.
			if slices.Contains(perVM[ep.VMName], addr) {
				return false, nil
			}
			perVM[ep.VMName] = append(perVM[ep.VMName], addr)

			// Nor may two machines share a slot within the category.
			if _, dup := seen[addr]; dup {
				return false, nil
			}
			seen[addr] = struct{}{}
		}
	}

	for addr := range seen {
		if _, hit := e.native[addr]; hit {
			return false, nil
		}
		if _, hit := e.reserved[addr]; hit {
			return false, nil
		}
	}
	return true, nil
}
