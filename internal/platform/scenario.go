package platform

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// LaunchClass is the boot-time category of a virtual machine. It constrains
// which slot addresses the machine may legally be assigned.
type LaunchClass string

const (
	PreLaunched  LaunchClass = "PRE_LAUNCHED_VM"
	ServiceVM    LaunchClass = "SERVICE_VM"
	PostLaunched LaunchClass = "POST_LAUNCHED_VM"
)

// VirtualMachine is one vm record from the scenario description. Immutable
// for the duration of a validation pass.
type VirtualMachine struct {
	Name  string
	Class LaunchClass
}

// Endpoint is a (machine name, raw address string) pair from a connection or
// shared-memory group. The address is kept raw; parsing happens at
// validation time.
type Endpoint struct {
	VMName string
	VBDF   string
}

// EndpointGroup is a named group of endpoints sharing one virtual device: a
// virtual UART connection (exactly two endpoints) or a shared-memory region
// (variable size).
type EndpointGroup struct {
	Name      string
	Endpoints []Endpoint
}

// Scenario is the decoded multi-VM configuration.
type Scenario struct {
	VMs []VirtualMachine

	VUARTConnections []EndpointGroup
	SharedMemRegions []EndpointGroup

	// DebugUART is the platform-reserved debug UART slot address, raw.
	// Empty when the platform does not configure one.
	DebugUART    string
	HasDebugUART bool
}

// VM looks up a machine by name.
func (s *Scenario) VM(name string) (VirtualMachine, bool) {
	for _, vm := range s.VMs {
		if vm.Name == name {
			return vm, true
		}
	}
	return VirtualMachine{}, false
}

type scenarioDoc struct {
	XMLName xml.Name `xml:"acrn-config"`
	HV      struct {
		DebugOptions struct {
			VUARTVBDF *string `xml:"VUART_VBDF"`
		} `xml:"DEBUG_OPTIONS"`
		VUARTConnections struct {
			Connections []struct {
				Name      string `xml:"name"`
				Endpoints []struct {
					VMName string `xml:"vm_name"`
					VBDF   string `xml:"vbdf"`
				} `xml:"endpoint"`
			} `xml:"vuart_connection"`
		} `xml:"vuart_connections"`
		Features struct {
			IVSHMEM struct {
				Regions []struct {
					Name string `xml:"IVSHMEM_NAME"`
					VMs  struct {
						Entries []struct {
							VMName string `xml:"VM_NAME"`
							VBDF   string `xml:"VBDF"`
						} `xml:"IVSHMEM_VM"`
					} `xml:"IVSHMEM_VMS"`
				} `xml:"IVSHMEM_REGION"`
			} `xml:"IVSHMEM"`
		} `xml:"FEATURES"`
	} `xml:"hv"`
	VMs []struct {
		Name      string `xml:"name"`
		LoadOrder string `xml:"load_order"`
	} `xml:"vm"`
}

// DecodeScenario parses a scenario description document into typed records.
func DecodeScenario(data []byte) (*Scenario, error) {
	var doc scenarioDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario document: %w", err)
	}

	s := &Scenario{}
	for _, vm := range doc.VMs {
		s.VMs = append(s.VMs, VirtualMachine{
			Name:  strings.TrimSpace(vm.Name),
			Class: LaunchClass(strings.TrimSpace(vm.LoadOrder)),
		})
	}

	for _, conn := range doc.HV.VUARTConnections.Connections {
		group := EndpointGroup{Name: strings.TrimSpace(conn.Name)}
		for _, ep := range conn.Endpoints {
			group.Endpoints = append(group.Endpoints, Endpoint{
				VMName: strings.TrimSpace(ep.VMName),
				VBDF:   strings.TrimSpace(ep.VBDF),
			})
		}
		s.VUARTConnections = append(s.VUARTConnections, group)
	}

	for _, region := range doc.HV.Features.IVSHMEM.Regions {
		group := EndpointGroup{Name: strings.TrimSpace(region.Name)}
		for _, ep := range region.VMs.Entries {
			group.Endpoints = append(group.Endpoints, Endpoint{
				VMName: strings.TrimSpace(ep.VMName),
				VBDF:   strings.TrimSpace(ep.VBDF),
			})
		}
		s.SharedMemRegions = append(s.SharedMemRegions, group)
	}

	if doc.HV.DebugOptions.VUARTVBDF != nil {
		s.HasDebugUART = true
		s.DebugUART = strings.TrimSpace(*doc.HV.DebugOptions.VUARTVBDF)
	}
	return s, nil
}
