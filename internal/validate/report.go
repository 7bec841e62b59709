package validate

// Category identifies a virtual device feature whose address assignments
// are checked independently.
type Category int

const (
	VirtualUART Category = iota
	SharedMemory
)

func (c Category) String() string {
	switch c {
	case VirtualUART:
		return "vuart"
	case SharedMemory:
		return "ivshmem"
	default:
		return "unknown"
	}
}

// Report is the outcome of one validation pass. A category field is nil when
// the scenario configures no entries for it, which is different from a
// configured category that passes or fails. Result is the AND over the
// present entries.
type Report struct {
	PCI     bool  `json:"pci"`
	VUART   *bool `json:"vuart,omitempty"`
	IVSHMEM *bool `json:"ivshmem,omitempty"`
	Result  bool  `json:"result"`
}

func aggregate(pci bool, vuart, ivshmem *bool) Report {
	report := Report{
		PCI:     pci,
		VUART:   vuart,
		IVSHMEM: ivshmem,
		Result:  pci,
	}
	if vuart != nil {
		report.Result = report.Result && *vuart
	}
	if ivshmem != nil {
		report.Result = report.Result && *ivshmem
	}
	return report
}
