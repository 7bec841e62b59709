// Package platform holds the typed records decoded from the board and
// scenario description documents.
package platform

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Board is the physically-present device inventory extracted from a board
// description document.
type Board struct {
	// PCIDevices holds one free-form line per native device. Lines carry
	// trailing annotations after the slot address ("00:02.0 VGA ...").
	PCIDevices []string
}

type boardDoc struct {
	XMLName   xml.Name `xml:"acrn-config"`
	PCIDevice string   `xml:"PCI_DEVICE"`
}

// DecodeBoard parses a board description document.
func DecodeBoard(data []byte) (*Board, error) {
	var doc boardDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode board document: %w", err)
	}

	board := &Board{}
	for _, line := range strings.Split(doc.PCIDevice, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		board.PCIDevices = append(board.PCIDevices, line)
	}
	return board, nil
}
