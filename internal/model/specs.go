package model

import (
	"encoding/json"
	"fmt"
)

// Specs is the per-category specification block of a product. The wire
// format is a flat JSON object; the concrete shape is chosen from the
// product's category when decoding, so a CPU always carries *CPUSpecs,
// a PSU always carries *PSUSpecs, and so on. Categories without a
// structured shape fall back to GenericSpecs.
type Specs interface {
	isSpecs()
}

// CPUSpecs describes a processor.
type CPUSpecs struct {
	Cores     string `json:"cores,omitempty"`
	Threads   string `json:"threads,omitempty"`
	BaseFreq  string `json:"baseFreq,omitempty"`
	BoostFreq string `json:"boostFreq,omitempty"`
	Cache     string `json:"cache,omitempty"`
	TDP       string `json:"tdp,omitempty"`
}

// VGASpecs describes a graphics card.
type VGASpecs struct {
	Memory    string `json:"memory,omitempty"`
	CoreClock string `json:"coreClock,omitempty"`
	MemoryBus string `json:"memoryBus,omitempty"`
	Ports     string `json:"ports,omitempty"`
}

// MainboardSpecs describes a motherboard.
type MainboardSpecs struct {
	Chipset    string `json:"chipset,omitempty"`
	MemoryType string `json:"memoryType,omitempty"`
	MaxMemory  string `json:"maxMemory,omitempty"`
	Slots      string `json:"slots,omitempty"`
	Expansion  string `json:"expansion,omitempty"`
}

// PSUSpecs describes a power supply. Wattage is the rated capacity,
// not a draw figure.
type PSUSpecs struct {
	Wattage    int    `json:"wattage,omitempty"`
	Efficiency string `json:"efficiency,omitempty"`
	Modular    string `json:"modular,omitempty"`
}

// RAMSpecs describes a memory kit. Type is the DDR generation and is
// matched against MainboardSpecs.MemoryType.
type RAMSpecs struct {
	Type     string `json:"type,omitempty"`
	Capacity string `json:"capacity,omitempty"`
	Speed    string `json:"speed,omitempty"`
}

// GenericSpecs holds free-form specification keys for categories without
// a structured shape (cases, monitors, peripherals).
type GenericSpecs map[string]any

func (*CPUSpecs) isSpecs()       {}
func (*VGASpecs) isSpecs()       {}
func (*MainboardSpecs) isSpecs() {}
func (*PSUSpecs) isSpecs()       {}
func (*RAMSpecs) isSpecs()       {}
func (GenericSpecs) isSpecs()    {}

// DecodeSpecs unmarshals a raw specs object into the shape that matches
// the product category. A null or empty payload yields nil.
func DecodeSpecs(category Category, raw json.RawMessage) (Specs, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	var (
		specs Specs
		err   error
	)
	switch category {
	case CategoryCPU:
		s := &CPUSpecs{}
		err = json.Unmarshal(raw, s)
		specs = s
	case CategoryVGA:
		s := &VGASpecs{}
		err = json.Unmarshal(raw, s)
		specs = s
	case CategoryMainboard:
		s := &MainboardSpecs{}
		err = json.Unmarshal(raw, s)
		specs = s
	case CategoryPSU:
		s := &PSUSpecs{}
		err = json.Unmarshal(raw, s)
		specs = s
	case CategoryRAM:
		s := &RAMSpecs{}
		err = json.Unmarshal(raw, s)
		specs = s
	default:
		s := GenericSpecs{}
		err = json.Unmarshal(raw, &s)
		specs = s
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s specs: %w", category, err)
	}
	return specs, nil
}
