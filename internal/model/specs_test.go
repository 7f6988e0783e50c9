package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_UnmarshalJSON_SpecsByCategory(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected Specs
	}{
		{
			name:    "CPU specs decode into CPUSpecs",
			payload: `{"name":"Ryzen 7 7700X","category":"cpu","brand":"AMD","price":349,"specs":{"cores":"8","threads":"16","boostFreq":"5.4GHz","tdp":"105W"},"socket":"am5","wattage":105}`,
			expected: &CPUSpecs{
				Cores:     "8",
				Threads:   "16",
				BoostFreq: "5.4GHz",
				TDP:       "105W",
			},
		},
		{
			name:    "PSU specs decode into PSUSpecs with numeric wattage",
			payload: `{"name":"RM650","category":"psu","brand":"Corsair","price":99,"specs":{"wattage":650,"efficiency":"80+ Gold"}}`,
			expected: &PSUSpecs{
				Wattage:    650,
				Efficiency: "80+ Gold",
			},
		},
		{
			name:    "mainboard specs decode into MainboardSpecs",
			payload: `{"name":"B650 Tomahawk","category":"mainboard","brand":"MSI","price":219,"specs":{"chipset":"B650","memoryType":"DDR5"},"socket":"am5"}`,
			expected: &MainboardSpecs{
				Chipset:    "B650",
				MemoryType: "DDR5",
			},
		},
		{
			name:    "RAM specs decode into RAMSpecs",
			payload: `{"name":"Vengeance 32GB","category":"ram","brand":"Corsair","price":129,"specs":{"type":"DDR5","capacity":"32GB","speed":"6000MHz"}}`,
			expected: &RAMSpecs{
				Type:     "DDR5",
				Capacity: "32GB",
				Speed:    "6000MHz",
			},
		},
		{
			name:    "unstructured category falls back to GenericSpecs",
			payload: `{"name":"MX Master 3S","category":"mouse","brand":"Logitech","price":99,"specs":{"dpi":"8000","wireless":"yes"}}`,
			expected: GenericSpecs{
				"dpi":      "8000",
				"wireless": "yes",
			},
		},
		{
			name:     "missing specs yields nil",
			payload:  `{"name":"Case Fan","category":"fan","brand":"Noctua","price":25}`,
			expected: nil,
		},
		{
			name:     "null specs yields nil",
			payload:  `{"name":"Case Fan","category":"fan","brand":"Noctua","price":25,"specs":null}`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Product
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))
			assert.Equal(t, tt.expected, p.Specs)
		})
	}
}

func TestProduct_UnmarshalJSON_InStockDefault(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","category":"cpu","brand":"Intel","price":1}`), &p))
	assert.True(t, p.InStock, "inStock should default to true when absent")

	require.NoError(t, json.Unmarshal([]byte(`{"name":"X","category":"cpu","brand":"Intel","price":1,"inStock":false}`), &p))
	assert.False(t, p.InStock)
}

func TestProduct_PSUCapacity(t *testing.T) {
	tests := []struct {
		name     string
		product  Product
		expected int
	}{
		{
			name:     "declared capacity",
			product:  Product{Category: CategoryPSU, Specs: &PSUSpecs{Wattage: 650}},
			expected: 650,
		},
		{
			name:     "no specs falls back to default",
			product:  Product{Category: CategoryPSU},
			expected: DefaultPSUCapacity,
		},
		{
			name:     "zero wattage falls back to default",
			product:  Product{Category: CategoryPSU, Specs: &PSUSpecs{Efficiency: "80+"}},
			expected: DefaultPSUCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.product.PSUCapacity())
		})
	}
}

func TestProduct_MemoryType(t *testing.T) {
	mb := Product{Category: CategoryMainboard, Specs: &MainboardSpecs{MemoryType: "DDR5"}}
	ram := Product{Category: CategoryRAM, Specs: &RAMSpecs{Type: "DDR4"}}
	cpu := Product{Category: CategoryCPU, Specs: &CPUSpecs{Cores: "8"}}

	assert.Equal(t, "DDR5", mb.MemoryType())
	assert.Equal(t, "DDR4", ram.MemoryType())
	assert.Empty(t, cpu.MemoryType())
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), "category %s should be valid", c)
	}
	assert.False(t, Category("gpu").Valid())
	assert.False(t, Category("").Valid())
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name        string
		product     Product
		expectError bool
	}{
		{
			name:    "valid product",
			product: Product{Name: "i5 13600K", Category: CategoryCPU, Brand: "Intel", Price: 299},
		},
		{
			name:        "missing name",
			product:     Product{Category: CategoryCPU, Price: 299},
			expectError: true,
		},
		{
			name:        "invalid category",
			product:     Product{Name: "X", Category: "gpu", Price: 299},
			expectError: true,
		},
		{
			name:        "negative price",
			product:     Product{Name: "X", Category: CategoryCPU, Price: -1},
			expectError: true,
		},
		{
			name:    "zero price is allowed",
			product: Product{Name: "X", Category: CategoryCPU, Price: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
