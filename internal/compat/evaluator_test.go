package compat

import (
	"context"
	"testing"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// catalog builds an in-memory repository from the given products and
// returns it with a name→id mapping.
func catalog(t *testing.T, products ...model.Product) (repository.ProductRepository, map[string]string) {
	t.Helper()
	repo := repository.NewMemoryProductRepository(zerolog.Nop())
	ids := map[string]string{}
	for _, p := range products {
		stored, err := repo.Create(context.Background(), p)
		require.NoError(t, err)
		ids[p.Name] = stored.ID
	}
	return repo, ids
}

func TestEvaluator_SocketCompatibility(t *testing.T) {
	repo, ids := catalog(t,
		model.Product{Name: "intel-cpu", Category: model.CategoryCPU, Brand: "Intel", Price: 1, Socket: "lga1700", Wattage: 125},
		model.Product{Name: "amd-cpu", Category: model.CategoryCPU, Brand: "AMD", Price: 1, Socket: "am5", Wattage: 105},
		model.Product{Name: "am5-board", Category: model.CategoryMainboard, Brand: "MSI", Price: 1, Socket: "am5", Wattage: 45},
		model.Product{Name: "socketless-board", Category: model.CategoryMainboard, Brand: "ACME", Price: 1},
	)
	e := NewEvaluator(repo, zerolog.Nop())

	tests := []struct {
		name           string
		components     map[string]string
		expectMatch    bool
		expectWarnings bool
	}{
		{
			name:           "mismatched sockets flag incompatibility",
			components:     map[string]string{"cpu": ids["intel-cpu"], "mainboard": ids["am5-board"]},
			expectMatch:    false,
			expectWarnings: true,
		},
		{
			name:        "matching sockets are compatible with no warning",
			components:  map[string]string{"cpu": ids["amd-cpu"], "mainboard": ids["am5-board"]},
			expectMatch: true,
		},
		{
			name:           "board without socket counts as mismatch",
			components:     map[string]string{"cpu": ids["amd-cpu"], "mainboard": ids["socketless-board"]},
			expectMatch:    false,
			expectWarnings: true,
		},
		{
			name:        "cpu alone is trivially compatible",
			components:  map[string]string{"cpu": ids["intel-cpu"]},
			expectMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(context.Background(), tt.components)
			assert.Equal(t, tt.expectMatch, result.Compatibility.CPUMainboard)
			if tt.expectWarnings {
				assert.NotEmpty(t, result.Compatibility.Warnings)
			} else {
				assert.Empty(t, result.Compatibility.Warnings)
			}
		})
	}
}

func TestEvaluator_MemoryTypeCompatibility(t *testing.T) {
	repo, ids := catalog(t,
		model.Product{Name: "ddr5-board", Category: model.CategoryMainboard, Brand: "MSI", Price: 1, Socket: "am5",
			Specs: &model.MainboardSpecs{MemoryType: "DDR5"}},
		model.Product{Name: "ddr4-ram", Category: model.CategoryRAM, Brand: "Corsair", Price: 1,
			Specs: &model.RAMSpecs{Type: "DDR4"}},
		model.Product{Name: "ddr5-ram", Category: model.CategoryRAM, Brand: "Corsair", Price: 1,
			Specs: &model.RAMSpecs{Type: "DDR5"}},
		model.Product{Name: "untyped-ram", Category: model.CategoryRAM, Brand: "ACME", Price: 1},
	)
	e := NewEvaluator(repo, zerolog.Nop())

	tests := []struct {
		name        string
		components  map[string]string
		expectMatch bool
	}{
		{
			name:        "memory type mismatch flags incompatibility",
			components:  map[string]string{"ram": ids["ddr4-ram"], "mainboard": ids["ddr5-board"]},
			expectMatch: false,
		},
		{
			name:        "matching memory types are compatible",
			components:  map[string]string{"ram": ids["ddr5-ram"], "mainboard": ids["ddr5-board"]},
			expectMatch: true,
		},
		{
			name:        "RAM without a declared type stays permissive",
			components:  map[string]string{"ram": ids["untyped-ram"], "mainboard": ids["ddr5-board"]},
			expectMatch: true,
		},
		{
			name:        "RAM alone is trivially compatible",
			components:  map[string]string{"ram": ids["ddr4-ram"]},
			expectMatch: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.Evaluate(context.Background(), tt.components)
			assert.Equal(t, tt.expectMatch, result.Compatibility.RAMMainboard)
		})
	}
}

func TestEvaluator_WattageThresholds(t *testing.T) {
	// Components drawing 700W total: the thresholds put 750W capacity at
	// insufficient (0.93), 1000W at marginal (0.7) and 1500W at adequate.
	makeCatalog := func(t *testing.T, psuCapacity int) (*Evaluator, map[string]string) {
		repo, ids := catalog(t,
			model.Product{Name: "cpu", Category: model.CategoryCPU, Brand: "AMD", Price: 1, Socket: "am5", Wattage: 170},
			model.Product{Name: "vga", Category: model.CategoryVGA, Brand: "NVIDIA", Price: 1, Wattage: 450},
			model.Product{Name: "board", Category: model.CategoryMainboard, Brand: "MSI", Price: 1, Socket: "am5", Wattage: 50},
			model.Product{Name: "ram", Category: model.CategoryRAM, Brand: "Corsair", Price: 1, Wattage: 30},
			model.Product{Name: "psu", Category: model.CategoryPSU, Brand: "Corsair", Price: 1,
				Specs: &model.PSUSpecs{Wattage: psuCapacity}},
		)
		return NewEvaluator(repo, zerolog.Nop()), ids
	}

	tests := []struct {
		name     string
		capacity int
		expected WattageStatus
	}{
		{name: "draw above 80% of capacity is insufficient", capacity: 750, expected: WattageInsufficient},
		{name: "draw between 60% and 80% is marginal", capacity: 1000, expected: WattageMarginal},
		{name: "draw below 60% is adequate", capacity: 1500, expected: WattageAdequate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, ids := makeCatalog(t, tt.capacity)
			result := e.Evaluate(context.Background(), map[string]string{
				"cpu":       ids["cpu"],
				"vga":       ids["vga"],
				"mainboard": ids["board"],
				"ram":       ids["ram"],
				"psu":       ids["psu"],
			})

			assert.Equal(t, 700, result.TotalWattage, "PSU capacity must not count toward draw")
			assert.Equal(t, tt.expected, result.Compatibility.PSUWattage)
			if tt.expected == WattageAdequate {
				assert.Empty(t, result.Compatibility.Warnings)
			} else {
				assert.NotEmpty(t, result.Compatibility.Warnings)
			}
		})
	}
}

func TestEvaluator_PSUCapacityFallback(t *testing.T) {
	// A PSU without declared specs falls back to 750W capacity; a 500W
	// draw lands in the marginal band (0.67).
	repo, ids := catalog(t,
		model.Product{Name: "vga", Category: model.CategoryVGA, Brand: "NVIDIA", Price: 1, Wattage: 500},
		model.Product{Name: "bare-psu", Category: model.CategoryPSU, Brand: "ACME", Price: 1},
	)
	e := NewEvaluator(repo, zerolog.Nop())

	result := e.Evaluate(context.Background(), map[string]string{
		"vga": ids["vga"],
		"psu": ids["bare-psu"],
	})

	assert.Equal(t, 500, result.TotalWattage)
	assert.Equal(t, WattageMarginal, result.Compatibility.PSUWattage)
}

func TestEvaluator_NoPSUSelected(t *testing.T) {
	repo, ids := catalog(t,
		model.Product{Name: "vga", Category: model.CategoryVGA, Brand: "NVIDIA", Price: 1, Wattage: 450},
	)
	e := NewEvaluator(repo, zerolog.Nop())

	result := e.Evaluate(context.Background(), map[string]string{"vga": ids["vga"]})

	assert.Equal(t, 450, result.TotalWattage)
	assert.Equal(t, WattageAdequate, result.Compatibility.PSUWattage, "no PSU selected leaves the default grade")
}

func TestEvaluator_UnresolvableSelectionsAreAbsent(t *testing.T) {
	repo, ids := catalog(t,
		model.Product{Name: "cpu", Category: model.CategoryCPU, Brand: "AMD", Price: 1, Socket: "am5", Wattage: 105},
	)
	e := NewEvaluator(repo, zerolog.Nop())

	result := e.Evaluate(context.Background(), map[string]string{
		"cpu":       ids["cpu"],
		"mainboard": "no-such-id",
		"nonsense":  "whatever",
	})

	assert.True(t, result.Compatibility.CPUMainboard, "unresolved mainboard means no pair to check")
	assert.Equal(t, 105, result.TotalWattage)
	assert.Empty(t, result.Compatibility.Warnings)
}

func TestEvaluator_EmptySelection(t *testing.T) {
	repo, _ := catalog(t)
	e := NewEvaluator(repo, zerolog.Nop())

	result := e.Evaluate(context.Background(), map[string]string{})

	assert.True(t, result.Compatibility.CPUMainboard)
	assert.True(t, result.Compatibility.RAMMainboard)
	assert.Equal(t, WattageAdequate, result.Compatibility.PSUWattage)
	assert.Equal(t, 0, result.TotalWattage)
	assert.NotNil(t, result.Compatibility.Warnings)
	assert.Empty(t, result.Compatibility.Warnings)
}

func TestEvaluator_EndToEndSelection(t *testing.T) {
	// CPU with socket am5 drawing 105W plus a 650W PSU: draw stays 105
	// and 105/650 is comfortably adequate.
	repo, ids := catalog(t,
		model.Product{Name: "cpu", Category: model.CategoryCPU, Brand: "AMD", Price: 1, Socket: "am5", Wattage: 105},
		model.Product{Name: "psu", Category: model.CategoryPSU, Brand: "Corsair", Price: 1,
			Specs: &model.PSUSpecs{Wattage: 650}},
	)
	e := NewEvaluator(repo, zerolog.Nop())

	result := e.Evaluate(context.Background(), map[string]string{
		"cpu": ids["cpu"],
		"psu": ids["psu"],
	})

	assert.Equal(t, 105, result.TotalWattage)
	assert.Equal(t, WattageAdequate, result.Compatibility.PSUWattage)
	assert.True(t, result.Compatibility.CPUMainboard)
	assert.True(t, result.Compatibility.RAMMainboard)
}
