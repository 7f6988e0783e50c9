// Package compat evaluates whether a set of selected components form a
// working PC: CPU/mainboard socket match, RAM/mainboard memory-type
// match, and PSU capacity versus the build's total power draw.
package compat

import (
	"context"
	"strings"

	"pc-builder/internal/model"
	"pc-builder/internal/repository"

	"github.com/rs/zerolog"
)

// WattageStatus grades PSU capacity against the build's power draw.
type WattageStatus string

const (
	WattageAdequate     WattageStatus = "adequate"
	WattageMarginal     WattageStatus = "marginal"
	WattageInsufficient WattageStatus = "insufficient"
)

// Draw above 80% of PSU capacity is insufficient headroom; above 60%
// is worth a warning.
const (
	insufficientRatio = 0.8
	marginalRatio     = 0.6
)

const (
	warnSocketMismatch = "CPU and mainboard sockets are not compatible"
	warnMemoryMismatch = "RAM memory type is not supported by the mainboard"
	warnPSULow         = "PSU wattage may be insufficient for this configuration"
	warnPSUMarginal    = "Consider a PSU with a higher wattage rating"
)

// Verdict is the compatibility assessment for a selection. It is
// computed fresh on every request and never persisted.
type Verdict struct {
	CPUMainboard bool          `json:"cpuMainboard"`
	RAMMainboard bool          `json:"ramMainboard"`
	PSUWattage   WattageStatus `json:"psuWattage"`
	Warnings     []string      `json:"warnings"`
}

// Result pairs the verdict with the summed component power draw.
type Result struct {
	Compatibility Verdict `json:"compatibility"`
	TotalWattage  int     `json:"totalWattage"`
}

// Evaluator computes compatibility verdicts against the product catalog.
type Evaluator struct {
	products repository.ProductRepository
	logger   zerolog.Logger
}

// NewEvaluator creates a compatibility evaluator.
func NewEvaluator(products repository.ProductRepository, logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		products: products,
		logger:   logger.With().Str("component", "compat-evaluator").Logger(),
	}
}

// Evaluate grades the selection given as a category→product-id map.
// Product ids that do not resolve are treated as absent selections; the
// evaluator never fails, it only produces weaker verdicts.
func (e *Evaluator) Evaluate(ctx context.Context, components map[string]string) Result {
	selected := e.resolve(ctx, components)

	verdict := Verdict{
		CPUMainboard: true,
		RAMMainboard: true,
		PSUWattage:   WattageAdequate,
		Warnings:     []string{},
	}

	cpu := selected[model.CategoryCPU]
	mainboard := selected[model.CategoryMainboard]
	if cpu != nil && mainboard != nil {
		if cpu.Socket == "" || mainboard.Socket == "" || cpu.Socket != mainboard.Socket {
			verdict.CPUMainboard = false
			verdict.Warnings = append(verdict.Warnings, warnSocketMismatch)
		}
	}

	ram := selected[model.CategoryRAM]
	if ram != nil && mainboard != nil {
		ramType := ram.MemoryType()
		boardType := mainboard.MemoryType()
		// A side that declares no memory type stays permissive.
		if ramType != "" && boardType != "" && !strings.EqualFold(ramType, boardType) {
			verdict.RAMMainboard = false
			verdict.Warnings = append(verdict.Warnings, warnMemoryMismatch)
		}
	}

	// The PSU supplies power rather than drawing it, so its own wattage
	// field stays out of the sum.
	totalWattage := 0
	for category, product := range selected {
		if product == nil || category == model.CategoryPSU {
			continue
		}
		totalWattage += product.Wattage
	}

	if psu := selected[model.CategoryPSU]; psu != nil {
		capacity := psu.PSUCapacity()
		switch {
		case float64(totalWattage) > insufficientRatio*float64(capacity):
			verdict.PSUWattage = WattageInsufficient
			verdict.Warnings = append(verdict.Warnings, warnPSULow)
		case float64(totalWattage) > marginalRatio*float64(capacity):
			verdict.PSUWattage = WattageMarginal
			verdict.Warnings = append(verdict.Warnings, warnPSUMarginal)
		}
	}

	e.logger.Debug().
		Int("selected", len(selected)).
		Int("total_wattage", totalWattage).
		Str("psu_status", string(verdict.PSUWattage)).
		Msg("compatibility evaluated")

	return Result{Compatibility: verdict, TotalWattage: totalWattage}
}

// resolve looks up every referenced product, dropping ids that do not
// resolve and categories outside the known set.
func (e *Evaluator) resolve(ctx context.Context, components map[string]string) map[model.Category]*model.Product {
	selected := map[model.Category]*model.Product{}
	for name, id := range components {
		category := model.Category(name)
		if !category.Valid() || id == "" {
			continue
		}
		product, err := e.products.GetByID(ctx, id)
		if err != nil {
			e.logger.Warn().
				Err(err).
				Str("category", name).
				Str("product_id", id).
				Msg("product lookup failed, treating selection as absent")
			continue
		}
		if product == nil {
			continue
		}
		selected[category] = product
	}
	return selected
}
