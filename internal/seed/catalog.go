package seed

import "pc-builder/internal/model"

// DefaultCatalog returns the embedded product catalog used when no seed
// source is configured or loading fails. Prices are minor-unit-free VND.
func DefaultCatalog() []model.Product {
	return []model.Product{
		{
			Name:        "Intel Core Ultra 7 265KF (up to 5.5GHz, 20 cores / 20 threads, 30MB cache, 125W)",
			Category:    model.CategoryCPU,
			Brand:       "Intel",
			Price:       7350000,
			Image:       "https://images.unsplash.com/photo-1555617981-dac3880eac6e?auto=format&fit=crop&w=300&h=200",
			Description: "Latest generation Intel CPU, 20 cores / 20 threads, up to 5.5GHz boost",
			Specs:       &model.CPUSpecs{Cores: "20", Threads: "20", BaseFreq: "3.8GHz", BoostFreq: "5.5GHz", Cache: "30MB", TDP: "125W"},
			Socket:      "lga1700",
			Wattage:     125,
			InStock:     true,
		},
		{
			Name:     "Intel Core i7 14700K (up to 5.6GHz, 20 cores / 28 threads, 33MB cache, 125W)",
			Category: model.CategoryCPU,
			Brand:    "Intel",
			Price:    8490000,
			Image:    "https://images.unsplash.com/photo-1591488320449-011701bb6704?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.CPUSpecs{Cores: "20", Threads: "28", BaseFreq: "3.4GHz", BoostFreq: "5.6GHz", Cache: "33MB", TDP: "125W"},
			Socket:   "lga1700",
			Wattage:  125,
			InStock:  true,
		},
		{
			Name:     "Intel Core i5 13600K (up to 5.1GHz, 14 cores / 20 threads, 24MB cache, 125W)",
			Category: model.CategoryCPU,
			Brand:    "Intel",
			Price:    6450000,
			Image:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.CPUSpecs{Cores: "14", Threads: "20", BaseFreq: "3.5GHz", BoostFreq: "5.1GHz", Cache: "24MB", TDP: "125W"},
			Socket:   "lga1700",
			Wattage:  125,
			InStock:  true,
		},
		{
			Name:     "AMD Ryzen 7 7700X (up to 5.4GHz, 8 cores / 16 threads, 32MB cache, 105W)",
			Category: model.CategoryCPU,
			Brand:    "AMD",
			Price:    7890000,
			Image:    "https://images.unsplash.com/photo-1587202372775-e229f172b9d7?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.CPUSpecs{Cores: "8", Threads: "16", BaseFreq: "4.5GHz", BoostFreq: "5.4GHz", Cache: "32MB", TDP: "105W"},
			Socket:   "am5",
			Wattage:  105,
			InStock:  true,
		},
		{
			Name:     "Intel Core i9 14900K (up to 6.0GHz, 24 cores / 32 threads, 36MB cache, 125W)",
			Category: model.CategoryCPU,
			Brand:    "Intel",
			Price:    12990000,
			Image:    "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.CPUSpecs{Cores: "24", Threads: "32", BaseFreq: "3.2GHz", BoostFreq: "6.0GHz", Cache: "36MB", TDP: "125W"},
			Socket:   "lga1700",
			Wattage:  125,
			InStock:  true,
		},
		{
			Name:     "AMD Ryzen 9 7900X (up to 5.6GHz, 12 cores / 24 threads, 64MB cache, 170W)",
			Category: model.CategoryCPU,
			Brand:    "AMD",
			Price:    11450000,
			Image:    "https://images.unsplash.com/photo-1595617795501-9661aafda72a?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.CPUSpecs{Cores: "12", Threads: "24", BaseFreq: "4.7GHz", BoostFreq: "5.6GHz", Cache: "64MB", TDP: "170W"},
			Socket:   "am5",
			Wattage:  170,
			InStock:  true,
		},
		{
			Name:     "NVIDIA GeForce RTX 4070 (12GB GDDR6X, 2610MHz)",
			Category: model.CategoryVGA,
			Brand:    "NVIDIA",
			Price:    15900000,
			Image:    "https://images.unsplash.com/photo-1591488320449-011701bb6704?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.VGASpecs{Memory: "12GB GDDR6X", CoreClock: "2610MHz", MemoryBus: "192-bit", Ports: "HDMI 2.1, DP 1.4a"},
			Wattage:  200,
			InStock:  true,
		},
		{
			Name:     "AMD Radeon RX 7800 XT (16GB GDDR6, 2430MHz)",
			Category: model.CategoryVGA,
			Brand:    "AMD",
			Price:    13500000,
			Image:    "https://images.unsplash.com/photo-1591488320449-011701bb6704?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.VGASpecs{Memory: "16GB GDDR6", CoreClock: "2430MHz", MemoryBus: "256-bit", Ports: "HDMI 2.1, DP 2.1"},
			Wattage:  263,
			InStock:  true,
		},
		{
			Name:     "ASUS ROG Strix Z690-E Gaming WiFi (LGA1700, DDR5, PCIe 5.0)",
			Category: model.CategoryMainboard,
			Brand:    "ASUS",
			Price:    9500000,
			Image:    "https://images.unsplash.com/photo-1518717758536-85ae29035b6d?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.MainboardSpecs{Chipset: "Z690", MemoryType: "DDR5", MaxMemory: "128GB", Slots: "4x DIMM", Expansion: "PCIe 5.0"},
			Socket:   "lga1700",
			Wattage:  50,
			InStock:  true,
		},
		{
			Name:     "MSI MAG B650 TOMAHAWK WiFi (AM5, DDR5, PCIe 5.0)",
			Category: model.CategoryMainboard,
			Brand:    "MSI",
			Price:    6800000,
			Image:    "https://images.unsplash.com/photo-1518717758536-85ae29035b6d?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.MainboardSpecs{Chipset: "B650", MemoryType: "DDR5", MaxMemory: "128GB", Slots: "4x DIMM", Expansion: "PCIe 5.0"},
			Socket:   "am5",
			Wattage:  45,
			InStock:  true,
		},
		{
			Name:     "Corsair RM750e (750W, 80+ Gold, fully modular)",
			Category: model.CategoryPSU,
			Brand:    "Corsair",
			Price:    2690000,
			Image:    "https://images.unsplash.com/photo-1587202372634-32705e3bf49c?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.PSUSpecs{Wattage: 750, Efficiency: "80+ Gold", Modular: "Full"},
			InStock:  true,
		},
		{
			Name:     "Seasonic Focus GX-1000 (1000W, 80+ Gold, fully modular)",
			Category: model.CategoryPSU,
			Brand:    "Seasonic",
			Price:    4290000,
			Image:    "https://images.unsplash.com/photo-1587202372634-32705e3bf49c?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.PSUSpecs{Wattage: 1000, Efficiency: "80+ Gold", Modular: "Full"},
			InStock:  true,
		},
		{
			Name:     "Corsair Vengeance 32GB (2x16GB) DDR5 6000MHz",
			Category: model.CategoryRAM,
			Brand:    "Corsair",
			Price:    3190000,
			Image:    "https://images.unsplash.com/photo-1541029071515-84cc54f84dc5?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.RAMSpecs{Type: "DDR5", Capacity: "32GB", Speed: "6000MHz"},
			Wattage:  15,
			InStock:  true,
		},
		{
			Name:     "Kingston Fury Beast 32GB (2x16GB) DDR4 3200MHz",
			Category: model.CategoryRAM,
			Brand:    "Kingston",
			Price:    1890000,
			Image:    "https://images.unsplash.com/photo-1541029071515-84cc54f84dc5?auto=format&fit=crop&w=300&h=200",
			Specs:    &model.RAMSpecs{Type: "DDR4", Capacity: "32GB", Speed: "3200MHz"},
			Wattage:  12,
			InStock:  true,
		},
	}
}
