package catalog

import "github.com/celerix-dev/gamingtech-store/pkg/schema"

const (
	productImage   = "https://via.placeholder.com/300x200/1e3a8a/ffffff?text="
	componentImage = "https://via.placeholder.com/200x150/1e3a8a/ffffff?text="
)

func defaultProducts() []schema.Product {
	return []schema.Product{
		{
			ID: 1, Name: "Razer DeathAdder V3 Pro", Category: "Mouse", Price: 149.99, Rating: 4.8,
			Image:       productImage + "Gaming+Mouse",
			Description: "Wireless gaming mouse with 30K DPI sensor and 70-hour battery life",
			Specs:       map[string]string{"dpi": "30,000 DPI", "battery": "70 hours", "weight": "63g", "connectivity": "Wireless"},
		},
		{
			ID: 2, Name: "Corsair K100 RGB", Category: "Keyboard", Price: 229.99, Rating: 4.9,
			Image:       productImage + "Gaming+Keyboard",
			Description: "Mechanical gaming keyboard with Cherry MX switches and RGB lighting",
			Specs:       map[string]string{"switches": "Cherry MX", "layout": "Full-size", "lighting": "RGB", "connectivity": "USB-C"},
		},
		{
			ID: 3, Name: "SteelSeries Arctis Pro", Category: "Headset", Price: 179.99, Rating: 4.7,
			Image:       productImage + "Gaming+Headset",
			Description: "Premium gaming headset with Hi-Res audio and ClearCast microphone",
			Specs:       map[string]string{"audio": "Hi-Res", "microphone": "ClearCast", "connectivity": "Wireless + Wired", "battery": "20 hours"},
		},
		{
			ID: 4, Name: "ASUS ROG Swift PG279Q", Category: "Monitor", Price: 599.99, Rating: 4.6,
			Image:       productImage + "Gaming+Monitor",
			Description: "27\" 1440p 165Hz IPS gaming monitor with G-Sync",
			Specs:       map[string]string{"resolution": "2560x1440", "refresh": "165Hz", "panel": "IPS", "sync": "G-Sync"},
		},
		{
			ID: 5, Name: "Logitech G Pro X", Category: "Mouse", Price: 129.99, Rating: 4.5,
			Image:       productImage + "Gaming+Mouse",
			Description: "Lightweight wireless gaming mouse with HERO sensor",
			Specs:       map[string]string{"dpi": "25,600 DPI", "battery": "60 hours", "weight": "63g", "connectivity": "Wireless"},
		},
		{
			ID: 6, Name: "HyperX Alloy Origins", Category: "Keyboard", Price: 89.99, Rating: 4.4,
			Image:       productImage + "Gaming+Keyboard",
			Description: "Compact mechanical keyboard with HyperX switches",
			Specs:       map[string]string{"switches": "HyperX Red", "layout": "TKL", "lighting": "RGB", "connectivity": "USB-C"},
		},
	}
}

func nvme(id, name string, price float64, capacity, label string) schema.Component {
	return schema.Component{
		ID: id, Name: name, Price: price, Image: componentImage + label,
		Specs: map[string]string{"capacity": capacity, "interface": "PCIe 4.0", "read": "7000MB/s", "write": "5300MB/s"},
	}
}

func ddr5(id string, price float64, capacity, modules string) schema.Component {
	return schema.Component{
		ID: id, Name: capacity + " DDR5-6000", Price: price, Image: componentImage + capacity + "+DDR5",
		Specs: map[string]string{"capacity": capacity, "speed": "6000MHz", "latency": "CL36", "modules": modules},
	}
}

func defaultComponents() map[schema.ComponentType][]schema.Component {
	return map[schema.ComponentType][]schema.Component{
		schema.ComponentCPU: {
			{
				ID: "cpu1", Name: "Intel Core i9-13900K", Price: 569.99, Image: componentImage + "Intel+i9",
				Specs: map[string]string{"cores": "24 cores", "threads": "32 threads", "boost": "5.8GHz", "tdp": "253W"},
			},
			{
				ID: "cpu2", Name: "AMD Ryzen 9 7950X", Price: 699.99, Image: componentImage + "AMD+7950X",
				Specs: map[string]string{"cores": "16 cores", "threads": "32 threads", "boost": "5.7GHz", "tdp": "170W"},
			},
			{
				ID: "cpu3", Name: "Intel Core i7-13700K", Price: 399.99, Image: componentImage + "Intel+i7",
				Specs: map[string]string{"cores": "16 cores", "threads": "24 threads", "boost": "5.4GHz", "tdp": "253W"},
			},
		},
		schema.ComponentGPU: {
			{
				ID: "gpu1", Name: "NVIDIA RTX 4090", Price: 1599.99, Image: componentImage + "RTX+4090",
				Specs: map[string]string{"memory": "24GB GDDR6X", "boost": "2.52GHz", "tdp": "450W", "features": "Ray Tracing, DLSS 3.0"},
			},
			{
				ID: "gpu2", Name: "AMD RX 7900 XTX", Price: 999.99, Image: componentImage + "RX+7900",
				Specs: map[string]string{"memory": "24GB GDDR6", "boost": "2.5GHz", "tdp": "355W", "features": "FSR 3.0, Ray Tracing"},
			},
			{
				ID: "gpu3", Name: "NVIDIA RTX 4080", Price: 1199.99, Image: componentImage + "RTX+4080",
				Specs: map[string]string{"memory": "16GB GDDR6X", "boost": "2.51GHz", "tdp": "320W", "features": "Ray Tracing, DLSS 3.0"},
			},
		},
		schema.ComponentRAM: {
			ddr5("ram1", 199.99, "32GB", "2x16GB"),
			ddr5("ram2", 399.99, "64GB", "2x32GB"),
			ddr5("ram3", 99.99, "16GB", "2x8GB"),
		},
		schema.ComponentStorage: {
			nvme("storage1", "2TB NVMe SSD", 199.99, "2TB", "2TB+NVMe"),
			nvme("storage2", "4TB NVMe SSD", 399.99, "4TB", "4TB+NVMe"),
			nvme("storage3", "1TB NVMe SSD", 99.99, "1TB", "1TB+NVMe"),
		},
	}
}
