package memory

import "github.com/kmehta/stockview/internal/domain/entity"

// SeedWarehouses lista fija de bodegas de demostración.
func SeedWarehouses() []entity.Warehouse {
	return []entity.Warehouse{
		{Code: "BLR-A", Name: "Bangalore A", City: "Bangalore", Country: "India"},
		{Code: "PNQ-C", Name: "Pune C", City: "Pune", Country: "India"},
		{Code: "DEL-B", Name: "Delhi B", City: "Delhi", Country: "India"},
	}
}

// SeedProducts productos de demostración. El orden importa: los listados sin
// filtro deben devolverlos tal cual.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
		{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
		{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
		{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
	}
}
