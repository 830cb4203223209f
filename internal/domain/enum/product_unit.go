package enum

// ProductUnit represents the unit a product is sold in
type ProductUnit string

const (
	ProductUnitPiece ProductUnit = "piece"
	ProductUnitMeter ProductUnit = "meter"
	ProductUnitPack  ProductUnit = "pack"
)

func (u ProductUnit) Valid() bool {
	switch u {
	case ProductUnitPiece, ProductUnitMeter, ProductUnitPack:
		return true
	}
	return false
}
