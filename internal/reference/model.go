package reference

// Catalog описывает один справочник (дни недели, категории ТС и т.д.)
type Catalog struct {
	Name  string        `yaml:"name"`
	Items []CatalogItem `yaml:"items"`
}

type CatalogItem struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
	// Дополнительные поля: Order, ValidFrom, ValidTo и т.д.
	Order     int    `yaml:"order,omitempty"`
	ValidFrom string `yaml:"valid_from,omitempty"`
	ValidTo   string `yaml:"valid_to,omitempty"`
}

// Has проверяет, есть ли код среди позиций справочника.
func (c Catalog) Has(code string) bool {
	for _, it := range c.Items {
		if it.Code == code {
			return true
		}
	}
	return false
}
