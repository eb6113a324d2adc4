package seo

import "fmt"

// Brand is appended to generated page titles.
const Brand = "MetalProm"

// Descriptor is the metadata bundle used to fill page head tags.
type Descriptor struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	H1          string   `json:"h1,omitempty"`
	SEOText     string   `json:"seoText,omitempty"`
}

// ProductInput carries the product fields the templates interpolate.
type ProductInput struct {
	Name        string
	Category    string
	SteelGrade  string
	Dimensions  string
	PricePerTon float64
	SEO         Descriptor
}

// CategoryInput carries the category fields the templates interpolate.
type CategoryInput struct {
	Name string
	SEO  Descriptor
}

// ForProduct resolves the SEO descriptor for a product. Admin-entered SEO
// always wins: a non-empty stored title is returned unchanged, with no merge.
// Otherwise the descriptor is synthesized from fixed templates; blank fields
// interpolate as-is and never block generation.
func ForProduct(p ProductInput) Descriptor {
	if p.SEO.Title != "" {
		return p.SEO
	}

	return Descriptor{
		Title:       fmt.Sprintf("Купить %s - цена %.0f руб/тонна | %s", p.Name, p.PricePerTon, Brand),
		Description: fmt.Sprintf("Продажа %s оптом и в розницу. Характеристики: %s, %s. В наличии на складе. Доставка по РФ.", p.Name, p.SteelGrade, p.Dimensions),
		Keywords:    []string{p.Name, "купить металлопрокат", p.Category, "цена за тонну", p.SteelGrade},
		H1:          p.Name,
		SEOText:     fmt.Sprintf("Выгодное предложение на %s от производителя.", p.Name),
	}
}

// ForCategory resolves the SEO descriptor for a category page.
func ForCategory(c CategoryInput) Descriptor {
	if c.SEO.Title != "" {
		return c.SEO
	}

	return Descriptor{
		Title:       fmt.Sprintf("%s купить - цена за тонну | %s", c.Name, Brand),
		Description: fmt.Sprintf("Продажа %s оптом и в розницу.", c.Name),
		Keywords:    []string{c.Name, "купить металлопрокат", "цена за тонну"},
		H1:          c.Name,
	}
}
