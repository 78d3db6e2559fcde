// Package portion converts free-text food quantity descriptions into
// structured portions and estimated gram weights. Parsing is best effort:
// unrecognized input degrades to a zero quantity or a default weight, it
// never returns an error.
package portion

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Portion is a parsed quantity/unit/ingredient triple.
type Portion struct {
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	Ingredient string  `json:"ingredient"`
}

// DefaultGrams is the fallback weight when nothing in the description can
// be mapped.
const DefaultGrams = 100.0

var vulgarFractions = map[rune]string{
	'¼': "1/4", '½': "1/2", '¾': "3/4",
	'⅓': "1/3", '⅔': "2/3",
	'⅕': "1/5", '⅖': "2/5", '⅗': "3/5", '⅘': "4/5",
	'⅙': "1/6", '⅚': "5/6",
	'⅛': "1/8", '⅜': "3/8", '⅝': "5/8", '⅞': "7/8",
}

// unitSynonyms maps every recognized spelling to its canonical short form.
var unitSynonyms = map[string]string{
	"cup": "cup", "cups": "cup", "c": "cup",
	"tablespoon": "tbsp", "tablespoons": "tbsp", "tbsp": "tbsp", "tbs": "tbsp", "tbl": "tbsp",
	"teaspoon": "tsp", "teaspoons": "tsp", "tsp": "tsp",
	"pound": "lb", "pounds": "lb", "lb": "lb", "lbs": "lb",
	"ounce": "oz", "ounces": "oz", "oz": "oz",
	"gram": "g", "grams": "g", "g": "g", "gr": "g",
	"kilogram": "kg", "kilograms": "kg", "kg": "kg",
	"milligram": "mg", "milligrams": "mg", "mg": "mg",
	"milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml", "ml": "ml",
	"liter": "l", "liters": "l", "litre": "l", "litres": "l", "l": "l",
	"pinch": "pinch", "pinches": "pinch",
	"clove": "clove", "cloves": "clove",
	"slice": "slice", "slices": "slice",
	"piece": "piece", "pieces": "piece",
	"can": "can", "cans": "can",
	"stick": "stick", "sticks": "stick",
	"bunch": "bunch", "bunches": "bunch",
	"handful": "handful", "handfuls": "handful",
	"serving": "serving", "servings": "serving",
}

// gramsPerUnit covers units with a usable direct or density-based weight.
// Volumes assume water-like density; close enough for UX estimates.
var gramsPerUnit = map[string]float64{
	"g":       1,
	"kg":      1000,
	"mg":      0.001,
	"ml":      1,
	"l":       1000,
	"oz":      28.35,
	"lb":      453.6,
	"cup":     240,
	"tbsp":    15,
	"tsp":     5,
	"pinch":   0.5,
	"slice":   30,
	"clove":   5,
	"piece":   50,
	"can":     400,
	"stick":   113,
	"bunch":   150,
	"handful": 30,
	"serving": 100,
}

// sizeGrams maps a food category to small/medium/large weights.
var sizeGrams = map[string][3]float64{
	"potato":         {150, 215, 300},
	"chicken breast": {120, 170, 220},
	"apple":          {130, 180, 230},
	"banana":         {90, 120, 150},
	"onion":          {70, 110, 150},
	"carrot":         {50, 60, 75},
	"egg":            {40, 50, 60},
}

var genericSizeGrams = [3]float64{80, 120, 180}

// countGrams is the per-item weight for common count-based foods.
var countGrams = map[string]float64{
	"egg":      50,
	"biscuit":  35,
	"cookie":   15,
	"apple":    180,
	"banana":   120,
	"orange":   130,
	"potato":   215,
	"tomato":   120,
	"avocado":  150,
	"tortilla": 45,
	"pancake":  40,
	"waffle":   75,
	"sausage":  50,
	"meatball": 30,
	"roll":     50,
	"bun":      60,
	"bagel":    90,
	"muffin":   110,
	"cracker":  7,
}

var (
	mixedRe   = regexp.MustCompile(`^(\d+)\s+(\d+)/(\d+)\s*(.*)$`)
	fracRe    = regexp.MustCompile(`^(\d+)/(\d+)\s*(.*)$`)
	decimalRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(.*)$`)
)

// Parse extracts a quantity, unit and ingredient from a free-text
// description such as "1 1/2 cups flour". Input without a leading quantity
// comes back verbatim as the ingredient with quantity zero.
func Parse(text string) Portion {
	original := strings.TrimSpace(text)
	s := normalizeFractions(original)

	var qty float64
	var rest string

	switch {
	case mixedRe.MatchString(s):
		m := mixedRe.FindStringSubmatch(s)
		whole, _ := strconv.ParseFloat(m[1], 64)
		num, _ := strconv.ParseFloat(m[2], 64)
		den, _ := strconv.ParseFloat(m[3], 64)
		if den == 0 {
			return Portion{Ingredient: original}
		}
		qty = whole + num/den
		rest = m[4]
	case fracRe.MatchString(s):
		m := fracRe.FindStringSubmatch(s)
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return Portion{Ingredient: original}
		}
		qty = num / den
		rest = m[3]
	case decimalRe.MatchString(s):
		m := decimalRe.FindStringSubmatch(s)
		qty, _ = strconv.ParseFloat(m[1], 64)
		rest = m[2]
	default:
		return Portion{Ingredient: original}
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Portion{Quantity: qty}
	}

	if unit, ok := lookupUnit(fields[0]); ok {
		return Portion{
			Quantity:   qty,
			Unit:       unit,
			Ingredient: strings.Join(fields[1:], " "),
		}
	}

	return Portion{Quantity: qty, Ingredient: strings.Join(fields, " ")}
}

// NormalizeUnit maps a unit spelling to its canonical short form. Unknown
// units come back lowercased and singularized; the function is a fixed
// point under repeated application.
func NormalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimSuffix(u, ".")
	if canonical, ok := unitSynonyms[u]; ok {
		return canonical
	}
	return singularize(u)
}

// ToGrams estimates the weight of a described portion. Direct weight and
// volume readings are used as-is, qualitative sizes and count-based foods
// go through lookup tables, and anything unrecognized defaults to 100g.
// The result is always a finite positive number.
func ToGrams(text string) float64 {
	p := Parse(text)

	if p.Unit != "" {
		if perUnit, ok := gramsPerUnit[p.Unit]; ok {
			return clampGrams(quantityOrOne(p.Quantity) * perUnit)
		}
	}

	if g, ok := qualitativeGrams(p.Quantity, p.Ingredient); ok {
		return clampGrams(g)
	}

	if w, ok := countWeight(p.Ingredient); ok {
		return clampGrams(quantityOrOne(p.Quantity) * w)
	}

	return DefaultGrams
}

// normalizeFractions rewrites Unicode vulgar fractions into ASCII fraction
// text, inserting a space after a preceding digit so "1½" parses as a
// mixed number.
func normalizeFractions(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if frac, ok := vulgarFractions[r]; ok {
			if prev >= '0' && prev <= '9' {
				b.WriteByte(' ')
			}
			b.WriteString(frac)
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}

func lookupUnit(word string) (string, bool) {
	u := strings.ToLower(strings.TrimSpace(word))
	u = strings.TrimSuffix(u, ".")
	canonical, ok := unitSynonyms[u]
	return canonical, ok
}

func singularize(word string) string {
	if strings.HasSuffix(word, "oes") || strings.HasSuffix(word, "ches") || strings.HasSuffix(word, "shes") {
		return strings.TrimSuffix(word, "es")
	}
	if strings.HasSuffix(word, "s") && !strings.HasSuffix(word, "ss") {
		return strings.TrimSuffix(word, "s")
	}
	return word
}

// qualitativeGrams resolves descriptions like "small potato" through the
// per-category size tables.
func qualitativeGrams(qty float64, ingredient string) (float64, bool) {
	fields := strings.Fields(strings.ToLower(ingredient))
	if len(fields) < 2 {
		return 0, false
	}

	var idx int
	switch fields[0] {
	case "small":
		idx = 0
	case "medium", "med":
		idx = 1
	case "large", "big":
		idx = 2
	default:
		return 0, false
	}

	food := strings.Join(fields[1:], " ")
	food = singularize(food)

	weights := genericSizeGrams
	for category, table := range sizeGrams {
		if strings.Contains(food, category) {
			weights = table
			break
		}
	}

	return quantityOrOne(qty) * weights[idx], true
}

// countWeight finds a per-item weight for count-based foods ("2 eggs").
func countWeight(ingredient string) (float64, bool) {
	for _, word := range strings.Fields(strings.ToLower(ingredient)) {
		if w, ok := countGrams[singularize(word)]; ok {
			return w, true
		}
	}
	return 0, false
}

func quantityOrOne(qty float64) float64 {
	if qty <= 0 || math.IsNaN(qty) || math.IsInf(qty, 0) {
		return 1
	}
	return qty
}

func clampGrams(g float64) float64 {
	if g <= 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return DefaultGrams
	}
	return g
}
