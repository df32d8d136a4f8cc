// Package entities defines the structured types produced by the diet
// document parser and consumed by the receipt matcher.
package entities

// DishKind distinguishes a recipe made of ingredients from a single food
// item with one total quantity.
type DishKind string

const (
	DishComposed DishKind = "composed"
	DishSingle   DishKind = "single"
)

// Ingredient is one constituent of a composed dish.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
}

// Dish is a single entry of a meal. Quantity is set only for single dishes;
// Ingredients is non-empty only for composed dishes. CadCode 0 means the
// dish has no substitution group.
type Dish struct {
	Name        string       `json:"name"`
	Kind        DishKind     `json:"kind"`
	Quantity    string       `json:"quantity,omitempty"`
	CadCode     int          `json:"cadCode,omitempty"`
	Ingredients []Ingredient `json:"ingredients,omitempty"`
}

// Meal groups the dishes served under one meal name.
type Meal struct {
	Name   string `json:"name"`
	Dishes []Dish `json:"dishes"`
}

// Day holds the meals of one weekday. Meals keep first-seen order, and the
// same meal name may receive dishes from multiple document rows: appending
// to an existing meal must extend its dish list, never replace it.
type Day struct {
	Name  string `json:"name"`
	Meals []Meal `json:"meals"`
}

// AppendDish adds a dish to the named meal, creating the meal at the end of
// the day if it does not exist yet. It returns a pointer to the stored dish
// so the caller can keep attaching ingredients to it; the pointer is valid
// until the next dish is appended to the same meal.
func (d *Day) AppendDish(meal string, dish Dish) *Dish {
	for i := range d.Meals {
		if d.Meals[i].Name == meal {
			d.Meals[i].Dishes = append(d.Meals[i].Dishes, dish)
			return &d.Meals[i].Dishes[len(d.Meals[i].Dishes)-1]
		}
	}
	d.Meals = append(d.Meals, Meal{Name: meal, Dishes: []Dish{dish}})
	last := &d.Meals[len(d.Meals)-1]
	return &last.Dishes[0]
}

// DietDocument is the structured result of one parse invocation: the days in
// document order plus the substitution groups keyed by CAD code.
type DietDocument struct {
	Days          []Day                     `json:"days"`
	Substitutions map[int]SubstitutionGroup `json:"substitutions"`
}

// Day returns the day with the given name, creating it at the end of the
// document if it is not present. Insertion order is document order, not
// calendar order.
func (doc *DietDocument) Day(name string) *Day {
	for i := range doc.Days {
		if doc.Days[i].Name == name {
			return &doc.Days[i]
		}
	}
	doc.Days = append(doc.Days, Day{Name: name})
	return &doc.Days[len(doc.Days)-1]
}

// AllFoodNames flattens every food name the document mentions: dish names,
// ingredient names, substitution group titles and their option names, in
// document order. It feeds the receipt matcher vocabulary.
func (doc *DietDocument) AllFoodNames() []string {
	var names []string
	for i := range doc.Days {
		for j := range doc.Days[i].Meals {
			for _, dish := range doc.Days[i].Meals[j].Dishes {
				names = append(names, dish.Name)
				for _, ing := range dish.Ingredients {
					names = append(names, ing.Name)
				}
			}
		}
	}
	for _, group := range doc.Substitutions {
		names = append(names, group.Title)
		for _, opt := range group.Options {
			names = append(names, opt.Name)
		}
	}
	return names
}
