package entities

import "testing"

func TestAppendDishKeepsExistingDishes(t *testing.T) {
	day := &Day{Name: "Lunedì"}

	day.AppendDish("Pranzo", Dish{Name: "Riso", Kind: DishSingle, Quantity: "gr 80"})
	day.AppendDish("Cena", Dish{Name: "Pesce", Kind: DishSingle, Quantity: "gr 150"})
	day.AppendDish("Pranzo", Dish{Name: "Insalata", Kind: DishSingle, Quantity: "gr 50"})

	if len(day.Meals) != 2 {
		t.Fatalf("Expected 2 meals, got %d", len(day.Meals))
	}
	if day.Meals[0].Name != "Pranzo" || day.Meals[1].Name != "Cena" {
		t.Errorf("Expected first-seen meal order, got %s, %s", day.Meals[0].Name, day.Meals[1].Name)
	}
	if len(day.Meals[0].Dishes) != 2 {
		t.Errorf("Expected the second Pranzo dish appended, got %d dishes", len(day.Meals[0].Dishes))
	}
	if day.Meals[0].Dishes[0].Name != "Riso" {
		t.Errorf("Expected the first dish kept, got %s", day.Meals[0].Dishes[0].Name)
	}
}

func TestAppendDishReturnsStoredDish(t *testing.T) {
	day := &Day{Name: "Lunedì"}

	dish := day.AppendDish("Pranzo", Dish{Name: "Pasta e fagioli", Kind: DishComposed})
	dish.Ingredients = append(dish.Ingredients, Ingredient{Name: "Pasta", Quantity: "gr 70"})

	if len(day.Meals[0].Dishes[0].Ingredients) != 1 {
		t.Error("Expected ingredient attached through the returned pointer")
	}
}

func TestDocumentDayFindOrCreate(t *testing.T) {
	doc := &DietDocument{}

	first := doc.Day("Lunedì")
	doc.Day("Martedì")
	again := doc.Day("Lunedì")

	if len(doc.Days) != 2 {
		t.Fatalf("Expected 2 days, got %d", len(doc.Days))
	}
	if first.Name != again.Name {
		t.Errorf("Expected the same day returned, got %s and %s", first.Name, again.Name)
	}
}

func TestAllFoodNames(t *testing.T) {
	doc := &DietDocument{
		Days: []Day{{
			Name: "Lunedì",
			Meals: []Meal{{
				Name: "Pranzo",
				Dishes: []Dish{{
					Name:        "Pasta e fagioli",
					Kind:        DishComposed,
					Ingredients: []Ingredient{{Name: "Pasta"}, {Name: "Fagioli"}},
				}},
			}},
		}},
		Substitutions: map[int]SubstitutionGroup{
			19: {
				Code:    19,
				Title:   "Cereali",
				Options: []SubstitutionOption{{Name: "Riso", Quantity: "gr 70"}},
			},
		},
	}

	expected := []string{"Pasta e fagioli", "Pasta", "Fagioli", "Cereali", "Riso"}
	names := doc.AllFoodNames()
	if len(names) != len(expected) {
		t.Fatalf("Expected %d names, got %v", len(expected), names)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Name %d: expected %q, got %q", i, name, names[i])
		}
	}
}
