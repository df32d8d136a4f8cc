package dietparser

import (
	"github.com/leooon3/mydiet-api/dietparser/entities"
	"github.com/leooon3/mydiet-api/logging"
	"github.com/leooon3/mydiet-api/metrics"
)

// planParser is the state machine that reconstructs the day/meal/dish
// hierarchy out of the ordered rows of a document. It carries the current
// (day, meal) cursor and a pointer to the most recent dish so bulleted
// ingredient rows can attach to it. One planParser serves one parse
// invocation; concurrent parses use independent instances.
type planParser struct {
	doc         *entities.DietDocument
	currentDay  *entities.Day
	currentMeal string
	afterHeader bool
	lastDish    *entities.Dish
	done        bool
}

func newPlanParser(doc *entities.DietDocument) *planParser {
	return &planParser{doc: doc, currentMeal: defaultMeal}
}

// parsePage consumes the rows of one page in order. Row-level ambiguity
// never fails the parse: a row that cannot be confidently classified is
// dropped and the walk continues.
func (p *planParser) parsePage(rows []string) {
	for _, raw := range rows {
		if p.done {
			return
		}
		row := Normalize(raw)
		// The first CAD marker opens the substitution tables; everything
		// from here on belongs to the substitution extractor.
		if cadMarkerRule.MatchString(row) {
			p.done = true
			return
		}
		class := classifyRow(row)
		metrics.RowsClassifiedTotal.WithLabelValues(rowClassLabel(class)).Inc()

		switch class {
		case rowBoilerplate:
			if row != "" {
				metrics.RowsDiscardedTotal.Inc()
			}

		case rowDayHeader:
			day := matchWeekday(row)
			p.currentDay = p.doc.Day(day)
			p.currentMeal = defaultMeal
			p.afterHeader = true
			p.lastDish = nil

		case rowMealHeader:
			trigger, residual, _ := findMealTrigger(row)
			p.currentMeal = NormalizeMealName(trigger)
			p.afterHeader = true
			p.lastDish = nil
			// The trigger may share its row with the first dish; anything
			// shorter than 3 chars after stripping is noise.
			if len(residual) >= 3 {
				p.consumeFoodRow(residual)
			}

		case rowFood:
			p.consumeFoodRow(row)
		}
	}
}

func (p *planParser) consumeFoodRow(row string) {
	fl, ok := extractFoodLine(row, p.afterHeader)
	p.afterHeader = false
	if !ok {
		metrics.RowsDiscardedTotal.Inc()
		return
	}
	if p.currentDay == nil {
		// Food text before the first day heading is untrackable.
		logging.Debug("Dropping food row outside any day", "row", row)
		metrics.RowsDiscardedTotal.Inc()
		return
	}
	p.addFoodLine(fl)
}

// addFoodLine appends the extracted line to the document. A bulleted line
// below a composed-dish title becomes one of its ingredients; a line with a
// detected quantity or code but no bullet always starts a new sibling dish,
// even directly below a composed title.
func (p *planParser) addFoodLine(fl foodLine) {
	if fl.bullet && p.lastDish != nil && p.lastDish.Kind == entities.DishComposed {
		p.lastDish.Ingredients = append(p.lastDish.Ingredients, entities.Ingredient{
			Name:     fl.name,
			Quantity: fl.quantity,
		})
		return
	}

	dish := entities.Dish{Name: fl.name, CadCode: fl.code}
	if fl.quantity != "" {
		dish.Kind = entities.DishSingle
		dish.Quantity = fl.quantity
	} else {
		// Provisionally a composed-dish title; demoted at finalize when no
		// ingredient ever attaches.
		dish.Kind = entities.DishComposed
	}
	p.lastDish = p.currentDay.AppendDish(p.currentMeal, dish)
}

// finalize demotes composed titles that never received ingredients, keeping
// the invariant that a composed dish has a non-empty ingredient list.
func (p *planParser) finalize() {
	for d := range p.doc.Days {
		day := &p.doc.Days[d]
		for m := range day.Meals {
			for i := range day.Meals[m].Dishes {
				dish := &day.Meals[m].Dishes[i]
				if dish.Kind == entities.DishComposed && len(dish.Ingredients) == 0 {
					dish.Kind = entities.DishSingle
				}
			}
		}
	}
}

func rowClassLabel(c rowClass) string {
	switch c {
	case rowDayHeader:
		return "day_header"
	case rowMealHeader:
		return "meal_header"
	case rowFood:
		return "food"
	default:
		return "boilerplate"
	}
}
