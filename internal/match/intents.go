package match

// intents maps a canonical keyword to related search terms. It widens a
// user's keyword into the vocabulary that actually appears in place records:
// someone typing "pizza" should also match a place tagged "pizzeria" or
// "italian". Keys and values are in normalized (singular, lowercase) form.
//
// The table is plain lookup data; read-only, process-wide, never mutated at
// runtime. Keywords without an entry expand to themselves.
var intents = map[string][]string{
	"pizza":     {"pizzeria", "italian"},
	"pasta":     {"italian", "pizzeria"},
	"taco":      {"mexican", "taqueria", "burrito"},
	"burrito":   {"mexican", "taqueria", "taco"},
	"burger":    {"american", "diner", "grill"},
	"sandwich":  {"deli", "sub", "hoagie"},
	"sushi":     {"japanese", "ramen"},
	"ramen":     {"japanese", "noodle"},
	"noodle":    {"asian", "ramen", "pho"},
	"pho":       {"vietnamese", "noodle"},
	"curry":     {"indian", "thai"},
	"dumpling":  {"chinese", "asian"},
	"wing":      {"chicken", "bar", "pub"},
	"chicken":   {"wing", "fried"},
	"bbq":       {"barbecue", "smokehouse", "grill"},
	"barbecue":  {"bbq", "smokehouse", "grill"},
	"steak":     {"steakhouse", "grill"},
	"seafood":   {"fish", "oyster", "crab"},
	"fish":      {"seafood", "chippy"},
	"salad":     {"vegetarian", "vegan", "healthy"},
	"vegan":     {"vegetarian", "salad"},
	"breakfast": {"brunch", "diner", "cafe"},
	"brunch":    {"breakfast", "cafe"},
	"coffee":    {"cafe", "espresso", "bakery"},
	"dessert":   {"bakery", "gelato", "cake"},
	"beer":      {"bar", "pub", "brewery"},
	"wine":      {"bar", "bistro"},
	"cocktail":  {"bar", "lounge"},
}

// Expand turns a set of normalized keywords into the expanded term set: the
// union, over every keyword, of the keyword itself plus its intent-table
// entries (each normalized, in case the table ever carries a plural).
//
// Empty or all-empty input produces an empty set. An empty expanded term set
// is the "filtering disabled" marker; the filter matches everything rather
// than nothing. No keywords means no constraints; that is a product rule,
// not an accident.
func Expand(keywords []string) map[string]struct{} {
	terms := make(map[string]struct{})
	for _, kw := range keywords {
		kw = Normalize(kw)
		if kw == "" {
			continue
		}
		terms[kw] = struct{}{}
		for _, t := range intents[kw] {
			if t = Normalize(t); t != "" {
				terms[t] = struct{}{}
			}
		}
	}
	return terms
}
