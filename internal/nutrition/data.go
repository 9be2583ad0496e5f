package nutrition

// Facts describes one food's per-serving nutrition profile. Values cover
// the foods the catalog actually carries; they are reference numbers for
// display, not a clinical dataset.
type Facts struct {
	Food        string
	ServingSize string
	Calories    float64
	ProteinG    float64
	FiberG      float64
	SugarsG     float64

	DiabetesFriendly bool
	HeartHealthy     bool
	HighProtein      bool

	Benefits []string
}

// keywords maps a substring of an item name to its facts table key.
// Matching is case-insensitive and first-match-wins in this order.
var keywords = []struct {
	substr string
	key    string
}{
	{"banana", "bananas"},
	{"black beans", "black_beans"},
	{"eggs", "eggs"},
	{"protein powder", "protein_powder"},
	{"peanut butter", "peanut_butter"},
	{"ground beef", "ground_beef"},
	{"ground turkey", "ground_turkey"},
	{"chicken breast", "chicken_breast"},
}

var factsTable = map[string]Facts{
	"bananas": {
		Food:             "Fresh Bananas",
		ServingSize:      "1 medium (118g)",
		Calories:         105,
		ProteinG:         1.3,
		FiberG:           3.1,
		SugarsG:          14.4,
		DiabetesFriendly: true,
		HeartHealthy:     true,
		Benefits: []string{
			"Heart health (potassium)",
			"Digestive health (fiber)",
			"Energy metabolism (vitamin B6)",
		},
	},
	"black_beans": {
		Food:             "Canned Black Beans",
		ServingSize:      "1/2 cup (130g)",
		Calories:         110,
		ProteinG:         7.0,
		FiberG:           7.5,
		SugarsG:          0.5,
		DiabetesFriendly: true,
		HeartHealthy:     true,
		HighProtein:      true,
		Benefits: []string{
			"Plant protein and fiber",
			"Blood sugar control",
			"Budget-friendly protein source",
		},
	},
	"eggs": {
		Food:             "Large Eggs",
		ServingSize:      "1 large egg (50g)",
		Calories:         70,
		ProteinG:         6.3,
		FiberG:           0,
		SugarsG:          0.2,
		DiabetesFriendly: true,
		HeartHealthy:     true,
		HighProtein:      true,
		Benefits: []string{
			"Complete protein source",
			"Brain development (choline)",
			"Bone health (vitamin D)",
		},
	},
	"protein_powder": {
		Food:        "Whey Protein Powder",
		ServingSize: "1 scoop (30g)",
		Calories:    120,
		ProteinG:    24.0,
		FiberG:      0,
		SugarsG:     2.0,
		HighProtein: true,
		Benefits: []string{
			"Muscle maintenance",
			"High protein per dollar",
		},
	},
	"peanut_butter": {
		Food:             "Peanut Butter",
		ServingSize:      "2 tbsp (32g)",
		Calories:         190,
		ProteinG:         8.0,
		FiberG:           2.0,
		SugarsG:          3.0,
		DiabetesFriendly: true,
		HighProtein:      true,
		Benefits: []string{
			"Healthy fats",
			"Shelf-stable protein",
		},
	},
	"ground_beef": {
		Food:        "Ground Beef, 93% Lean",
		ServingSize: "4 oz (113g)",
		Calories:    170,
		ProteinG:    23.0,
		FiberG:      0,
		SugarsG:     0,
		HighProtein: true,
		Benefits: []string{
			"Iron and B12",
			"Complete protein",
		},
	},
	"ground_turkey": {
		Food:             "Ground Turkey, 93% Lean",
		ServingSize:      "4 oz (113g)",
		Calories:         160,
		ProteinG:         22.0,
		FiberG:           0,
		SugarsG:          0,
		HeartHealthy:     true,
		HighProtein:      true,
		DiabetesFriendly: true,
		Benefits: []string{
			"Lean complete protein",
			"Lower saturated fat than beef",
		},
	},
	"chicken_breast": {
		Food:             "Boneless Skinless Chicken Breast",
		ServingSize:      "4 oz (113g)",
		Calories:         120,
		ProteinG:         26.0,
		FiberG:           0,
		SugarsG:          0,
		HeartHealthy:     true,
		HighProtein:      true,
		DiabetesFriendly: true,
		Benefits: []string{
			"Very lean complete protein",
			"Versatile meal base",
		},
	},
}
