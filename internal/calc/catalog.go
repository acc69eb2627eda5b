package calc

import (
	"slices"

	"lg/fitcalc-api/internal/profile"
)

// Meal is a fixed catalog entry. Values are per serving as listed; nothing
// here is scaled to a target.
type Meal struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Calories    int    `json:"calories"`
	Protein     int    `json:"protein"` // g
	Carbs       int    `json:"carbs"`   // g
	Fat         int    `json:"fat"`     // g
	ImageURL    string `json:"imageUrl,omitempty"`
}

// TimeOfDay selects the morning or evening half of a diet catalog.
type TimeOfDay string

const (
	Morning TimeOfDay = "morning"
	Evening TimeOfDay = "evening"
)

type catalogKey struct {
	pref profile.DietaryPreference
	tod  TimeOfDay
}

func unsplash(id string) string {
	return "https://images.unsplash.com/photo-" + id + "?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80"
}

// catalog is keyed by (preference, time of day). Read-only after init.
var catalog = map[catalogKey][]Meal{
	{profile.Vegetarian, Morning}: {
		{"Greek Yogurt Breakfast Bowl", "Greek yogurt topped with mixed berries, honey, and granola", 350, 20, 45, 8, unsplash("1542691457-cbe4df041eb2")},
		{"Avocado Toast with Egg", "Whole grain toast with smashed avocado, poached egg, and cherry tomatoes", 380, 15, 35, 22, unsplash("1525351484163-7529414344d8")},
		{"Protein Smoothie Bowl", "Smoothie made with banana, spinach, plant protein, almond milk, topped with seeds and nuts", 400, 25, 50, 12, unsplash("1628557044797-f21a177c37ec")},
	},
	{profile.Vegetarian, Evening}: {
		{"Lentil and Vegetable Curry", "Red lentil curry with mixed vegetables served over brown rice", 450, 20, 65, 10, unsplash("1565557623262-b51c2513a641")},
		{"Stuffed Bell Peppers", "Bell peppers stuffed with quinoa, black beans, corn, and topped with cheese", 420, 18, 55, 14, unsplash("1606756790138-261d2b21cd75")},
		{"Eggplant Parmesan", "Baked eggplant slices layered with marinara sauce and mozzarella cheese", 480, 22, 40, 25, unsplash("1601063458289-77247ba485ec")},
	},
	{profile.NonVegetarian, Morning}: {
		{"Protein-Packed Breakfast", "Scrambled eggs with turkey bacon, spinach, and whole grain toast", 420, 30, 30, 18, unsplash("1533089860892-a7c6f10a081a")},
		{"Chicken and Veggie Breakfast Bowl", "Grilled chicken with sweet potatoes, bell peppers, and a poached egg", 450, 35, 40, 15, unsplash("1546548970-71785318a17b")},
		{"Salmon and Egg Wrap", "Smoked salmon, scrambled eggs, and avocado in a whole wheat wrap", 480, 32, 35, 22, unsplash("1559847844-5315695dadae")},
	},
	{profile.NonVegetarian, Evening}: {
		{"Grilled Chicken with Quinoa", "Herb-marinated grilled chicken breast with quinoa and roasted vegetables", 520, 40, 45, 15, unsplash("1598515214211-89d3c73ae83b")},
		{"Baked Salmon with Sweet Potato", "Lemon-dill baked salmon fillet with roasted sweet potato and asparagus", 490, 35, 40, 20, unsplash("1519708227418-c8fd9a32b7a2")},
		{"Turkey Chili", "Lean ground turkey chili with beans, tomatoes, and bell peppers", 450, 38, 35, 16, unsplash("1518675219903-c682c4b16b1d")},
	},
	{profile.Vegan, Morning}: {
		{"Tofu Scramble", "Scrambled tofu with nutritional yeast, spinach, mushrooms, and whole grain toast", 350, 18, 40, 12, unsplash("1603729362753-f8162ac6c3df")},
		{"Chia Pudding", "Chia seeds soaked in almond milk with maple syrup, topped with berries and nuts", 380, 12, 45, 18, unsplash("1546548970-71785318a17b")},
		{"Protein-Packed Oatmeal", "Oatmeal cooked with plant protein, almond milk, and topped with banana and almond butter", 400, 20, 55, 10, unsplash("1571748982800-fa51082c2224")},
	},
	{profile.Vegan, Evening}: {
		{"Buddha Bowl", "Bowl with quinoa, roasted chickpeas, avocado, and mixed vegetables with tahini dressing", 480, 18, 60, 20, unsplash("1512621776951-a57141f2eefd")},
		{"Tempeh Stir Fry", "Tempeh and vegetable stir fry with brown rice and sesame-ginger sauce", 450, 22, 55, 15, unsplash("1603133872878-684f208fb84b")},
		{"Lentil Shepherd's Pie", "Lentil and vegetable filling topped with mashed potatoes", 420, 16, 65, 10, unsplash("1594756202469-9ff9799b2e4e")},
	},
	{profile.Indian, Morning}: {
		{"Masala Dosa with Sambar", "Crispy rice and lentil crepe filled with spiced potatoes, served with lentil soup", 350, 12, 58, 10, unsplash("1630383249896-24c657ade22c")},
		{"Paneer Paratha with Yogurt", "Whole wheat flatbread stuffed with spiced cottage cheese, served with yogurt", 420, 18, 50, 16, unsplash("1605196560602-0e7f70b80396")},
		{"Upma with Chutney", "Savory semolina porridge with vegetables and spices, served with coconut chutney", 320, 10, 48, 12, unsplash("1610192244261-3f33de3f72e1")},
	},
	{profile.Indian, Evening}: {
		{"Chana Masala with Brown Rice", "Spiced chickpea curry with tomatoes and onions, served with brown rice", 460, 22, 65, 13, unsplash("1565557623262-b51c2513a641")},
		{"Chicken Tikka Masala", "Tender chicken in a creamy tomato sauce with aromatic spices, served with naan", 520, 35, 42, 22, unsplash("1565557623262-b51c2513a641")},
		{"Vegetable Biryani", "Fragrant basmati rice cooked with mixed vegetables, herbs, and spices", 430, 12, 68, 14, unsplash("1563379091339-03b21ab4a4f8")},
	},
}

// snacks are shared by every dietary preference.
var snacks = []Meal{
	{"Greek Yogurt with Berries", "Greek yogurt topped with mixed berries and a drizzle of honey", 150, 15, 20, 0, unsplash("1488477181946-6428a0291777")},
	{"Apple with Almond Butter", "Sliced apple with a tablespoon of almond butter", 170, 5, 25, 8, unsplash("1583722556661-c7f17296b475")},
	{"Protein Shake", "Protein shake made with protein powder and almond milk", 180, 25, 10, 3, unsplash("1553627220-92f0446b6a1f")},
	{"Veggie Sticks with Hummus", "Carrot, cucumber, and bell pepper sticks with hummus", 130, 5, 15, 6, unsplash("1553530666-ba11a90bb4ae")},
}

// Meals returns a copy of the catalog for (pref, tod) in catalog order, or an
// empty list for a preference that has no catalog.
func Meals(pref profile.DietaryPreference, tod TimeOfDay) []Meal {
	meals, ok := catalog[catalogKey{pref, tod}]
	if !ok {
		return []Meal{}
	}
	return slices.Clone(meals)
}

// Snacks returns a copy of the shared snack catalog.
func Snacks() []Meal {
	return slices.Clone(snacks)
}
