package habits

// A HabitCategory groups HabitTemplates for onboarding.
type HabitCategory string

const (
	CategorySoberOctober   HabitCategory = "sober_october"
	CategoryPhysicalHealth HabitCategory = "physical_health"
	CategoryMentalWellness HabitCategory = "mental_wellness"
	CategoryDailyRoutines  HabitCategory = "daily_routines"
)

func (hc HabitCategory) String() string { return string(hc) }

// Valid asserts whether hc is a known HabitCategory.
//
// Valid implements Enumerable.
func (hc HabitCategory) Valid() error {
	switch hc {
	case CategorySoberOctober, CategoryPhysicalHealth, CategoryMentalWellness, CategoryDailyRoutines:
		return nil
	default:
		return ErrNotValid
	}
}

// A HabitTemplate is a preconfigured Habit a User can pick instead of typing one out.
// A Habit created from a HabitTemplate references it through Habit.TemplateID.
type HabitTemplate struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Type          HabitType     `json:"type"`
	PreferredTime string        `json:"preferredTime"`
	TargetCount   *int          `json:"targetCount"`
	Category      HabitCategory `json:"category"`
	Icon          string        `json:"icon"`
}

func target(n int) *int { return &n }

var templates = []HabitTemplate{
	{"no_alcohol", "No Alcohol", "Stay alcohol-free for the entire challenge", HabitBinary, "all_day", nil, CategorySoberOctober, "🚫🍺"},
	{"no_sugar", "No Added Sugar", "Avoid added sugars and sweeteners", HabitBinary, "all_day", nil, CategorySoberOctober, "🚫🍰"},
	{"no_caffeine", "No Caffeine After 2pm", "Cut off caffeine intake after 2pm", HabitBinary, "afternoon", nil, CategorySoberOctober, "☕"},
	{"no_social_media", "No Social Media", "Stay off social media platforms", HabitBinary, "all_day", nil, CategorySoberOctober, "📱"},

	{"exercise", "Exercise", "Complete a workout session", HabitBinary, "morning", nil, CategoryPhysicalHealth, "💪"},
	{"pushups", "Pushups", "Do your daily pushups", HabitCounted, "morning", target(20), CategoryPhysicalHealth, "🏋️"},
	{"walk_10k", "Walk 10,000 Steps", "Hit your daily step goal", HabitBinary, "all_day", nil, CategoryPhysicalHealth, "🚶"},
	{"vitamins", "Take Vitamins", "Take your daily vitamins and supplements", HabitBinary, "morning", nil, CategoryPhysicalHealth, "💊"},
	{"cold_shower", "Cold Shower", "Take a cold shower for alertness and recovery", HabitBinary, "morning", nil, CategoryPhysicalHealth, "🚿"},
	{"yoga", "Yoga Practice", "Complete a yoga session", HabitBinary, "morning", nil, CategoryPhysicalHealth, "🧘"},
	{"drink_water", "Drink 8 Glasses of Water", "Stay hydrated throughout the day", HabitCounted, "all_day", target(8), CategoryPhysicalHealth, "💧"},

	{"meditate", "Meditate", "Practice mindfulness meditation", HabitBinary, "morning", nil, CategoryMentalWellness, "🧘‍♀️"},
	{"journal", "Journal", "Write in your journal", HabitBinary, "evening", nil, CategoryMentalWellness, "📓"},
	{"read", "Read", "Read for pleasure or learning", HabitBinary, "evening", nil, CategoryMentalWellness, "📚"},
	{"gratitude", "Practice Gratitude", "Write down three things you're grateful for", HabitBinary, "evening", nil, CategoryMentalWellness, "🙏"},

	{"sleep_8hrs", "Sleep 8 Hours", "Get a full night's rest", HabitBinary, "evening", nil, CategoryDailyRoutines, "😴"},
	{"make_bed", "Make Your Bed", "Start the day by making your bed", HabitBinary, "morning", nil, CategoryDailyRoutines, "🛏️"},
	{"floss", "Floss Teeth", "Floss your teeth daily", HabitBinary, "evening", nil, CategoryDailyRoutines, "🦷"},
}

// Templates returns a copy of every HabitTemplate in the catalog.
func Templates() []HabitTemplate {
	return append([]HabitTemplate(nil), templates...)
}

// TemplateByID returns the HabitTemplate identified by id
// or ErrNotFound.
func TemplateByID(id string) (HabitTemplate, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}

	return HabitTemplate{}, ErrNotFound
}

// TemplatesByCategory returns the HabitTemplates in category.
// If category is not a valid HabitCategory, every HabitTemplate returns.
func TemplatesByCategory(category HabitCategory) []HabitTemplate {
	if err := category.Valid(); err != nil {
		return Templates()
	}

	var found []HabitTemplate
	for _, t := range templates {
		if t.Category == category {
			found = append(found, t)
		}
	}

	return found
}
