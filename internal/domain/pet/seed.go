package pet

// SeedShopItem is a catalog row before an ID is assigned.
type SeedShopItem struct {
	Name        string
	Description string
	Price       int
	Category    string
	Icon        string
}

// DefaultShopItems is the fixed catalog inserted on first read of an empty
// shop collection.
func DefaultShopItems() []SeedShopItem {
	return []SeedShopItem{
		{Name: "Premium Food", Description: "Increases happiness by 25", Price: 50, Category: "food", Icon: "🍖"},
		{Name: "Toy Ball", Description: "Fun toy for playing", Price: 30, Category: "toy", Icon: "🏀"},
		{Name: "Training Weights", Description: "Boosts training effectiveness", Price: 75, Category: "training", Icon: "🏋️"},
		{Name: "Sparkle Background", Description: "Beautiful starry background", Price: 100, Category: "background", Icon: "✨"},
		{Name: "Rainbow Collar", Description: "Colorful pet accessory", Price: 60, Category: "accessory", Icon: "🌈"},
	}
}

// SeedAchievement is an achievement row before an ID is assigned. Unlock
// conditions are descriptive only; nothing evaluates them yet.
type SeedAchievement struct {
	Name        string
	Description string
	Icon        string
}

// DefaultAchievements is the fixed set seeded per pet on first read.
func DefaultAchievements() []SeedAchievement {
	return []SeedAchievement{
		{Name: "First Steps", Description: "Create your first pet", Icon: "🐣"},
		{Name: "Mood Tracker", Description: "Log 10 mood entries", Icon: "📊"},
		{Name: "Happy Pet", Description: "Reach 100 happiness", Icon: "😊"},
		{Name: "Evolution Master", Description: "Evolve to Adult stage", Icon: "🌟"},
		{Name: "Coin Collector", Description: "Earn 500 coins", Icon: "💰"},
	}
}
