package model

// Timestamps are stored as ISO-8601 strings (see timefmt.go in the parent
// package); empty string means unset.

type Pet struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Stage       string `gorm:"column:stage"`
	Happiness   int32  `gorm:"column:happiness"`
	Health      int32  `gorm:"column:health"`
	Coins       int32  `gorm:"column:coins"`
	Experience  int32  `gorm:"column:experience"`
	LastFed     string `gorm:"column:last_fed"`
	LastPlayed  string `gorm:"column:last_played"`
	LastTrained string `gorm:"column:last_trained"`
	CreatedAt   string `gorm:"column:created_at;autoCreateTime:false"`
}

func (Pet) TableName() string { return "pets" }

type MoodEntry struct {
	ID        string `gorm:"column:id;primaryKey"`
	Emotion   string `gorm:"column:emotion"`
	Intensity int32  `gorm:"column:intensity"`
	Note      string `gorm:"column:note"`
	Timestamp string `gorm:"column:timestamp;index"`
	PetID     string `gorm:"column:pet_id;index"`
}

func (MoodEntry) TableName() string { return "mood_entries" }

type Achievement struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	Icon        string `gorm:"column:icon"`
	Unlocked    bool   `gorm:"column:unlocked"`
	UnlockedAt  string `gorm:"column:unlocked_at"`
	PetID       string `gorm:"column:pet_id;index"`
}

func (Achievement) TableName() string { return "achievements" }

type ShopItem struct {
	ID          string `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	Description string `gorm:"column:description"`
	Price       int32  `gorm:"column:price"`
	Category    string `gorm:"column:category"`
	Icon        string `gorm:"column:icon"`
}

func (ShopItem) TableName() string { return "shop_items" }
