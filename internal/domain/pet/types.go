package pet

import "time"

type Stage string

const (
	StageEgg       Stage = "egg"
	StageBaby      Stage = "baby"
	StageAdult     Stage = "adult"
	StageLegendary Stage = "legendary"
)

func (s Stage) Valid() bool {
	switch s {
	case StageEgg, StageBaby, StageAdult, StageLegendary:
		return true
	}
	return false
}

type Emotion string

const (
	EmotionHappy   Emotion = "happy"
	EmotionSad     Emotion = "sad"
	EmotionAngry   Emotion = "angry"
	EmotionAnxious Emotion = "anxious"
	EmotionCalm    Emotion = "calm"
	EmotionExcited Emotion = "excited"
)

func (e Emotion) Valid() bool {
	switch e {
	case EmotionHappy, EmotionSad, EmotionAngry, EmotionAnxious, EmotionCalm, EmotionExcited:
		return true
	}
	return false
}

// Uplifting reports whether logging this emotion raises happiness.
// The remaining three valid emotions lower it.
func (e Emotion) Uplifting() bool {
	switch e {
	case EmotionHappy, EmotionExcited, EmotionCalm:
		return true
	}
	return false
}

type ActionType string

const (
	ActionFeed  ActionType = "feed"
	ActionPlay  ActionType = "play"
	ActionTrain ActionType = "train"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionFeed, ActionPlay, ActionTrain:
		return true
	}
	return false
}

type Pet struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Stage       Stage      `json:"stage"`
	Happiness   int        `json:"happiness"`
	Health      int        `json:"health"`
	Coins       int        `json:"coins"`
	Experience  int        `json:"experience"`
	LastFed     *time.Time `json:"last_fed,omitempty"`
	LastPlayed  *time.Time `json:"last_played,omitempty"`
	LastTrained *time.Time `json:"last_trained,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// New returns a pet with the default starting stats.
func New(id, name string, createdAt time.Time) Pet {
	if name == "" {
		name = DefaultPetName
	}
	return Pet{
		ID:         id,
		Name:       name,
		Stage:      StageEgg,
		Happiness:  DefaultHappiness,
		Health:     DefaultHealth,
		Coins:      DefaultCoins,
		Experience: DefaultExperience,
		CreatedAt:  createdAt,
	}
}

// MoodEntry is immutable once created.
type MoodEntry struct {
	ID        string    `json:"id"`
	Emotion   Emotion   `json:"emotion"`
	Intensity int       `json:"intensity"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	PetID     string    `json:"pet_id"`
}

type Achievement struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
	PetID       string     `json:"pet_id"`
}

type ShopItem struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Category    string `json:"category"`
	Icon        string `json:"icon"`
}
