package pet

const (
	DefaultPetName = "MoodPet"

	DefaultHappiness  = 50
	DefaultHealth     = 100
	DefaultCoins      = 100
	DefaultExperience = 0

	StatMin = 0
	StatMax = 100

	FeedHappinessGain  = 15
	FeedHealthGain     = 10
	FeedCoinReward     = 5
	FeedExperienceGain = 10

	PlayHappinessGain  = 20
	PlayCoinReward     = 8
	PlayExperienceGain = 15

	TrainHappinessGain  = 10
	TrainHealthGain     = 5
	TrainCoinReward     = 12
	TrainExperienceGain = 25

	MoodCoinBase       = 10
	MoodExperienceGain = 5

	MinIntensity     = 1
	MaxIntensity     = 10
	DefaultIntensity = 5

	BabyExperienceThreshold      = 50
	AdultExperienceThreshold     = 150
	LegendaryExperienceThreshold = 300
)

var ActionMessages = map[ActionType]string{
	ActionFeed:  "Pet fed successfully!",
	ActionPlay:  "Had fun playing!",
	ActionTrain: "Training completed!",
}
