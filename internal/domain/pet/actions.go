package pet

import (
	"errors"
	"time"
)

var ErrUnknownAction = errors.New("unknown action type")

// Apply returns a copy of p with the action's fixed stat formula applied:
// deltas added, happiness/health clamped, the action timestamp stamped, and,
// for train only, the evolution chain evaluated on the new experience total.
func Apply(action ActionType, p Pet, now time.Time) (Pet, error) {
	switch action {
	case ActionFeed:
		p.Happiness = ClampStat(p.Happiness + FeedHappinessGain)
		p.Health = ClampStat(p.Health + FeedHealthGain)
		p.Coins += FeedCoinReward
		p.Experience += FeedExperienceGain
		p.LastFed = &now
	case ActionPlay:
		p.Happiness = ClampStat(p.Happiness + PlayHappinessGain)
		p.Coins += PlayCoinReward
		p.Experience += PlayExperienceGain
		p.LastPlayed = &now
	case ActionTrain:
		p.Happiness = ClampStat(p.Happiness + TrainHappinessGain)
		p.Health = ClampStat(p.Health + TrainHealthGain)
		p.Coins += TrainCoinReward
		p.Experience += TrainExperienceGain
		p.LastTrained = &now
		p.Stage = NextStage(p.Stage, p.Experience)
	default:
		return Pet{}, ErrUnknownAction
	}
	return p, nil
}
