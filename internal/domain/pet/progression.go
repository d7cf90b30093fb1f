package pet

// NextStage evaluates the evolution chain against an updated experience
// total. Each arm requires both the experience threshold and the exact
// predecessor stage, so a pet never skips a stage no matter how far its
// experience jumps in one update, and a stage never regresses.
func NextStage(current Stage, experience int) Stage {
	switch {
	case experience >= LegendaryExperienceThreshold && current == StageAdult:
		return StageLegendary
	case experience >= AdultExperienceThreshold && current == StageBaby:
		return StageAdult
	case experience >= BabyExperienceThreshold && current == StageEgg:
		return StageBaby
	}
	return current
}
