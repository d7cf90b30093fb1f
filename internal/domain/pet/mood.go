package pet

// MoodEffect is the stat change a logged mood applies to the owning pet.
type MoodEffect struct {
	HappinessDelta   int
	CoinsEarned      int
	ExperienceGained int
}

// ResolveMoodEffect maps an emotion and its intensity to the pet-side effect.
// Uplifting emotions raise happiness by the full intensity; the others lower
// it by half the intensity, truncated. Coins and experience are awarded
// regardless of the emotion's sign. Intensity is expected to already be
// within [MinIntensity, MaxIntensity]; out-of-range values propagate as-is.
func ResolveMoodEffect(emotion Emotion, intensity int) MoodEffect {
	delta := 0
	if emotion.Uplifting() {
		delta = intensity
	} else if emotion.Valid() {
		delta = -(intensity / 2)
	}
	return MoodEffect{
		HappinessDelta:   delta,
		CoinsEarned:      MoodCoinBase + intensity,
		ExperienceGained: MoodExperienceGain,
	}
}

// ApplyMoodEffect returns the pet's happiness after the effect, clamped.
func ApplyMoodEffect(p Pet, effect MoodEffect) int {
	return ClampStat(p.Happiness + effect.HappinessDelta)
}
