package pet

import "testing"

func TestResolveMoodEffect_UpliftingEmotionsAddFullIntensity(t *testing.T) {
	for _, emotion := range []Emotion{EmotionHappy, EmotionExcited, EmotionCalm} {
		for intensity := MinIntensity; intensity <= MaxIntensity; intensity++ {
			effect := ResolveMoodEffect(emotion, intensity)
			if effect.HappinessDelta != intensity {
				t.Fatalf("%s intensity %d: happiness delta = %d, want %d", emotion, intensity, effect.HappinessDelta, intensity)
			}
		}
	}
}

func TestResolveMoodEffect_NegativeEmotionsSubtractHalfIntensity(t *testing.T) {
	for _, emotion := range []Emotion{EmotionSad, EmotionAngry, EmotionAnxious} {
		for intensity := MinIntensity; intensity <= MaxIntensity; intensity++ {
			effect := ResolveMoodEffect(emotion, intensity)
			if want := -(intensity / 2); effect.HappinessDelta != want {
				t.Fatalf("%s intensity %d: happiness delta = %d, want %d", emotion, intensity, effect.HappinessDelta, want)
			}
		}
	}
}

func TestResolveMoodEffect_TruncatesBeforeNegating(t *testing.T) {
	if got := ResolveMoodEffect(EmotionSad, 5).HappinessDelta; got != -2 {
		t.Fatalf("sad intensity 5: happiness delta = %d, want -2", got)
	}
	if got := ResolveMoodEffect(EmotionAngry, 7).HappinessDelta; got != -3 {
		t.Fatalf("angry intensity 7: happiness delta = %d, want -3", got)
	}
	if got := ResolveMoodEffect(EmotionAnxious, 10).HappinessDelta; got != -5 {
		t.Fatalf("anxious intensity 10: happiness delta = %d, want -5", got)
	}
}

func TestResolveMoodEffect_RewardsIgnoreEmotionSign(t *testing.T) {
	for _, emotion := range []Emotion{EmotionHappy, EmotionSad, EmotionAngry, EmotionAnxious, EmotionCalm, EmotionExcited} {
		for intensity := MinIntensity; intensity <= MaxIntensity; intensity++ {
			effect := ResolveMoodEffect(emotion, intensity)
			if effect.CoinsEarned != MoodCoinBase+intensity {
				t.Fatalf("%s intensity %d: coins = %d, want %d", emotion, intensity, effect.CoinsEarned, MoodCoinBase+intensity)
			}
			if effect.ExperienceGained != MoodExperienceGain {
				t.Fatalf("%s intensity %d: experience = %d, want %d", emotion, intensity, effect.ExperienceGained, MoodExperienceGain)
			}
		}
	}
}

func TestApplyMoodEffect_ClampsHappiness(t *testing.T) {
	p := Pet{Happiness: 98}
	if got := ApplyMoodEffect(p, MoodEffect{HappinessDelta: 10}); got != 100 {
		t.Fatalf("happiness = %d, want clamped 100", got)
	}
	p.Happiness = 1
	if got := ApplyMoodEffect(p, MoodEffect{HappinessDelta: -5}); got != 0 {
		t.Fatalf("happiness = %d, want clamped 0", got)
	}
}
