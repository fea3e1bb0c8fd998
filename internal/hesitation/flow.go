package hesitation

// Flow penalty weights. Continuity starts at 100, is reduced by these and
// floors at 30.
const (
	repetitionPenalty  = 10 // per adjacent repeated word
	redundancyPenalty  = 15 // per over-used word
	shortSegmentWeight = 10 // per word the average segment falls below 5
	continuityFloor    = 30
)

func analyzeFlow(tokens []token, segmentCount int) SpeechContinuity {
	var repetitions int
	var samples []string
	for i := 1; i < len(tokens); i++ {
		if tokens[i].text == tokens[i-1].text {
			repetitions++
			if len(samples) < 5 {
				samples = append(samples, tokens[i].text)
			}
		}
	}

	counts := map[string]int{}
	for _, t := range tokens {
		if len(t.text) > 3 {
			counts[t.text]++
		}
	}
	redundant := 0
	for _, c := range counts {
		if c > 3 {
			redundant++
		}
	}

	avgWordsPerSegment := 0.0
	if segmentCount > 0 {
		avgWordsPerSegment = float64(len(tokens)) / float64(segmentCount)
	}
	short := 5 - avgWordsPerSegment
	if short < 0 {
		short = 0
	}

	penalty := repetitionPenalty*repetitions + redundancyPenalty*redundant + int(shortSegmentWeight*short)
	score := 100 - penalty
	if score < continuityFloor {
		score = continuityFloor
	}

	return SpeechContinuity{
		Score:             score,
		FlowPattern:       flowLabel(score),
		RepetitionCount:   repetitions,
		RepetitionSamples: samples,
	}
}

func flowLabel(score int) string {
	switch {
	case score >= 80:
		return "smooth"
	case score >= 60:
		return "moderate"
	default:
		return "fragmented"
	}
}
