package hesitation

import "fmt"

// driver is one applied adjustment of the additive confidence model. Keeping
// the rules in one table makes every point of the final score traceable to a
// specific observed signal.
type driver struct {
	Points     int // negative for penalties
	Reason     string
	Suggestion string
}

const (
	confidenceCeiling = 100
	confidenceFloor   = 30
)

// confidenceScore applies the penalty/bonus table and returns the clamped
// score together with the drivers that shaped it, ordered by severity.
func confidenceScore(fillers fillerStats, pauses Pauses, flow SpeechContinuity, prog TemporalProgression, wordCount int) (int, []driver) {
	var drivers []driver
	add := func(points int, reason, suggestion string) {
		drivers = append(drivers, driver{Points: points, Reason: reason, Suggestion: suggestion})
	}

	freq := fillers.frequencyPercent(wordCount)
	switch {
	case freq > 8:
		add(-45, fmt.Sprintf("filler words make up %.1f%% of your speech", freq),
			"Practice pausing silently instead of saying \"um\" or \"uh\"; a silent beat reads as composure.")
	case freq > 4:
		add(-30, fmt.Sprintf("filler words make up %.1f%% of your speech", freq),
			"Practice pausing silently instead of saying \"um\" or \"uh\"; a silent beat reads as composure.")
	case freq > 1:
		add(-15, fmt.Sprintf("filler words make up %.1f%% of your speech", freq),
			"Try replacing filler sounds with a short silent pause.")
	case len(fillers.hits) > 0:
		add(-5, "a few filler words appeared", "")
	}

	switch {
	case fillers.clusterCount >= 3:
		add(-20, fmt.Sprintf("%d filler clusters detected", fillers.clusterCount),
			"When fillers bunch together, stop, breathe, and restart the sentence.")
	case fillers.clusterCount >= 1:
		add(-10, fmt.Sprintf("%d filler cluster detected", fillers.clusterCount),
			"When fillers bunch together, stop, breathe, and restart the sentence.")
	}

	switch pauses.Pattern {
	case "frequent_uncertainty":
		add(-40, "pauses of two seconds or more interrupted the answer",
			"Very long silences usually mean you're searching for the whole answer at once; outline one point, say it, then find the next.")
	case "frequent_long_pauses":
		add(-30, "several pauses longer than a second",
			"Long pauses are fine occasionally; keep them under a second by planning the next phrase while finishing the current one.")
	case "moderate_pauses":
		add(-20, "pauses averaged over 0.8 seconds", "")
	case "thoughtful":
		add(-10, "frequent short thinking pauses", "")
	}

	if n := pauses.LongCount + pauses.NervousCount; n > 0 {
		add(-5*n, fmt.Sprintf("%d pauses exceeded one second", n), "")
	}

	switch {
	case flow.Score < 60:
		add(-25, "speech was fragmented with repeated or restarted words",
			"Slow down slightly; fragmentation usually drops when pace drops.")
	case flow.Score < 80:
		add(-15, "speech flow was somewhat uneven",
			"Slow down slightly; fragmentation usually drops when pace drops.")
	}

	switch {
	case fillers.conversationalCount > 4:
		add(-15, fmt.Sprintf("hedging phrases used %d times", fillers.conversationalCount),
			"Watch hedges like \"kind of\" and \"you know\"; committing to a statement sounds more confident.")
	case fillers.conversationalCount > 0:
		add(-3, "occasional hedging phrases", "")
	}

	switch {
	case wordCount < 10:
		add(-30, fmt.Sprintf("only %d words spoken", wordCount),
			"Aim for at least a few full sentences; short answers leave confidence unreadable.")
	case wordCount < 20:
		add(-15, fmt.Sprintf("only %d words spoken", wordCount),
			"Aim for at least a few full sentences; short answers leave confidence unreadable.")
	}

	switch prog.Trend {
	case "improving":
		add(+10, "filler density dropped toward the end of the answer", "")
	case "declining":
		add(-10, "filler density rose toward the end of the answer",
			"Energy often dips late in an answer; land on a short, planned closing sentence.")
	}

	score := confidenceCeiling
	for _, d := range drivers {
		score += d.Points
	}
	if score > confidenceCeiling {
		score = confidenceCeiling
	}
	if score < confidenceFloor {
		score = confidenceFloor
	}

	sortDriversBySeverity(drivers)
	return score, drivers
}

// sortDriversBySeverity orders the biggest penalties first. Insertion sort is
// plenty for a table this small and keeps the order stable.
func sortDriversBySeverity(ds []driver) {
	for i := 1; i < len(ds); i++ {
		for j := i; j > 0 && ds[j].Points < ds[j-1].Points; j-- {
			ds[j], ds[j-1] = ds[j-1], ds[j]
		}
	}
}
