package hesitation

import (
	"fmt"
	"sort"
	"strings"
)

// synthesizeFeedback maps the metrics into the structured feedback block.
// Everything is derived from the report itself so the output is deterministic
// and every statement traces back to an observed number.
func synthesizeFeedback(r *Report, drivers []driver) Feedback {
	var fb Feedback

	// observations: raw counts
	fw := r.FillerWords
	if fw.TotalCount > 0 {
		fb.Observations = append(fb.Observations, fmt.Sprintf(
			"%d filler words detected (%s), %.1f%% of all words",
			fw.TotalCount, formList(fw.DetectedForms), fw.FrequencyPercent))
	} else {
		fb.Observations = append(fb.Observations, "no filler words detected")
	}
	p := r.Pauses
	if n := p.ThinkingCount + p.LongCount + p.NervousCount; n > 0 {
		fb.Observations = append(fb.Observations, fmt.Sprintf(
			"%d notable pauses: %d thinking, %d long, %d very long (max %.1fs)",
			n, p.ThinkingCount, p.LongCount, p.NervousCount, p.MaxSeconds))
	}
	if r.SpeechContinuity.RepetitionCount > 0 {
		fb.Observations = append(fb.Observations, fmt.Sprintf(
			"%d word repetitions (e.g. %s)",
			r.SpeechContinuity.RepetitionCount,
			strings.Join(r.SpeechContinuity.RepetitionSamples, ", ")))
	}

	// explanations: name the mechanism behind each flagged signal
	if fw.Clusters.Count > 0 {
		fb.Explanations = append(fb.Explanations,
			"filler words arriving in clusters suggest nervous speech rather than word-finding")
	}
	if p.NervousCount > 0 {
		fb.Explanations = append(fb.Explanations,
			"pauses over two seconds usually signal uncertainty about the answer itself")
	} else if p.ThinkingCount > 0 {
		fb.Explanations = append(fb.Explanations,
			"short half-second pauses are normal thinking time and not a problem on their own")
	}
	if r.SpeechContinuity.Score < 80 {
		fb.Explanations = append(fb.Explanations,
			"repeated and restarted words fragment the flow and make the answer harder to follow")
	}

	// patterns: the labels themselves
	fb.Patterns = append(fb.Patterns,
		"filler clusters: "+fw.Clusters.Label,
		"pauses: "+p.Pattern,
		"flow: "+r.SpeechContinuity.FlowPattern,
		"trend: "+r.TemporalProgression.Trend,
	)
	if fw.TemporalDistribution.Pattern != "none" {
		fb.Patterns = append(fb.Patterns, "filler placement: "+fw.TemporalDistribution.Pattern)
	}

	// suggestions: top three, ordered by the largest penalty driver
	seen := map[string]bool{}
	for _, d := range drivers {
		if len(fb.Suggestions) >= 3 {
			break
		}
		if d.Suggestion == "" || seen[d.Suggestion] {
			continue
		}
		seen[d.Suggestion] = true
		fb.Suggestions = append(fb.Suggestions, d.Suggestion)
	}

	// faults: penalty reasons worth naming
	for _, d := range drivers {
		if d.Points <= -15 {
			fb.Faults = append(fb.Faults, d.Reason)
		}
	}

	// positives: only when the metrics actually support them
	if fw.TotalCount == 0 {
		fb.Positives = append(fb.Positives, "clean delivery with no filler words")
	}
	if p.Pattern == "smooth" || p.Pattern == "normal" {
		fb.Positives = append(fb.Positives, "steady pacing without distracting pauses")
	}
	if r.SpeechContinuity.FlowPattern == "smooth" {
		fb.Positives = append(fb.Positives, "fluid, connected sentences")
	}
	if r.TemporalProgression.Trend == "improving" {
		fb.Positives = append(fb.Positives, "delivery settled down as the answer progressed")
	}

	fb.Summary = summarize(r)
	return fb
}

func summarize(r *Report) string {
	switch r.ConfidenceIndicator {
	case "Good":
		return fmt.Sprintf("Confident delivery (score %d). Pacing and flow were solid; keep this up.", r.ConfidenceScore)
	case "Moderate":
		return fmt.Sprintf("Reasonable delivery (score %d) with a few hesitation signals worth smoothing out.", r.ConfidenceScore)
	default:
		return fmt.Sprintf("Noticeable hesitation (score %d). The signals below point at what to practice first.", r.ConfidenceScore)
	}
}

// formList renders detected filler forms in a stable order.
func formList(forms map[string]int) string {
	keys := make([]string, 0, len(forms))
	for k := range forms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%d", k, forms[k]))
	}
	return strings.Join(parts, ", ")
}
