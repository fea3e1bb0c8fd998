package hesitation

import "regexp"

// Primary fillers: short vocalizations with no semantic content.
var primaryFillers = map[string]bool{
	"uh": true, "um": true, "ah": true, "mm": true,
	"hmm": true, "er": true, "erm": true, "uhm": true,
}

// Conversational hedges are counted separately; they carry some meaning and
// are penalized much more lightly.
var conversationalSingles = map[string]bool{
	"like": true, "actually": true, "basically": true,
}

var conversationalBigrams = map[string]bool{
	"you know": true, "sort of": true, "kind of": true,
}

// Prolonged vowels such as "soooo" or "weeell". RE2 has no backreferences, so
// each vowel run is spelled out.
var prolongedVowelRe = regexp.MustCompile(`^[a-z]*(aaa+|eee+|iii+|ooo+|uuu+)[a-z]*$`)

const clusterWindow = 5 // tokens

type fillerHit struct {
	index    int
	form     string
	segStart float64
}

type fillerStats struct {
	hits                []fillerHit
	forms               map[string]int
	conversationalCount int
	duration            float64

	clusterCount   int
	maxClusterSize int

	distStart, distMiddle, distEnd int
}

func detectFillers(tokens []token, duration float64) fillerStats {
	st := fillerStats{forms: map[string]int{}, duration: duration}

	for i, tok := range tokens {
		switch {
		case primaryFillers[tok.text]:
			st.hits = append(st.hits, fillerHit{index: i, form: tok.text, segStart: tok.segStart})
			st.forms[tok.text]++
		case prolongedVowelRe.MatchString(tok.text):
			st.hits = append(st.hits, fillerHit{index: i, form: tok.text, segStart: tok.segStart})
			st.forms[tok.text]++
		case conversationalSingles[tok.text]:
			st.conversationalCount++
		}
		if i+1 < len(tokens) && conversationalBigrams[tok.text+" "+tokens[i+1].text] {
			st.conversationalCount++
		}
	}

	st.cluster()
	st.distribute()
	return st
}

// cluster groups hits that fall within a sliding 5-token window; any window
// holding two or more fillers counts as a single cluster.
func (st *fillerStats) cluster() {
	run := 1
	for i := 1; i <= len(st.hits); i++ {
		if i < len(st.hits) && st.hits[i].index-st.hits[i-1].index < clusterWindow {
			run++
			continue
		}
		if run >= 2 {
			st.clusterCount++
			if run > st.maxClusterSize {
				st.maxClusterSize = run
			}
		}
		run = 1
	}
}

// distribute buckets each filler by its segment start into thirds of the clip.
func (st *fillerStats) distribute() {
	if st.duration <= 0 {
		return
	}
	third := st.duration / 3
	for _, h := range st.hits {
		switch {
		case h.segStart < third:
			st.distStart++
		case h.segStart < 2*third:
			st.distMiddle++
		default:
			st.distEnd++
		}
	}
}

func (st *fillerStats) clusterLabel() string {
	switch {
	case st.clusterCount >= 3:
		return "frequent"
	case st.clusterCount >= 1:
		return "occasional"
	default:
		return "none"
	}
}

func (st *fillerStats) distributionPattern() string {
	if len(st.hits) == 0 {
		return "none"
	}
	switch {
	case st.distStart >= st.distMiddle && st.distStart >= st.distEnd:
		return "front_loaded"
	case st.distMiddle >= st.distEnd:
		return "middle_concentrated"
	default:
		return "end_heavy"
	}
}

func (st *fillerStats) frequencyPercent(wordCount int) float64 {
	if wordCount == 0 {
		return 0
	}
	return 100 * float64(len(st.hits)) / float64(wordCount)
}

func (st *fillerStats) report(wordCount int) FillerWords {
	return FillerWords{
		TotalCount:          len(st.hits),
		ConversationalCount: st.conversationalCount,
		FrequencyPercent:    st.frequencyPercent(wordCount),
		DetectedForms:       st.forms,
		Clusters: Clusters{
			Count:   st.clusterCount,
			MaxSize: st.maxClusterSize,
			Label:   st.clusterLabel(),
		},
		TemporalDistribution: Distribution{
			Start:   st.distStart,
			Middle:  st.distMiddle,
			End:     st.distEnd,
			Pattern: st.distributionPattern(),
		},
	}
}
