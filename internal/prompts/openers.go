package prompts

import (
	"fmt"

	"github.com/voxprep/voxprep/internal/models"
)

// Opening questions for topic-based technical interviews. The first turn does
// not need an LLM round-trip; it always starts from fundamentals.
var topicOpeners = map[string]string{
	"python": "Let's start with the fundamentals. Can you explain the difference between a list and a tuple in Python, and when you would use each?",
	"java":   "Let's start with the fundamentals. Can you explain what the JVM is and what happens when you run a Java program?",
	"sql":    "Let's start with the fundamentals. Can you explain the difference between an INNER JOIN and a LEFT JOIN?",
	"dotnet": "Let's start with the fundamentals. Can you explain what the .NET CLR is and how managed code differs from unmanaged code?",
	"qa":     "Let's start with the fundamentals. Can you explain the difference between verification and validation in software testing?",
	"php":    "Let's start with the fundamentals. Can you explain how PHP handles a typical HTTP request from arrival to response?",
}

const realtimeOpener = "Welcome, and thanks for joining today. To get us started, please introduce yourself and walk me through your background and the kind of work you've been doing."

const hrOpener = "Welcome! This will be a behavioral interview: I'll ask about situations you've experienced at work or in your studies, and I'd like you to walk me through what happened and what you did. To begin, tell me a bit about yourself."

// Opener returns the first assistant turn for a session, plus the initial
// cursor value. Topic-based technical and project modes open directly on a
// question and start the cursor at 1; realtime and HR open with an
// introduction and start at 0.
func Opener(typ models.InterviewType, topic, projectText string) (text string, startIndex int) {
	switch typ {
	case models.InterviewProject:
		return "Thanks for sharing your project. To start, give me a high-level overview: what does it do, who is it for, and what was your role in building it?", 1
	case models.InterviewHR:
		return hrOpener, 0
	case models.InterviewTechnical:
		if topic == models.TopicRealtime || topic == "" {
			return realtimeOpener, 0
		}
		if q, ok := topicOpeners[topic]; ok {
			return q, 1
		}
		return fmt.Sprintf("Let's start with the fundamentals of %s. What do you consider the core concepts someone must understand to work with it?", topicDisplay(topic)), 1
	default:
		return realtimeOpener, 0
	}
}

// RoundTwoIntro is the assistant turn emitted when the candidate accepts the
// second round.
func RoundTwoIntro(firstArea string) string {
	return fmt.Sprintf("Great, let's move on to round two. This round goes a level deeper, focusing on the areas we should strengthen. Let's start with: %s", firstArea)
}

// RoundTwoOffer is emitted when round one of a topic-based interview runs out
// of topic areas.
const RoundTwoOffer = "That covers the fundamentals round. You did well to get through all of it. Would you like to continue with a second round of intermediate questions focused on the areas we can strengthen? Just say yes or no."

// Farewell is emitted when the candidate declines round two.
const Farewell = "No problem at all. Thanks for practicing today, and good luck with your interviews!"
