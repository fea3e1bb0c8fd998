package prompts

import (
	"fmt"
	"strings"

	"github.com/voxprep/voxprep/internal/models"
)

// RealtimeIntroArea is always the first entry of a realtime bank.
const RealtimeIntroArea = "Introduction and Background"

const bankFormatRule = `Return ONLY a JSON array of exactly 10 short strings, no prose, no numbering outside the array.`

// BankPrompt builds the one-shot question-bank generation prompt for a
// session. Entries are topic areas or behavioral prompts, not literal
// questions; the bank budgets a roughly ten minute interview.
func BankPrompt(typ models.InterviewType, topic string, round int, resume, jd, projectText string, weakAreas []string) string {
	switch typ {
	case models.InterviewHR:
		return `Generate 10 behavioral interview prompts covering: communication, teamwork, conflict resolution, leadership, handling stress, time management, adaptability, motivation, self-awareness, ethics, and receiving feedback. Each prompt must be answerable with a Situation/Task/Action/Result story and must not require any technical knowledge.
` + bankFormatRule

	case models.InterviewProject:
		return fmt.Sprintf(`The candidate described this project:
%s

Generate 10 deep-dive angles for a project interview, covering architecture, technology stack rationale, challenges faced, security, scalability, and possible improvements. Each entry is a short angle description, not a full question.
%s`, clip(projectText, 3000), bankFormatRule)

	case models.InterviewTechnical:
		if topic == models.TopicRealtime || topic == "" {
			return fmt.Sprintf(`Resume:
%s

Job description:
%s

From the resume and job description, list 10 topic AREAS to guide an adaptive technical interview. These are guidance areas, not questions. The FIRST entry must be exactly "%s".
%s`, clip(resume, 3000), clip(jd, 3000), RealtimeIntroArea, bankFormatRule)
		}
		if round >= 2 {
			return fmt.Sprintf(`Generate 10 intermediate-level topic areas for a %s interview, round two. Bias the list toward these areas the candidate struggled with in round one: %s. Topic areas only, not questions.
%s`, topicDisplay(topic), strings.Join(weakAreas, ", "), bankFormatRule)
		}
		return fmt.Sprintf(`Generate 10 fundamentals-only topic areas for a first-round %s interview. Cover the core of the language/stack a junior-to-mid candidate must know. Topic areas only, not questions.
%s`, topicDisplay(topic), bankFormatRule)

	default:
		return `Generate 10 topic areas for a general technical interview. ` + bankFormatRule
	}
}

// FallbackBank is the built-in bank used when the LLM response cannot be
// parsed into at least five entries.
func FallbackBank(typ models.InterviewType, topic string) []string {
	switch typ {
	case models.InterviewHR:
		return []string{
			"Tell me about a time you had to explain something complex to a non-expert.",
			"Describe a situation where you disagreed with a teammate. What did you do?",
			"Tell me about a deadline you nearly missed and how you handled it.",
			"Describe a time you took the lead without being asked to.",
			"Tell me about a piece of critical feedback you received and what you changed.",
			"Describe a time you had to adapt to a sudden change of plans.",
			"Tell me about a decision you made that you later regretted.",
			"Describe a situation where you had to balance several competing priorities.",
			"Tell me about a time you helped a struggling teammate.",
			"What motivates you to do your best work? Give a concrete example.",
		}
	case models.InterviewProject:
		return []string{
			"High-level architecture and main components",
			"Why this technology stack",
			"Hardest technical challenge and how it was solved",
			"Data model and storage decisions",
			"Security considerations",
			"How the system would scale under 10x load",
			"Testing and quality strategy",
			"Deployment and operations",
			"Trade-offs made under time pressure",
			"What you would redesign today",
		}
	}

	// technical
	if topic == models.TopicRealtime || topic == "" {
		return []string{
			RealtimeIntroArea,
			"Core strengths from the resume",
			"Most recent project",
			"Programming fundamentals",
			"Data structures in daily work",
			"Debugging approach",
			"Code quality and reviews",
			"Working with databases",
			"APIs and integration",
			"Learning and growth areas",
		}
	}

	if bank, ok := fallbackTopicBanks[topic]; ok {
		return bank
	}
	return []string{
		"Language fundamentals",
		"Data types and structures",
		"Control flow and functions",
		"Error handling",
		"Standard library essentials",
		"Memory and performance basics",
		"Testing basics",
		"Tooling and environment",
		"Common pitfalls",
		"A small design exercise",
	}
}

var fallbackTopicBanks = map[string][]string{
	"python": {
		"Core data types: lists, tuples, dicts, sets",
		"Mutability and copying",
		"Functions, *args/**kwargs, scope",
		"List comprehensions and generators",
		"Exception handling",
		"Modules, packages and imports",
		"Object-oriented basics: classes, inheritance",
		"Decorators",
		"File handling and context managers",
		"The GIL and threading basics",
	},
	"java": {
		"JVM, JDK and bytecode",
		"Primitives vs objects, autoboxing",
		"OOP pillars: inheritance, polymorphism, encapsulation",
		"Interfaces vs abstract classes",
		"Collections framework",
		"Exception hierarchy: checked vs unchecked",
		"Generics",
		"equals/hashCode contract",
		"Garbage collection basics",
		"Threads and synchronization basics",
	},
	"sql": {
		"SELECT fundamentals and filtering",
		"JOIN types",
		"GROUP BY and aggregate functions",
		"Subqueries vs joins",
		"Indexes and when they help",
		"Primary and foreign keys",
		"Normalization basics",
		"Transactions and ACID",
		"NULL semantics",
		"Window functions introduction",
	},
	"dotnet": {
		"CLR and managed execution",
		"Value types vs reference types",
		"LINQ fundamentals",
		"async/await basics",
		"Exception handling",
		"Interfaces and dependency injection",
		"Garbage collection and IDisposable",
		"Collections and generics",
		"ASP.NET request pipeline basics",
		"Entity Framework basics",
	},
	"qa": {
		"Verification vs validation",
		"Test levels: unit, integration, system, acceptance",
		"Black box vs white box techniques",
		"Boundary value analysis and equivalence partitioning",
		"Writing a good bug report",
		"Severity vs priority",
		"Regression vs retesting",
		"Test case design",
		"Basics of test automation",
		"When to stop testing",
	},
	"php": {
		"Request lifecycle and superglobals",
		"Data types and type juggling",
		"Arrays and array functions",
		"Functions and closures",
		"OOP in PHP: classes, traits, interfaces",
		"Error and exception handling",
		"Sessions and cookies",
		"Working with databases via PDO",
		"Security basics: injection, XSS",
		"Composer and autoloading",
	},
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
