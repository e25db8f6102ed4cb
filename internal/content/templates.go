package content

// Template corpora for the fallback path. Slot names in braces are replaced
// with a uniform pick from the matching list below.

var taskTemplates = map[string][]string{
	"sprint": {
		"Implement {component} {action}",
		"Fix bug in {component}",
		"Add unit tests for {component}",
		"Refactor {component} module",
		"Update {component} documentation",
		"Review PR for {feature}",
		"Deploy {component} to staging",
		"Performance optimization for {component}",
	},
	"kanban": {
		"Research {topic}",
		"Update {document}",
		"Review {item}",
		"Improve {process}",
		"Investigate {issue}",
	},
	"campaign": {
		"Create {asset} for {campaign}",
		"Review {asset} copy",
		"Design {asset}",
		"Schedule {channel} posts",
		"Analyze {campaign} performance",
		"Update {channel} content",
	},
	"operations": {
		"Review {document}",
		"Update {process} workflow",
		"Prepare {report}",
		"Schedule {meeting}",
		"Follow up on {item}",
	},
}

// defaultTaskType is used when a project type has no template set.
const defaultTaskType = "kanban"

var taskSlots = map[string][]string{
	"{component}": {"authentication", "dashboard", "API", "database", "UI", "notifications", "search", "reports"},
	"{action}":    {"feature", "endpoint", "integration", "handler", "service", "component"},
	"{feature}":   {"user settings", "data export", "bulk operations", "filters", "sorting"},
	"{topic}":     {"market trends", "competitors", "user needs"},
	"{document}":  {"specs", "requirements", "guidelines"},
	"{item}":      {"feedback", "request", "proposal"},
	"{process}":   {"onboarding", "review", "deployment"},
	"{issue}":     {"slowdown", "error", "bottleneck"},
	"{asset}":     {"banner", "email", "landing page", "blog post", "video", "infographic"},
	"{campaign}":  {"Q1 launch", "product update", "holiday", "webinar", "conference"},
	"{channel}":   {"LinkedIn", "Twitter", "email"},
	"{report}":    {"weekly", "monthly", "quarterly"},
	"{meeting}":   {"standup", "review", "planning"},
}

// taskSlotOrder fixes the draw order for slot fills so a seeded run replays
// byte for byte; map iteration order would not.
var taskSlotOrder = []string{
	"{component}", "{action}", "{feature}", "{topic}", "{document}",
	"{item}", "{process}", "{issue}", "{asset}", "{campaign}",
	"{channel}", "{report}", "{meeting}",
}

// Comment intents, in the order generators draw them.
const (
	IntentStatusUpdate = "status_update"
	IntentQuestion     = "question"
	IntentAnswer       = "answer"
	IntentFeedback     = "feedback"
	IntentBlocker      = "blocker"
)

var commentIntents = []string{
	IntentStatusUpdate, IntentQuestion, IntentAnswer, IntentFeedback, IntentBlocker,
}

var commentTemplates = map[string][]string{
	IntentStatusUpdate: {
		"Started working on this today.",
		"Made good progress, should be done by EOD.",
		"This is now complete and ready for review.",
		"Moving this to next sprint due to dependencies.",
		"Blocked on {blocker}, will update when resolved.",
		"50% complete, on track for deadline.",
	},
	IntentQuestion: {
		"Can someone clarify the requirements here?",
		"Should we prioritize this over {other_task}?",
		"Who should I loop in for the review?",
		"Is there a deadline for this?",
		"Do we have the design specs ready?",
	},
	IntentAnswer: {
		"Yes, please go ahead with the current approach.",
		"I've added the specs to the shared folder.",
		"Let's discuss this in tomorrow's standup.",
		"The deadline is end of this week.",
		"I'll send you the details by EOD.",
	},
	IntentFeedback: {
		"Looks good! Just a few minor comments.",
		"Great work on this!",
		"Can we add more details to the description?",
		"Approved! Ready for the next step.",
		"Please address the comments and re-submit.",
	},
	IntentBlocker: {
		"Blocked: waiting for API access.",
		"Blocked on design review.",
		"Need input from the product team.",
		"Waiting for third-party integration.",
		"Dependency on {dependency} not resolved yet.",
	},
}

var commentSlots = map[string][]string{
	"{blocker}":    {"external API", "design approval", "data migration"},
	"{other_task}": {"the urgent bug fix"},
	"{dependency}": {"the auth module"},
}

var commentSlotOrder = []string{"{blocker}", "{other_task}", "{dependency}"}

var subtaskPrefixes = []string{"Review", "Draft", "Update", "Test", "Document", "Verify"}
