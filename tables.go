package metis

// Curated lookup tables for the scoring and journey features. These encode
// editorial judgment about which frameworks are canonically strongest for
// which intent. They are configuration data, kept as named literals so
// they can be audited and tested independently of the scoring arithmetic.

// intentBonus awards a fixed bonus when a framework is a canonical fit
// for the inferred intent. Keyed by intent, then framework display name.
// An absent pair contributes zero.
var intentBonus = map[Intent]map[string]float64{
	IntentPrioritization: {
		"Eisenhower Matrix":    0.5,
		"MoSCoW Method":        0.3,
		"Impact-Effort Matrix": 0.35,
	},
	IntentLearning: {
		"Feynman Technique": 0.5,
		"Learning Map":      0.3,
	},
	IntentInnovation: {
		"SCAMPER":           0.5,
		"Six Thinking Hats": 0.35,
		"Idea Collection":   0.25,
	},
	IntentAnalysis: {
		"SWOT Analysis":    0.45,
		"Five Whys":        0.35,
		"First Principles": 0.2,
	},
	IntentCommunication: {
		"Pyramid Principle": 0.45,
		"Message Map":       0.35,
	},
	IntentStrategy: {
		"SMART Goals":   0.45,
		"Golden Circle": 0.4,
		"SWOT Analysis": 0.25,
	},
	IntentBranding: {
		"Brand Voice Profile": 0.5,
		"Golden Circle":       0.3,
	},
	IntentCriticalThinking: {
		"Socratic Questioning": 0.5,
		"First Principles":     0.45,
		"Five Whys":            0.3,
	},
}

// strengthReason is the one-line "why this framework is strong" clause
// included in generated reasons, keyed by framework display name.
var strengthReason = map[string]string{
	"Eisenhower Matrix":    "separates what is urgent from what actually matters",
	"MoSCoW Method":        "forces explicit must/should/could trade-offs",
	"Impact-Effort Matrix": "surfaces quick wins by plotting impact against effort",
	"Feynman Technique":    "exposes gaps by explaining the topic in plain language",
	"Learning Map":         "turns a vague subject into a navigable study path",
	"SCAMPER":              "systematically mutates an existing idea into new ones",
	"Six Thinking Hats":    "walks the problem through six distinct modes of thought",
	"Idea Collection":      "empties your head so nothing is lost before sorting",
	"SWOT Analysis":        "balances internal strengths against external pressures",
	"Five Whys":            "drills past symptoms to a root cause",
	"Pyramid Principle":    "leads with the answer and supports it top-down",
	"Message Map":          "compresses the message to one headline and three proofs",
	"SMART Goals":          "converts intent into a measurable, time-bound target",
	"Golden Circle":        "grounds the plan in why before what and how",
	"Brand Voice Profile":  "pins down the personality behind the words",
	"Socratic Questioning": "interrogates assumptions until only the defensible remain",
	"First Principles":     "rebuilds the problem from facts rather than analogy",
}

// journeyTable maps normalized "startingPoint_goal" keys to ordered
// framework sequences. Lookup is by substring containment in either
// direction, first match wins in declaration order.
var journeyTable = []struct {
	Key string
	IDs []string
}{
	{"idea_validate", []string{"scamper", "swot-analysis", "smart-goals"}},
	{"problem_cause", []string{"five-whys", "first-principles", "impact-effort-matrix"}},
	{"overwhelmed_focus", []string{"idea-collection", "eisenhower-matrix", "smart-goals"}},
	{"novice_mastery", []string{"feynman-technique", "learning-map", "socratic-questioning"}},
	{"draft_message", []string{"message-map", "pyramid-principle", "brand-voice-profile"}},
	{"vision_plan", []string{"golden-circle", "swot-analysis", "smart-goals"}},
}

// defaultJourney is the fallback sequence when no journey key matches or
// a matched journey resolves to zero frameworks.
var defaultJourney = []string{"five-whys", "swot-analysis", "smart-goals"}

// defaultLegacyCommands seeds the legacy free-text command table when the
// default catalog is registered. Order matters: substring resolution
// scans in insertion order.
var defaultLegacyCommands = []struct {
	Command string
	ID      string
}{
	{"collect", "idea-collection"},
	{"eisenhower", "eisenhower-matrix"},
	{"urgent important", "eisenhower-matrix"},
	{"moscow", "moscow-method"},
	{"impact effort", "impact-effort-matrix"},
	{"feynman", "feynman-technique"},
	{"learning map", "learning-map"},
	{"scamper", "scamper"},
	{"thinking hats", "six-thinking-hats"},
	{"swot", "swot-analysis"},
	{"five whys", "five-whys"},
	{"5 whys", "five-whys"},
	{"pyramid", "pyramid-principle"},
	{"message map", "message-map"},
	{"smart goals", "smart-goals"},
	{"golden circle", "golden-circle"},
	{"brand voice", "brand-voice-profile"},
	{"socratic", "socratic-questioning"},
	{"first principles", "first-principles"},
}
