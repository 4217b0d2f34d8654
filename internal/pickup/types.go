package pickup

// Extraction is the result of a successful rule match.
type Extraction struct {
	Code     string
	Location string
	Rule     string // name of the rule that matched
	Sender   string // bracketed sender tag, when the rule captures one
}

// RunOutput summarises one run.
type RunOutput struct {
	RunID           string
	MessagesRead    int
	Matched         int
	Processed       int // reminders created and notifications sent
	SkippedCached   int
	SkippedReminder int
	Backfilled      int // codes added to the set from existing reminders
	HasNew          bool
	ProcessedCodes  []string
}
