package interview

// QuestionType classifies how a question is answered.
type QuestionType string

const (
	TypeBoolean QuestionType = "boolean"
	TypeNumber  QuestionType = "number"
	TypeString  QuestionType = "string"
)

// Question is a single interactive prompt extracted from an interview
// script, enriched with its triage weight metadata.
type Question struct {
	ID       string       `json:"id"`
	Module   string       `json:"module"`
	Order    int          `json:"order"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Weight   float64      `json:"weight"`
	Category string       `json:"category"`
	Critical bool         `json:"critical"`
}

// ModuleInfo summarizes one available triage module.
type ModuleInfo struct {
	Slug          string `json:"slug"`
	QuestionCount int    `json:"question_count"`
}

// WeightSource resolves weight metadata for an extracted question.
// The triage registry implements it; keeping it as an interface here
// avoids an import cycle between interview and triage.
type WeightSource interface {
	Lookup(module, questionID, text string) (weight float64, category string, critical bool)
}
