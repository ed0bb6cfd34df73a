package generation

import "fmt"

// TaskKind identifies one of the supported generation tasks.
type TaskKind string

const (
	// TaskAdvice answers a free-form health question.
	TaskAdvice TaskKind = "advice"
	// TaskTranslate translates text into a target language.
	TaskTranslate TaskKind = "translate"
	// TaskSummarize summarizes medical text in a target language.
	TaskSummarize TaskKind = "summarize"
)

// Valid reports whether k is a known task kind.
func (k TaskKind) Valid() bool {
	switch k {
	case TaskAdvice, TaskTranslate, TaskSummarize:
		return true
	default:
		return false
	}
}

// Options are the sampling parameters passed to a Backend. Values are fixed per
// task kind and are never taken from user input.
type Options struct {
	MaxOutputTokens   int32
	Temperature       float32
	TopP              float32
	RepetitionPenalty float32
}

// Advice favors varied phrasing; translation and summaries favor fidelity.
var profiles = map[TaskKind]Options{
	TaskAdvice: {
		MaxOutputTokens:   250,
		Temperature:       0.7,
		TopP:              0.95,
		RepetitionPenalty: 1.1,
	},
	TaskTranslate: {
		MaxOutputTokens:   300,
		Temperature:       0.3,
		TopP:              0.9,
		RepetitionPenalty: 1.0,
	},
	TaskSummarize: {
		MaxOutputTokens:   200,
		Temperature:       0.3,
		TopP:              0.9,
		RepetitionPenalty: 1.15,
	},
}

// ProfileFor returns the fixed sampling options for the given task kind.
func ProfileFor(kind TaskKind) (Options, error) {
	opts, ok := profiles[kind]
	if !ok {
		return Options{}, fmt.Errorf("no generation profile for task %q", kind)
	}
	return opts, nil
}
