package models

// QuizQuestion is a multiple-choice question with exactly four options.
type QuizQuestion struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
}

// QuizAnswer is one submitted answer. It carries the full question so
// grading never needs server-side state from the quiz that produced it.
type QuizAnswer struct {
	QuestionIndex int      `json:"question_index"`
	SelectedIndex int      `json:"selected_index"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectIndex  int      `json:"correct_index"`
}

// QuizSubmission is the grade request payload.
type QuizSubmission struct {
	Answers []QuizAnswer `json:"answers"`
}

// GradedAnswer is the grading result for one submitted answer.
type GradedAnswer struct {
	QuestionIndex int    `json:"question_index"`
	IsCorrect     bool   `json:"is_correct"`
	Feedback      string `json:"feedback"`
}
