package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/luisfelipe-wekan/knowledge-extractor/models"
)

const (
	// FlashcardCount and QuizQuestionCount are hard shape requirements: a
	// model reply with any other item count is rejected outright.
	FlashcardCount    = 10
	QuizQuestionCount = 10
	QuizOptionCount   = 4

	defaultMaxPromptChars = 60000
)

const flashcardPrompt = `You are a study assistant. Create exactly %d flashcards from the study material below.
Each flashcard has:
- "front": a question, term or key concept
- "back": a concise answer or explanation

Return a JSON array of exactly %d objects, like:
[
  {"front": "Question 1?", "back": "Answer 1"},
  {"front": "Question 2?", "back": "Answer 2"}
]

Return only valid JSON. Do not wrap it in prose or markdown.

Study material:
%s`

const quizPrompt = `You are a study assistant. Create exactly %d multiple-choice quiz questions from the study material below.
Each question has:
- "question": the question text
- "options": exactly %d answer options
- "correct_index": the 0-based index of the correct option

Randomize the position of the correct answer.

Return a JSON array of exactly %d objects, like:
[
  {"question": "Question 1?", "options": ["A", "B", "C", "D"], "correct_index": 2}
]

Return only valid JSON. Do not wrap it in prose or markdown.

Study material:
%s`

const feedbackPrompt = `You are grading one multiple-choice quiz answer.

Question: %s
Options: %s
The student chose option %d: %q
The correct answer is option %d: %q
The student's answer is %s.

Write one or two sentences of feedback for the student. If the answer was
wrong, explain why the correct option is right. Plain text only, no markdown.`

// Gateway turns raw document text into exactly-shaped study content through a
// generative model, and grades answer submissions. It holds no per-request
// state; every call stands alone.
type Gateway struct {
	gen            TextGenerator
	maxPromptChars int
}

// NewGateway builds a Gateway around a model backend. gen may be nil when no
// API key is configured; generation then fails with ErrNotConfigured while
// grading falls back to deterministic feedback.
func NewGateway(gen TextGenerator, maxPromptChars int) *Gateway {
	if maxPromptChars <= 0 {
		maxPromptChars = defaultMaxPromptChars
	}
	return &Gateway{gen: gen, maxPromptChars: maxPromptChars}
}

// GenerateFlashcards asks the model for exactly FlashcardCount flashcards
// built from documentText. A count mismatch or an empty field is a hard
// failure, never a truncate-or-pad.
func (g *Gateway) GenerateFlashcards(ctx context.Context, documentText string) ([]models.Flashcard, error) {
	const op = "flashcards"

	prompt := fmt.Sprintf(flashcardPrompt, FlashcardCount, FlashcardCount, g.truncate(documentText))
	payload, stage, err := g.callModel(ctx, op, prompt)
	if err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	if err := json.Unmarshal([]byte(payload), &cards); err != nil {
		return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: "decode array: " + err.Error()}
	}
	if len(cards) != FlashcardCount {
		return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: fmt.Sprintf("expected %d flashcards, got %d", FlashcardCount, len(cards))}
	}
	for i, card := range cards {
		if strings.TrimSpace(card.Front) == "" || strings.TrimSpace(card.Back) == "" {
			return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: fmt.Sprintf("flashcard %d has an empty side", i)}
		}
	}
	return cards, nil
}

// GenerateQuiz asks the model for exactly QuizQuestionCount multiple-choice
// questions built from documentText.
func (g *Gateway) GenerateQuiz(ctx context.Context, documentText string) ([]models.QuizQuestion, error) {
	const op = "quiz"

	prompt := fmt.Sprintf(quizPrompt, QuizQuestionCount, QuizOptionCount, QuizQuestionCount, g.truncate(documentText))
	payload, stage, err := g.callModel(ctx, op, prompt)
	if err != nil {
		return nil, err
	}

	var questions []models.QuizQuestion
	if err := json.Unmarshal([]byte(payload), &questions); err != nil {
		return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: "decode array: " + err.Error()}
	}
	if len(questions) != QuizQuestionCount {
		return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: fmt.Sprintf("expected %d questions, got %d", QuizQuestionCount, len(questions))}
	}
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: fmt.Sprintf("question %d is empty", i)}
		}
		if len(q.Options) != QuizOptionCount {
			return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: fmt.Sprintf("question %d has %d options", i, len(q.Options))}
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: fmt.Sprintf("question %d option %d is empty", i, j)}
			}
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= QuizOptionCount {
			return nil, &MalformedOutputError{Op: op, Stage: stage, Reason: fmt.Sprintf("question %d correct_index %d out of range", i, q.CorrectIndex)}
		}
	}
	return questions, nil
}

// GradeSubmissions grades every answer. Correctness is computed locally by
// index comparison; the model only writes the feedback text. A failed
// feedback call degrades that one item to a deterministic fallback instead of
// failing the batch.
func (g *Gateway) GradeSubmissions(ctx context.Context, answers []models.QuizAnswer) []models.GradedAnswer {
	graded := make([]models.GradedAnswer, 0, len(answers))
	for _, ans := range answers {
		correct := ans.SelectedIndex == ans.CorrectIndex
		graded = append(graded, models.GradedAnswer{
			QuestionIndex: ans.QuestionIndex,
			IsCorrect:     correct,
			Feedback:      g.feedbackFor(ctx, ans, correct),
		})
	}
	return graded
}

// callModel runs one prompt through the model and tolerant-parses the reply
// down to a JSON array payload.
func (g *Gateway) callModel(ctx context.Context, op, prompt string) (payload, stage string, err error) {
	if g.gen == nil {
		return "", "", &GenerationError{Op: op, Err: ErrNotConfigured}
	}
	raw, err := g.gen.GenerateText(ctx, prompt)
	if err != nil {
		return "", "", &GenerationError{Op: op, Err: err}
	}
	payload, stage, err = ExtractJSONArray(raw)
	if err != nil {
		return "", "", &MalformedOutputError{Op: op, Reason: err.Error()}
	}
	if stage != StageStrict {
		log.Printf("%s reply needed %s extraction", op, stage)
	}
	return payload, stage, nil
}

func (g *Gateway) feedbackFor(ctx context.Context, ans models.QuizAnswer, correct bool) string {
	fallback := fallbackFeedback(ans, correct)
	if g.gen == nil {
		return fallback
	}

	verdict := "correct"
	if !correct {
		verdict = "incorrect"
	}
	prompt := fmt.Sprintf(feedbackPrompt,
		ans.Question,
		strings.Join(ans.Options, " | "),
		ans.SelectedIndex, optionText(ans.Options, ans.SelectedIndex),
		ans.CorrectIndex, optionText(ans.Options, ans.CorrectIndex),
		verdict,
	)

	reply, err := g.gen.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("feedback for question %d degraded: %v", ans.QuestionIndex, err)
		return fallback
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return fallback
	}
	return reply
}

// fallbackFeedback restates the correct answer so a graded item always
// carries usable feedback even when the model is unreachable.
func fallbackFeedback(ans models.QuizAnswer, correct bool) string {
	correctText := optionText(ans.Options, ans.CorrectIndex)
	if correct {
		return fmt.Sprintf("Correct. %q is the right answer.", correctText)
	}
	return fmt.Sprintf("Incorrect. You chose %q; the correct answer is %q.",
		optionText(ans.Options, ans.SelectedIndex), correctText)
}

func optionText(options []string, index int) string {
	if index < 0 || index >= len(options) {
		return ""
	}
	return options[index]
}

// truncate caps the document text at a fixed rune count so prompts stay
// inside the model's input limits. Prefix only, no chunking.
func (g *Gateway) truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= g.maxPromptChars {
		return text
	}
	return string(runes[:g.maxPromptChars])
}
