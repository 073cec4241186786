package readiness

import (
	"errors"
	"fmt"
)

// State is the quiz's position in its flow.
type State int

const (
	StateAnswering State = iota
	StateResults
)

func (s State) String() string {
	switch s {
	case StateAnswering:
		return "answering"
	case StateResults:
		return "results"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrUnanswered is returned when moving forward past a question with no answer.
	ErrUnanswered = errors.New("current question has not been answered")
	// ErrInvalidAnswer is returned for values outside 1..5.
	ErrInvalidAnswer = errors.New("answer must be between 1 and 5")
	// ErrQuizFinished is returned when answering after results are shown.
	ErrQuizFinished = errors.New("quiz is showing results; retake to answer again")
	// ErrResultsNotReady is returned when asking for results mid-quiz.
	ErrResultsNotReady = errors.New("quiz is not finished")
)

// Quiz walks the catalog one question at a time. The zero value is not
// usable; call NewQuiz.
type Quiz struct {
	questions []Question
	index     int
	answers   Answers
	state     State
}

// NewQuiz starts a quiz at the first question with no answers.
func NewQuiz() *Quiz {
	return &Quiz{
		questions: questions,
		answers:   make(Answers, len(questions)),
		state:     StateAnswering,
	}
}

func (q *Quiz) State() State { return q.state }

// Index is the zero-based position of the current question.
func (q *Quiz) Index() int { return q.index }

// Current returns the question being answered; false once results are shown.
func (q *Quiz) Current() (Question, bool) {
	if q.state != StateAnswering {
		return Question{}, false
	}
	return q.questions[q.index].clone(), true
}

// Answer records value for the current question, replacing any earlier answer.
func (q *Quiz) Answer(value int) error {
	if q.state != StateAnswering {
		return ErrQuizFinished
	}
	if !validValue(value) {
		return ErrInvalidAnswer
	}
	q.answers[q.questions[q.index].ID] = value
	return nil
}

// CanAdvance reports whether Next would succeed.
func (q *Quiz) CanAdvance() bool {
	if q.state != StateAnswering {
		return false
	}
	_, ok := q.answers[q.questions[q.index].ID]
	return ok
}

// Next moves to the following question, or to results from the last one.
func (q *Quiz) Next() error {
	if q.state != StateAnswering {
		return ErrQuizFinished
	}
	if !q.CanAdvance() {
		return ErrUnanswered
	}
	if q.index == len(q.questions)-1 {
		q.state = StateResults
		return nil
	}
	q.index++
	return nil
}

// Previous steps back one question. It does nothing on the first question or
// once results are shown.
func (q *Quiz) Previous() {
	if q.state != StateAnswering || q.index == 0 {
		return
	}
	q.index--
}

// Retake clears every answer and returns to the first question.
func (q *Quiz) Retake() {
	q.answers = make(Answers, len(q.questions))
	q.index = 0
	q.state = StateAnswering
}

// Answers returns a copy of the recorded answers.
func (q *Quiz) Answers() Answers {
	out := make(Answers, len(q.answers))
	for k, v := range q.answers {
		out[k] = v
	}
	return out
}

// Results returns the report once the last question has been passed.
func (q *Quiz) Results() (Report, error) {
	if q.state != StateResults {
		return Report{}, ErrResultsNotReady
	}
	return BuildReport(q.answers), nil
}

// ReplayError identifies the question where a replay stopped.
type ReplayError struct {
	QuestionID string
	Err        error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("question %s: %v", e.QuestionID, e.Err)
}

func (e *ReplayError) Unwrap() error { return e.Err }

// Replay drives a fresh quiz through answers in catalog order and returns the
// final report. It stops at the first unanswered or invalid question.
func Replay(answers Answers) (Report, error) {
	quiz := NewQuiz()
	for quiz.State() == StateAnswering {
		current, _ := quiz.Current()
		value, ok := answers[current.ID]
		if !ok {
			return Report{}, &ReplayError{QuestionID: current.ID, Err: ErrUnanswered}
		}
		if err := quiz.Answer(value); err != nil {
			return Report{}, &ReplayError{QuestionID: current.ID, Err: err}
		}
		if err := quiz.Next(); err != nil {
			return Report{}, &ReplayError{QuestionID: current.ID, Err: err}
		}
	}
	return quiz.Results()
}
