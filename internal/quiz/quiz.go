// Package quiz holds the fixed question sequence users walk through before
// receiving recommendations, plus the AnswerSet type the session layer
// accumulates. Answers are ephemeral: they live in the session cookie only
// and are never persisted.
package quiz

// Question is one step of the quiz flow. IDs are 1-based and stable; they
// double as the question's position in the sequence.
type Question struct {
	ID      int      `json:"id"`
	Prompt  string   `json:"question"`
	Options []string `json:"answers"`
}

// questions is the fixed sequence. Changing prompts or option counts changes
// the answer value space and therefore the recommendation scores.
var questions = []Question{
	{1, "Which fragrance personality fits you best?", []string{"Romantic and dreamy", "Bold and confident", "Fresh and natural"}},
	{2, "Which season best represents your style?", []string{"Spring blossoms", "Summer sun", "Winter warmth"}},
	{3, "Where do you usually wear perfume?", []string{"Casual daytime", "Professional settings", "Evening occasions"}},
	{4, "How do you want a fragrance to make you feel?", []string{"Elegant and polished", "Energized and lively", "Calm and relaxed"}},
	{5, "Which fragrance family appeals to you most?", []string{"Floral bouquets", "Woody notes", "Citrus blends"}},
	{6, "What intensity level do you prefer?", []string{"Light and personal", "Moderate presence", "Strong and lasting"}},
	{7, "Which occasion matters most for your scent?", []string{"Everyday wear", "Special events", "Romantic evenings"}},
	{8, "What mood do you want to evoke?", []string{"Mysterious and alluring", "Playful and cheerful", "Serene and peaceful"}},
	{9, "Which note combination sounds most appealing?", []string{"Rose and vanilla", "Sandalwood and amber", "Bergamot and lavender"}},
	{10, "How long should your ideal perfume last?", []string{"4-6 hours", "6-8 hours", "8+ hours"}},
}

// Questions returns a copy of the fixed question sequence.
func Questions() []Question {
	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Count returns the number of questions in the quiz.
func Count() int { return len(questions) }

// AnswerSet maps question id (1..Count()) to the raw answer value the user
// chose. Values are kept as strings; score extraction parses them
// best-effort later.
type AnswerSet map[int]string

// Complete reports whether every question id has an answer.
func (a AnswerSet) Complete() bool {
	for i := 1; i <= len(questions); i++ {
		if _, ok := a[i]; !ok {
			return false
		}
	}
	return true
}
