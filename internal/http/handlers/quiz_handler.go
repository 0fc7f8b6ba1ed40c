// Quiz HTTP handlers.
//
// This file exposes the public quiz flow:
//   - GET  /questions            (the fixed question set)
//   - PUT  /quiz/answers/{id}    (record one answer in the session)
//   - GET  /quiz/result          (recommendations for a complete answer set)
//   - POST /quiz/restart         (clear recorded answers)
//
// Answers live in the cookie session, keyed by question id, so an
// interrupted quiz survives page reloads without any server-side state.
package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Dhayou05/Karim-perfume/internal/http/middleware"
	"github.com/Dhayou05/Karim-perfume/internal/quiz"
	"github.com/Dhayou05/Karim-perfume/internal/services"
)

// sessionAnswers reads the recorded answers from the current session. A
// missing or malformed value yields an empty set.
func sessionAnswers(c *gin.Context) quiz.AnswerSet {
	if m, ok := sessions.Default(c).Get(middleware.SessionKeyAnswers).(map[int]string); ok {
		return quiz.AnswerSet(m)
	}
	return quiz.AnswerSet{}
}

// SubmitAnswerRequest is the JSON payload for recording a quiz answer.
type SubmitAnswerRequest struct {
	// Answer is the selected option text for the question.
	Answer string `json:"answer" binding:"required" example:"3"`
}

// QuizProgressResponse reports how far through the quiz the session is.
type QuizProgressResponse struct {
	Answered int `json:"answered" example:"4"`
	Total    int `json:"total" example:"10"`
}

// QuizResultResponse carries the recommendations for a completed quiz.
type QuizResultResponse struct {
	Score           int              `json:"score" example:"17"`
	Recommendations []recommendation `json:"recommendations"`
}

// recommendation is the public projection of a catalog entry. Vote
// counters stay internal; only the derived percentages are exposed.
type recommendation struct {
	ID             int      `json:"id" example:"3"`
	Name           string   `json:"name" example:"Velvet Oud"`
	Description    string   `json:"description" example:"A warm evening scent"`
	Notes          []string `json:"notes" example:"oud,amber,vanilla"`
	Profile        string   `json:"profile" example:"oriental"`
	ImageURL       string   `json:"image_url" example:"/static/images/velvet-oud.jpg"`
	LikePercent    int      `json:"like_percent" example:"75"`
	DislikePercent int      `json:"dislike_percent" example:"25"`
}

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List quiz questions
// @Description Returns the fixed question set, in order, with their options.
// @Tags        Quiz
// @Produce     json
// @Success     200 {array} quiz.Question
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	ok(c, http.StatusOK, quiz.Questions())
}

// SubmitAnswer godoc
// @ID          submitAnswer
// @Summary     Record a quiz answer
// @Description Stores the selected option for one question in the session.
// @Tags        Quiz
// @Accept      json
// @Produce     json
// @Param       id   path  int                            true "Question ID (1-based)" example(3)
// @Param       body body  handlers.SubmitAnswerRequest   true "Selected answer"
// @Success     200 {object} handlers.QuizProgressResponse
// @Failure     400 {object} handlers.ErrorResponse "Invalid payload"
// @Failure     404 {object} handlers.ErrorResponse "Unknown question"
// @Router      /quiz/answers/{id} [put]
func (h *Handlers) SubmitAnswer(c *gin.Context) {
	id, okID := idParam(c)
	if !okID || id > quiz.Count() {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "question not found")
		return
	}

	var req SubmitAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "answer is required")
		return
	}

	sess := sessions.Default(c)
	answers := sessionAnswers(c)
	answers[id] = req.Answer
	sess.Set(middleware.SessionKeyAnswers, map[int]string(answers))
	if err := sess.Save(); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not store answer")
		return
	}

	ok(c, http.StatusOK, QuizProgressResponse{Answered: len(answers), Total: quiz.Count()})
}

// QuizResult godoc
// @ID          quizResult
// @Summary     Quiz recommendations
// @Description Computes the recommendation list for a completed answer set.
// @Tags        Quiz
// @Produce     json
// @Success     200 {object} handlers.QuizResultResponse
// @Failure     400 {object} handlers.ErrorResponse "Quiz not finished"
// @Router      /quiz/result [get]
func (h *Handlers) QuizResult(c *gin.Context) {
	answers := sessionAnswers(c)
	if !answers.Complete() {
		fail(c, http.StatusBadRequest, ErrCodeQuizIncomplete, "answer all questions first")
		return
	}

	recs := h.recommend.Recommend(answers)
	out := make([]recommendation, 0, len(recs))
	for _, p := range recs {
		out = append(out, recommendation{
			ID:             p.ID,
			Name:           p.Name,
			Description:    p.Description,
			Notes:          p.Notes,
			Profile:        p.Profile,
			ImageURL:       p.ImageURL,
			LikePercent:    p.LikePercent,
			DislikePercent: p.DislikePercent,
		})
	}

	ok(c, http.StatusOK, QuizResultResponse{
		Score:           services.Score(answers),
		Recommendations: out,
	})
}

// RestartQuiz godoc
// @ID          restartQuiz
// @Summary     Restart the quiz
// @Description Discards all answers recorded in the session.
// @Tags        Quiz
// @Success     204 {string} string "No Content"
// @Router      /quiz/restart [post]
func (h *Handlers) RestartQuiz(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete(middleware.SessionKeyAnswers)
	if err := sess.Save(); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeInternal, "could not reset quiz")
		return
	}
	noContent(c)
}
