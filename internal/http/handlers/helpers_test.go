package handlers

import (
	"context"
	"encoding/gob"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/Dhayou05/Karim-perfume/internal/config"
	"github.com/Dhayou05/Karim-perfume/internal/domain"
	"github.com/Dhayou05/Karim-perfume/internal/http/middleware"
	"github.com/Dhayou05/Karim-perfume/internal/store"
)

func init() {
	gob.Register(map[int]string{})
}

// memBackend is an in-memory store.Backend for handler tests.
type memBackend struct {
	items []domain.Perfume
	saves int
}

func (b *memBackend) Load(context.Context) ([]domain.Perfume, error) {
	return domain.ClonePerfumes(b.items), nil
}

func (b *memBackend) Save(_ context.Context, items []domain.Perfume) error {
	b.items = domain.ClonePerfumes(items)
	b.saves++
	return nil
}

// newTestRouter builds a gin engine with cookie sessions and all routes
// registered, backed by an in-memory catalog seeded with items.
func newTestRouter(t *testing.T, items []domain.Perfume) (*gin.Engine, *store.Catalog) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cat := store.NewCatalog(&memBackend{items: items})
	if err := cat.Load(context.Background()); err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	cfg := config.Config{
		Admin:         config.AdminConfig{Username: "admin", Password: "hunter2"},
		UploadDir:     t.TempDir(),
		UploadBaseURL: "/static/images",
	}
	h := New(cat, cfg)

	r := gin.New()
	r.Use(sessions.Sessions("perfume_session", cookie.NewStore([]byte("test-secret"))))

	r.GET("/questions", h.ListQuestions)
	r.PUT("/quiz/answers/:id", h.SubmitAnswer)
	r.GET("/quiz/result", h.QuizResult)
	r.POST("/quiz/restart", h.RestartQuiz)
	r.POST("/perfumes/:id/rating", h.RatePerfume)

	r.POST("/admin/login", h.Login)
	r.POST("/admin/logout", h.Logout)
	admin := r.Group("/admin", middleware.RequireAdmin())
	admin.GET("/perfumes", h.ListPerfumes)
	admin.POST("/perfumes", h.CreatePerfume)
	admin.PUT("/perfumes/:id", h.UpdatePerfume)
	admin.DELETE("/perfumes/:id", h.DeletePerfume)
	admin.POST("/perfumes/:id/visibility", h.ToggleVisibility)
	admin.POST("/perfumes/import", h.ImportPerfumes)

	return r, cat
}

// client keeps session cookies between requests, like a browser would.
type client struct {
	r       *gin.Engine
	cookies []*http.Cookie
}

func (cl *client) do(req *http.Request) *httptest.ResponseRecorder {
	for _, ck := range cl.cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	cl.r.ServeHTTP(w, req)
	if got := w.Result().Cookies(); len(got) > 0 {
		cl.cookies = got
	}
	return w
}

// seedPerfumes returns n visible catalog entries with ids 1..n.
func seedPerfumes(n int) []domain.Perfume {
	out := make([]domain.Perfume, 0, n)
	names := []string{"Rose Dawn", "Velvet Oud", "Citrus Run", "Night Iris", "Amber Coast",
		"Sea Fennel", "Dark Plum", "White Tea", "Cedar Line", "Golden Fig"}
	for i := 1; i <= n; i++ {
		out = append(out, domain.Perfume{
			ID:      i,
			Name:    names[(i-1)%len(names)],
			Profile: "fresh",
			Notes:   []string{"bergamot"},
		})
	}
	return out
}
