package play_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/securecookie"

	"github.com/saulo-duarte/studylens/internal/play"
	"github.com/saulo-duarte/studylens/internal/quiz"
	"github.com/saulo-duarte/studylens/internal/quizgen"
	"github.com/saulo-duarte/studylens/internal/session"
)

type playClient struct {
	t      *testing.T
	server *httptest.Server
	client *http.Client
	hist   *recordingHistory
}

func newPlayClient(t *testing.T, gen quizgen.Service) *playClient {
	t.Helper()

	store := play.NewCookieStore(securecookie.GenerateRandomKey(64), securecookie.GenerateRandomKey(32))
	hist := newRecordingHistory()
	svc := play.NewService(gen, play.NewMemoryRepository(), hist)

	r := chi.NewRouter()
	r.Mount("/play", play.Routes(play.NewHandler(svc, quizgen.NewTracker(), store)))
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &playClient{t: t, server: server, client: &http.Client{Jar: jar}, hist: hist}
}

func (c *playClient) do(method, path, body string) (int, map[string]any) {
	c.t.Helper()

	req, err := http.NewRequest(method, c.server.URL+path, strings.NewReader(body))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.t.Fatalf("decode %s %s: %v", method, path, err)
	}
	return resp.StatusCode, out
}

func (c *playClient) cookies() []*http.Cookie {
	u, _ := url.Parse(c.server.URL)
	return c.client.Jar.Cookies(u)
}

// restore puts previously captured cookies back into the jar.
func (c *playClient) restore(cookies []*http.Cookie) {
	u, _ := url.Parse(c.server.URL)
	c.client.Jar.SetCookies(u, cookies)
}

func TestHandlerFlow(t *testing.T) {
	c := newPlayClient(t, fixedQuiz(1, 3))

	if code, _ := c.do(http.MethodGet, "/play", ""); code != http.StatusNotFound {
		t.Fatalf("expected 404 without a session, got %d", code)
	}

	code, view := c.do(http.MethodPost, "/play", `{"text":"enzymes","count":2}`)
	if code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d (%v)", code, view)
	}
	question := view["question"].(map[string]any)
	if _, leaked := question["correct_index"]; leaked {
		t.Fatalf("answer key leaked in view: %v", question)
	}

	if code, _ := c.do(http.MethodPost, "/play/submit", ""); code != http.StatusConflict {
		t.Errorf("submit without selection: expected 409, got %d", code)
	}
	if code, _ := c.do(http.MethodPost, "/play/select", `{"option":7}`); code != http.StatusBadRequest {
		t.Errorf("out of range option: expected 400, got %d", code)
	}
	if code, _ := c.do(http.MethodPost, "/play/select", `{}`); code != http.StatusBadRequest {
		t.Errorf("missing option: expected 400, got %d", code)
	}

	if code, _ := c.do(http.MethodPost, "/play/select", `{"option":1}`); code != http.StatusOK {
		t.Fatalf("select: expected 200, got %d", code)
	}
	code, view = c.do(http.MethodPost, "/play/submit", "")
	if code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", code)
	}
	grade := view["grade"].(map[string]any)
	if grade["correct"] != true || grade["correct_index"] != float64(1) {
		t.Errorf("unexpected grade %v", grade)
	}
	if code, _ := c.do(http.MethodPost, "/play/submit", ""); code != http.StatusConflict {
		t.Errorf("double submit: expected 409, got %d", code)
	}

	if code, _ := c.do(http.MethodPost, "/play/advance", ""); code != http.StatusOK {
		t.Fatalf("advance: expected 200, got %d", code)
	}
	c.do(http.MethodPost, "/play/select", `{"option":0}`)
	c.do(http.MethodPost, "/play/submit", "")
	code, view = c.do(http.MethodPost, "/play/advance", "")
	if code != http.StatusOK {
		t.Fatalf("final advance: expected 200, got %d", code)
	}

	progress := view["progress"].(map[string]any)
	if progress["state"] != string(session.Finished) || progress["score"] != float64(1) {
		t.Errorf("unexpected final progress %v", progress)
	}

	code, view = c.do(http.MethodGet, "/play", "")
	if code != http.StatusOK || view["progress"].(map[string]any)["state"] != string(session.Finished) {
		t.Errorf("expected finished state to be served, got %d %v", code, view)
	}
}

func TestHandlerRejectsReplayedCookies(t *testing.T) {
	c := newPlayClient(t, fixedQuiz(2))

	if code, _ := c.do(http.MethodPost, "/play", `{"text":"osmosis","count":1}`); code != http.StatusOK {
		t.Fatalf("start: expected 200, got %d", code)
	}
	if code, _ := c.do(http.MethodPost, "/play/select", `{"option":0}`); code != http.StatusOK {
		t.Fatalf("select: expected 200, got %d", code)
	}
	beforeSubmit := c.cookies()

	code, view := c.do(http.MethodPost, "/play/submit", "")
	if code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d", code)
	}
	if grade := view["grade"].(map[string]any); grade["correct"] != false {
		t.Fatalf("expected a wrong answer, got %v", grade)
	}
	answered := c.cookies()

	c.restore(beforeSubmit)
	if code, _ := c.do(http.MethodPost, "/play/select", `{"option":2}`); code != http.StatusConflict {
		t.Errorf("select with a pre-submit cookie: expected 409, got %d", code)
	}
	if code, _ := c.do(http.MethodPost, "/play/submit", ""); code != http.StatusConflict {
		t.Errorf("submit with a pre-submit cookie: expected 409, got %d", code)
	}

	code, view = c.do(http.MethodGet, "/play", "")
	progress := view["progress"].(map[string]any)
	if code != http.StatusOK || progress["state"] != string(session.Answered) || progress["score"] != float64(0) {
		t.Errorf("expected the stored answered state with score 0, got %d %v", code, view)
	}

	c.restore(answered)
	if code, _ := c.do(http.MethodPost, "/play/advance", ""); code != http.StatusOK {
		t.Fatalf("advance: expected 200, got %d", code)
	}
	c.restore(answered)
	if code, _ := c.do(http.MethodPost, "/play/advance", ""); code != http.StatusConflict {
		t.Errorf("replayed advance: expected 409, got %d", code)
	}

	if e := c.hist.wait(t); *e.QuizScore != 0 {
		t.Errorf("unexpected recorded score %d", *e.QuizScore)
	}
	c.hist.expectNone(t)
}

func TestHandlerStartSuperseded(t *testing.T) {
	entered := make(chan struct{})
	var calls int32
	gen := generatorFunc(func(ctx context.Context, text string, count int) (quiz.Quiz, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(entered)
			<-ctx.Done()
			return nil, context.Cause(ctx)
		}
		return fixedQuiz(0)(ctx, text, count)
	})
	c := newPlayClient(t, gen)

	firstCode := make(chan int, 1)
	go func() {
		resp, err := c.client.Post(c.server.URL+"/play", "application/json", strings.NewReader(`{"text":"first topic"}`))
		if err != nil {
			firstCode <- 0
			return
		}
		resp.Body.Close()
		firstCode <- resp.StatusCode
	}()

	<-entered
	code, view := c.do(http.MethodPost, "/play", `{"text":"second topic"}`)
	if code != http.StatusOK || view["topicTitle"] != "second topic" {
		t.Fatalf("second start: expected 200 for the newer quiz, got %d %v", code, view)
	}
	if got := <-firstCode; got != http.StatusConflict {
		t.Errorf("superseded start: expected 409, got %d", got)
	}

	code, view = c.do(http.MethodGet, "/play", "")
	if code != http.StatusOK || view["topicTitle"] != "second topic" {
		t.Errorf("cookie should point at the newer quiz, got %d %v", code, view)
	}
}

func TestHandlerStartValidation(t *testing.T) {
	c := newPlayClient(t, fixedQuiz(1))

	if code, _ := c.do(http.MethodPost, "/play", `{"text":" "}`); code != http.StatusBadRequest {
		t.Errorf("blank text: expected 400, got %d", code)
	}
	if code, _ := c.do(http.MethodPost, "/play", `{`); code != http.StatusBadRequest {
		t.Errorf("bad json: expected 400, got %d", code)
	}
}
