package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/handler"
	"github.com/msomdec/youth-portal/internal/service"
	"github.com/msomdec/youth-portal/internal/session"
)

// testClient is one browser: its own cookie jar, no redirect following.
type testClient struct {
	t      *testing.T
	srv    *httptest.Server
	client *http.Client
}

func newTestClient(t *testing.T, srv *httptest.Server) *testClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("create cookie jar: %v", err)
	}
	return &testClient{
		t:   t,
		srv: srv,
		client: &http.Client{
			Jar: jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse // don't follow redirects automatically
			},
		},
	}
}

func (c *testClient) do(req *http.Request) (*http.Response, string) {
	c.t.Helper()
	resp, err := c.client.Do(req)
	if err != nil {
		c.t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func (c *testClient) get(path string) (*http.Response, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodGet, c.srv.URL+path, nil)
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	return c.do(req)
}

func (c *testClient) postForm(path string, form url.Values) (*http.Response, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodPost, c.srv.URL+path, strings.NewReader(form.Encode()))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req)
}

// action posts datastar signals the way the browser does, from referer.
func (c *testClient) action(path, signals, referer string) (*http.Response, string) {
	c.t.Helper()
	req, err := http.NewRequest(http.MethodPost, c.srv.URL+path, strings.NewReader(signals))
	if err != nil {
		c.t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Datastar-Request", "true")
	if referer != "" {
		req.Header.Set("Referer", c.srv.URL+referer)
	}
	return c.do(req)
}

func (c *testClient) session() handler.SessionDTO {
	c.t.Helper()
	_, body := c.get("/api/session")
	var dto handler.SessionDTO
	if err := json.Unmarshal([]byte(body), &dto); err != nil {
		c.t.Fatalf("decode session: %v", err)
	}
	return dto
}

func (c *testClient) users() []domain.User {
	c.t.Helper()
	_, body := c.get("/api/users")
	var users []domain.User
	if err := json.Unmarshal([]byte(body), &users); err != nil {
		c.t.Fatalf("decode users: %v", err)
	}
	return users
}

func expectContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Fatalf("expected response to contain %q, got:\n%s", want, body)
		}
	}
}

// register walks the hero flow from mobile entry to a submitted form.
func register(t *testing.T, c *testClient, mobile, firstName, username string) {
	t.Helper()
	c.action("/flow/hero/open/mobile-register", `{}`, "/")
	c.action("/flow/hero/otp/send", `{"hero":{"mobile":"`+mobile+`"}}`, "/")
	c.action("/flow/hero/otp/verify", `{"hero":{"otp":"123456"}}`, "/")
	_, body := c.action("/flow/hero/register",
		`{"hero":{"firstname":"`+firstName+`","lastname":"Rao","username":"`+username+`","areatype":"urban","ulb":"GHMC"}}`, "/")
	if strings.Contains(body, "data-state") {
		t.Fatalf("expected registration to complete, got:\n%s", body)
	}
}

func TestIntegration_HomeAndNotFound(t *testing.T) {
	d, _ := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	resp, body := c.get("/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("home: expected 200, got %d", resp.StatusCode)
	}
	expectContains(t, body, `id="hero-cta"`)
	expectContains(t, body, "Register Now")
	expectContains(t, body, `id="identity-modal-hero"`)
	expectContains(t, body, `id="identity-modal-header"`)

	srvURL, _ := url.Parse(srv.URL)
	var hasClientCookie bool
	for _, cookie := range c.client.Jar.Cookies(srvURL) {
		if cookie.Name == session.CookieName {
			hasClientCookie = true
		}
	}
	if !hasClientCookie {
		t.Fatal("expected portal_client cookie to be set")
	}

	resp, body = c.get("/no/such/page")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("not found: expected 404, got %d", resp.StatusCode)
	}
	expectContains(t, body, "Oops! Page not found")

	resp, _ = c.get("/api/nothing")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("api not found: expected 404, got %d", resp.StatusCode)
	}
}

func TestIntegration_RegisterThroughHero(t *testing.T) {
	d, codes := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	resp, body := c.action("/flow/hero/open/mobile-register", `{}`, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("open: expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/event-stream") {
		t.Fatalf("expected an event stream, got %s", ct)
	}
	expectContains(t, body, "identity-modal-hero")
	expectContains(t, body, `data-state="mobileRegister"`)

	_, body = c.action("/flow/hero/otp/send", `{"hero":{"mobile":"98765"}}`, "/")
	expectContains(t, body, flow.MsgInvalidMobile)

	_, body = c.action("/flow/hero/otp/send", `{"hero":{"mobile":"9876543210"}}`, "/")
	expectContains(t, body, `data-state="otp"`)
	if got := codes.last("9876543210"); got != testOTP {
		t.Fatalf("expected code %s to be sent, got %q", testOTP, got)
	}

	_, body = c.action("/flow/hero/otp/verify", `{"hero":{"otp":"000000"}}`, "/")
	expectContains(t, body, flow.MsgOTPMismatch)

	_, body = c.action("/flow/hero/otp/verify", `{"hero":{"otp":"123456"}}`, "/")
	expectContains(t, body, `data-state="register"`)
	expectContains(t, body, "9876543210")

	_, body = c.action("/flow/hero/register", `{"hero":{"regmobile":"9876543210"}}`, "/")
	expectContains(t, body, "First name is required.")
	if c.session().LoggedIn {
		t.Fatal("expected no session before a valid registration")
	}

	resp, body = c.action("/flow/hero/register",
		`{"hero":{"firstname":"Asha","lastname":"Rao","regmobile":"9876543210","username":"asha","areatype":"rural","block":"Shamshabad","panchayat":"Kothur","village":"Inmulnarva","ulb":"GHMC"}}`,
		"/quizzes")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("register: expected 200, got %d", resp.StatusCode)
	}
	expectContains(t, body, "/quizzes")
	if strings.Contains(body, "data-state") {
		t.Fatalf("expected the modal to close, got:\n%s", body)
	}

	sess := c.session()
	if !sess.LoggedIn || sess.User == nil {
		t.Fatal("expected to be logged in after registration")
	}
	if sess.User.FirstName != "Asha" || sess.User.Mobile != "9876543210" {
		t.Fatalf("unexpected session user: %+v", sess.User)
	}
	if sess.User.AreaType != domain.AreaRural || sess.User.Village != "Inmulnarva" || sess.User.ULB != "" {
		t.Fatalf("expected rural location only, got %+v", sess.User)
	}

	users := c.users()
	if len(users) != 1 || users[0].Username != "asha" {
		t.Fatalf("expected one stored user, got %+v", users)
	}
}

func TestIntegration_LogoutAndLogin(t *testing.T) {
	d, codes := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	register(t, c, "9000000001", "Kiran", "kiran")

	resp, _ := c.postForm("/logout", nil)
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("logout: expected 303, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("logout: expected redirect to /, got %s", loc)
	}
	if c.session().LoggedIn {
		t.Fatal("expected logged out")
	}
	if len(c.users()) != 1 {
		t.Fatal("expected stored users to survive logout")
	}

	_, body := c.action("/flow/header/open/login", `{}`, "/")
	expectContains(t, body, "identity-modal-header")
	expectContains(t, body, `data-state="login"`)

	_, body = c.action("/flow/header/login", `{"header":{"identifier":"nobody","terms":true}}`, "/")
	expectContains(t, body, flow.MsgNoAccount)

	_, body = c.action("/flow/header/login", `{"header":{"identifier":"kiran","terms":false}}`, "/")
	expectContains(t, body, flow.MsgTermsRequired)

	_, body = c.action("/flow/header/login", `{"header":{"identifier":"kiran","terms":true}}`, "/")
	expectContains(t, body, `data-state="otp"`)
	if got := codes.last("kiran"); got != testOTP {
		t.Fatalf("expected code sent to kiran, got %q", got)
	}

	_, body = c.action("/flow/header/otp/verify", `{"header":{"otp":"123456"}}`, "/profile")
	expectContains(t, body, "/profile")

	sess := c.session()
	if !sess.LoggedIn || sess.User.FirstName != "Kiran" {
		t.Fatalf("expected Kiran logged in, got %+v", sess)
	}
	if len(c.users()) != 1 {
		t.Fatal("expected login not to append a user")
	}
}

func TestIntegration_FlowEdgeCases(t *testing.T) {
	d, _ := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	resp, _ := c.action("/flow/sidebar/close", `{}`, "/")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown screen: expected 404, got %d", resp.StatusCode)
	}

	resp, _ = c.action("/flow/header/open/signup", `{}`, "/")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown modal: expected 404, got %d", resp.StatusCode)
	}

	// Verifying with nothing open leaves the flow closed.
	resp, body := c.action("/flow/header/otp/verify", `{"header":{"otp":"123456"}}`, "/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("invalid transition: expected 200, got %d", resp.StatusCode)
	}
	if strings.Contains(body, "data-state") {
		t.Fatalf("expected the closed modal to stay empty, got:\n%s", body)
	}

	resp, _ = c.action("/flow/header/login", `not json`, "/")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad signals: expected 400, got %d", resp.StatusCode)
	}

	// Screens are independent.
	c.action("/flow/header/open/login", `{}`, "/")
	_, body = c.action("/flow/hero/open/mobile-register", `{}`, "/")
	expectContains(t, body, `data-state="mobileRegister"`)
	_, body = c.get("/")
	expectContains(t, body, `data-state="login"`)

	_, body = c.action("/flow/header/close", `{}`, "/")
	if strings.Contains(body, "data-state") {
		t.Fatalf("expected close to empty the modal, got:\n%s", body)
	}
}

func TestIntegration_OTPRateLimit(t *testing.T) {
	d, _ := newTestDeps(t)
	d.OTPLimiter = service.NewTokenBucket(1, 1)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	c.action("/flow/header/open/mobile-register", `{}`, "/")
	_, body := c.action("/flow/header/otp/send", `{"header":{"mobile":"9876543210"}}`, "/")
	expectContains(t, body, `data-state="otp"`)

	_, body = c.action("/flow/header/otp/resend", `{}`, "/")
	expectContains(t, body, handler.MsgRateLimited)
	expectContains(t, body, `data-state="otp"`)
}

func TestIntegration_TakeQuiz(t *testing.T) {
	d, _ := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	resp, _ := c.get("/quiz/1")
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/" {
		t.Fatalf("logged out quiz: expected 303 to /, got %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp, body := c.get("/quizzes?tab=my-quiz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("my-quiz logged out: expected 200, got %d", resp.StatusCode)
	}
	expectContains(t, body, "Telangana State Youth Leadership Quiz 2025", "Heritage")
	if strings.Contains(body, "Attempted") {
		t.Fatal("expected no attempted badge while logged out")
	}

	register(t, c, "9000000002", "Asha", "asha")

	resp, body = c.get("/quiz/1")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("quiz: expected 200, got %d", resp.StatusCode)
	}
	expectContains(t, body, "Telangana State Youth Leadership Quiz 2025")
	expectContains(t, body, `name="q4"`)

	resp, _ = c.get("/quiz/42")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown quiz: expected 404, got %d", resp.StatusCode)
	}

	resp, body = c.postForm("/quiz/1", url.Values{"language": {"klingon"}})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("bad language: expected 422, got %d", resp.StatusCode)
	}
	expectContains(t, body, handler.MsgInvalidSubmission)

	resp, _ = c.postForm("/quiz/1", url.Values{
		"language": {"telugu"},
		"q0":       {"1"},
		"q1":       {"2"},
		"q2":       {"0"},
		"q3":       {"1"},
		"q4":       {"0"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("submit: expected 303, got %d", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/quiz-thank-you?attempt=") {
		t.Fatalf("submit: unexpected redirect %s", loc)
	}
	attemptID := strings.TrimPrefix(loc, "/quiz-thank-you?attempt=")

	resp, body = c.get(loc)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("thank you: expected 200, got %d", resp.StatusCode)
	}
	expectContains(t, body, "5 / 5")
	expectContains(t, body, "/certificate?attempt="+attemptID)

	_, body = c.get("/certificate?attempt=" + attemptID)
	expectContains(t, body, "Certificate of Participation")
	expectContains(t, body, "Asha Rao")

	_, body = c.get("/certificate?attempt=999")
	expectContains(t, body, "No certificate available")

	_, body = c.get("/quizzes?tab=my-quiz")
	expectContains(t, body, "Heritage", `id="quiz-1-attempted"`)
	if strings.Contains(body, `id="quiz-2-attempted"`) {
		t.Fatal("expected only the submitted quiz to carry the attempted badge")
	}

	_, body = c.get("/api/quizzes?tab=my-quiz")
	var mine []handler.QuizDTO
	if err := json.Unmarshal([]byte(body), &mine); err != nil {
		t.Fatalf("decode my quizzes: %v", err)
	}
	if len(mine) != 2 || !mine[0].Attempted || mine[1].Attempted {
		t.Fatalf("expected both quizzes with only quiz 1 attempted, got %+v", mine)
	}

	resp, _ = c.get("/quizzes?tab=someday")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("unknown tab: expected 400, got %d", resp.StatusCode)
	}

	// Another browser cannot see this attempt.
	other := newTestClient(t, srv)
	register(t, other, "9000000003", "Ravi", "ravi")
	resp, _ = other.get(loc)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign attempt: expected 404, got %d", resp.StatusCode)
	}
}

func TestIntegration_QuizSearch(t *testing.T) {
	d, _ := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	_, body := c.get("/quizzes?q=HERITAGE&tab=all")
	expectContains(t, body, "Heritage")
	if strings.Contains(body, "Youth Leadership Quiz") {
		t.Fatal("expected search to exclude non-matching titles")
	}

	resp, body := c.get("/api/quizzes?tab=ongoing")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("api quizzes: expected 200, got %d", resp.StatusCode)
	}
	var quizzes []handler.QuizDTO
	if err := json.Unmarshal([]byte(body), &quizzes); err != nil {
		t.Fatalf("decode quizzes: %v", err)
	}
	if len(quizzes) != 2 || quizzes[0].ID != "1" || quizzes[0].TotalQuestions != 5 {
		t.Fatalf("unexpected quizzes: %+v", quizzes)
	}
	if strings.Contains(body, "correct") {
		t.Fatal("expected answers to stay private")
	}

	resp, _ = c.get("/api/quizzes?tab=bogus")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("api bad tab: expected 400, got %d", resp.StatusCode)
	}
}

func TestIntegration_ProfileAndBasicInfo(t *testing.T) {
	d, _ := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	resp, body := c.get("/profile")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("profile: expected 200, got %d", resp.StatusCode)
	}
	expectContains(t, body, `id="profile-form"`)

	resp, _ = c.postForm("/profile", url.Values{
		"firstName": {"Meena"},
		"lastName":  {"Reddy"},
		"mobile":    {"9111111111"},
		"areaType":  {"rural"},
		"languages": {"english", "telugu"},
	})
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/profile?saved=1" {
		t.Fatalf("save profile: expected 303 to /profile?saved=1, got %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}

	_, body = c.get("/profile?saved=1")
	expectContains(t, body, handler.MsgProfileSaved)
	expectContains(t, body, `value="Meena"`)

	sess := c.session()
	if !sess.LoggedIn || sess.User.AreaType != domain.AreaRural || len(sess.User.Languages) != 2 {
		t.Fatalf("unexpected session after profile save: %+v", sess)
	}
	if len(c.users()) != 0 {
		t.Fatal("expected profile save to leave stored users untouched")
	}

	resp, _ = c.postForm("/basic-info", url.Values{
		"firstName": {"Meena"},
		"lastName":  {"R"},
		"username":  {"sneaky"},
		"district":  {"Hyderabad"},
		"pincode":   {" 500001 "},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("save basic info: expected 303, got %d", resp.StatusCode)
	}

	_, body = c.get("/basic-info?saved=1")
	expectContains(t, body, handler.MsgBasicInfoSaved)

	sess = c.session()
	if sess.User.Username != "" || sess.User.Pincode != "500001" || sess.User.District != "Hyderabad" {
		t.Fatalf("unexpected session after basic info save: %+v", sess.User)
	}
	if sess.User.AreaType != domain.AreaRural {
		t.Fatal("expected basic info to keep the area type")
	}
}

func multipartImage(t *testing.T, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "me.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	part.Write(data)
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestIntegration_ProfileImage(t *testing.T) {
	d, _ := newTestDeps(t)
	srv := httptest.NewServer(handler.New(d))
	defer srv.Close()
	c := newTestClient(t, srv)

	resp, _ := c.get("/profile/image")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("no image: expected 404, got %d", resp.StatusCode)
	}

	png := append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 64)...)
	body, contentType := multipartImage(t, png)
	req, _ := http.NewRequest(http.MethodPost, srv.URL+"/profile/image", body)
	req.Header.Set("Content-Type", contentType)
	resp, _ = c.do(req)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/profile?saved=image" {
		t.Fatalf("upload: expected 303 to /profile?saved=image, got %d %s", resp.StatusCode, resp.Header.Get("Location"))
	}

	resp, got := c.get("/profile/image")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("serve: expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %s", ct)
	}
	if got != string(png) {
		t.Fatal("expected the uploaded bytes back")
	}
	if !service.IsProfileImageKey(c.session().User.ProfileImage) {
		t.Fatalf("expected a profile image key, got %q", c.session().User.ProfileImage)
	}

	body, contentType = multipartImage(t, []byte("definitely not an image"))
	req, _ = http.NewRequest(http.MethodPost, srv.URL+"/profile/image", body)
	req.Header.Set("Content-Type", contentType)
	resp, page := c.do(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("bad upload: expected 400, got %d", resp.StatusCode)
	}
	expectContains(t, page, "Only JPEG and PNG images are accepted.")
}

func TestIntegration_APICORS(t *testing.T) {
	d, _ := newTestDeps(t)
	d.AllowedOrigins = []string{"https://allowed.example"}
	h := handler.New(d)

	req := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Origin", "https://allowed.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://allowed.example" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for other origins, got %q", got)
	}

	d.AllowedOrigins = nil
	req = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	req.Header.Set("Origin", "https://allowed.example")
	w = httptest.NewRecorder()
	handler.New(d).ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected CORS refused with no origins configured, got %q", got)
	}
}
