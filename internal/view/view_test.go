package view_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"

	"github.com/msomdec/youth-portal/internal/domain"
	"github.com/msomdec/youth-portal/internal/flow"
	"github.com/msomdec/youth-portal/internal/view"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func assertContains(t *testing.T, body string, wants ...string) {
	t.Helper()
	for _, want := range wants {
		if !strings.Contains(body, want) {
			t.Fatalf("expected output to contain %q", want)
		}
	}
}

func assertNotContains(t *testing.T, body string, unwanted ...string) {
	t.Helper()
	for _, s := range unwanted {
		if strings.Contains(body, s) {
			t.Fatalf("expected output not to contain %q", s)
		}
	}
}

func TestIdentityModal_ClosedRendersNothing(t *testing.T) {
	if got := render(t, view.IdentityModal(flow.ScreenHeader, flow.Snapshot{})); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestIdentityModal_States(t *testing.T) {
	tests := []struct {
		state flow.State
		wants []string
	}{
		{flow.Login, []string{"Sign In to Your Account", "/flow/hero/login", `data-bind="hero.identifier"`}},
		{flow.MobileRegister, []string{"Register with Mobile Number", "/flow/hero/otp/send"}},
		{flow.OTP, []string{"Verify OTP", "/flow/hero/otp/verify", "/flow/hero/otp/resend"}},
		{flow.Register, []string{"Registration Form", "/flow/hero/register", `data-bind="hero.firstname"`}},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			body := render(t, view.IdentityModal(flow.ScreenHero, flow.Snapshot{State: tt.state}))
			assertContains(t, body, tt.wants...)
			assertContains(t, body, `data-state="`+tt.state.String()+`"`, "/flow/hero/close")
			assertNotContains(t, body, "/flow/header/")
		})
	}
}

func TestIdentityModal_EscapesMessage(t *testing.T) {
	body := render(t, view.IdentityModal(flow.ScreenHeader, flow.Snapshot{State: flow.Login, Message: "<b>bad</b>"}))
	assertContains(t, body, "&lt;b&gt;bad&lt;/b&gt;")
	assertNotContains(t, body, "<b>bad</b>")
}

func TestHeader_LoggedOutAndIn(t *testing.T) {
	out := render(t, view.Header(view.Page{}))
	assertContains(t, out, "/flow/header/open/login", `id="nav-quiz"`, `id="identity-modal-header"`)
	assertNotContains(t, out, `href="/quizzes"`)

	in := render(t, view.Header(view.Page{LoggedIn: true, User: domain.User{FirstName: "Asha", LastName: "Rao"}}))
	assertContains(t, in, `href="/quizzes"`, "Asha Rao", `action="/logout"`)
	assertNotContains(t, in, "/flow/header/open/login")
}

func TestHomePage_HeroCTA(t *testing.T) {
	out := render(t, view.HomePage(view.Page{}, flow.Snapshot{}))
	assertContains(t, out, "Register Now", "/flow/hero/open/mobile-register", `id="identity-modal-hero"`, "data-on-interval")

	in := render(t, view.HomePage(view.Page{LoggedIn: true}, flow.Snapshot{}))
	assertContains(t, in, "Take a Quiz")
	assertNotContains(t, in, "Register Now")
}

func TestQuizzesPage_ActiveTabAndCards(t *testing.T) {
	quizzes := []domain.Quiz{{
		ID:         "7",
		Title:      "Heritage Quiz",
		ExpiryDate: time.Date(2025, 9, 23, 0, 0, 0, 0, time.UTC),
		Questions:  []domain.Question{{Prompt: "p", Options: []string{"a", "b"}}},
	}}
	out := render(t, view.QuizzesPage(view.Page{}, domain.TabAll, "heri", quizzes, nil))
	assertContains(t, out, `class="active">All</a>`, "Heritage Quiz", `href="/quiz/7"`, "23 Sep, 2025", `value="heri"`, `href="/quizzes?q=heri&amp;tab=past"`)
	assertNotContains(t, out, "Attempted")

	marked := render(t, view.QuizzesPage(view.Page{}, domain.TabMyQuiz, "", quizzes, map[string]bool{"7": true}))
	assertContains(t, marked, `id="quiz-7-attempted"`, `class="active">My Quiz</a>`)

	empty := render(t, view.QuizzesPage(view.Page{}, domain.TabPast, "", nil, nil))
	assertContains(t, empty, "No quizzes found.")
}

func TestCertificatePage_Unavailable(t *testing.T) {
	out := render(t, view.CertificatePage(view.Page{}, nil, nil))
	assertContains(t, out, "No certificate available")
}

func TestProfilePage_Prefills(t *testing.T) {
	u := domain.User{
		FirstName:   "Asha",
		Gender:      "female",
		AreaType:    domain.AreaRural,
		Languages:   []string{"telugu"},
		DateOfBirth: domain.DateOfBirth{Day: "05", Month: "11", Year: "2001"},
	}
	out := render(t, view.ProfilePage(view.Page{}, u, view.Flash{Message: "Profile updated successfully."}))
	assertContains(t, out,
		`name="firstName" id="firstName" value="Asha"`,
		`value="female" selected`,
		`value="rural" checked`,
		`value="telugu" checked`,
		`value="05" selected`,
		"Profile updated successfully.",
	)
}

func TestBasicInfoPage_UsernameReadOnly(t *testing.T) {
	out := render(t, view.BasicInfoPage(view.Page{}, domain.User{Username: "ravi01"}, view.Flash{}))
	assertContains(t, out, `name="username" id="username" value="ravi01" readonly`)
}

func TestLayout_WrapsChildren(t *testing.T) {
	out := render(t, view.ErrorPage(view.Page{}, "Invalid tab", "The selected quiz tab does not exist."))
	assertContains(t, out,
		"<title>Invalid tab | Youth Portal</title>",
		`<main><section class="not-found"><h1>Invalid tab</h1>`,
		"datastar.js",
		`data-signals="`,
	)
}

func TestNotFoundPage(t *testing.T) {
	assertContains(t, render(t, view.NotFoundPage(view.Page{})), "404", "Page not found")
}
