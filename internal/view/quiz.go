package view

import (
	"net/url"

	"github.com/msomdec/youth-portal/internal/domain"
)

const dateLayout = "2 Jan, 2006"

var quizInstructions = []string{
	"No entry fee is required to participate.",
	"The quiz consists of multiple-choice questions, and each question has 2-4 options with only one correct answer.",
	"The quiz is open to all registered users but only youth aged 15-29 (as on 1st September, 2025) will be considered for advancing in further stages.",
	"Winners will be chosen via a computer-based selection process.",
}

// tabURL keeps the search query when switching tabs.
func tabURL(tab domain.QuizTab, query string) string {
	v := url.Values{"tab": {string(tab)}}
	if query != "" {
		v.Set("q", query)
	}
	return "/quizzes?" + v.Encode()
}

// quizFacts are the label/value rows of a catalog card.
func quizFacts(q domain.Quiz) [][2]string {
	return [][2]string{
		{"From Date", q.StartDate.Format(dateLayout)},
		{"To Date", q.EndDate.Format(dateLayout)},
		{"Attempt Count", itoa(q.AttemptCount)},
		{"Total Score", itoa(q.TotalScore())},
		{"Passing Score", itoa(q.PassingScore)},
		{"Questions", itoa(q.TotalQuestions())},
		{"Hours", q.Duration},
	}
}

func questionName(i int) string {
	return "q" + itoa(i)
}
