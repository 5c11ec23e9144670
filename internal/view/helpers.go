// Package view renders the portal's pages and fragments as templ components.
package view

import (
	"encoding/json"
	"strconv"

	"github.com/msomdec/youth-portal/internal/domain"
)

// post returns a datastar action posting to url.
func post(url string) string {
	return "@post('" + url + "')"
}

// signals encodes v for a data-signals attribute.
func signals(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func itoa(n int) string { return strconv.Itoa(n) }

func itoa64(n int64) string { return strconv.FormatInt(n, 10) }

func score(a domain.QuizAttempt) string {
	return itoa(a.Score) + " / " + itoa(a.TotalScore)
}
