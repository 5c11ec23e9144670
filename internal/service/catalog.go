package service

import (
	"time"

	"github.com/msomdec/youth-portal/internal/domain"
)

// QuizLanguages are the languages a quiz can be taken in.
var QuizLanguages = []string{"english", "hindi", "telugu"}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// Catalog returns the built-in quizzes in display order.
func Catalog() []domain.Quiz {
	return []domain.Quiz{
		{
			ID:           "1",
			Title:        "Telangana State Youth Leadership Quiz 2025",
			Organizer:    "Department of Youth Affairs, Telangana",
			Image:        "/static/quiz-banner-1.jpg",
			StartDate:    day(2025, time.September, 1),
			EndDate:      day(2025, time.October, 15),
			ExpiryDate:   day(2025, time.October, 15),
			Duration:     "00:10",
			AttemptCount: 1,
			PassingScore: 2,
			Status:       domain.QuizOngoing,
			Questions: []domain.Question{
				{Prompt: "In which year was the state of Telangana formed?", Options: []string{"2012", "2014", "2016", "2010"}, Correct: 1},
				{Prompt: "What is the capital of Telangana?", Options: []string{"Warangal", "Karimnagar", "Hyderabad", "Nizamabad"}, Correct: 2},
				{Prompt: "Which national scheme focuses on developing sports talent among youth?", Options: []string{"Khelo India", "Digital India", "Make in India"}, Correct: 0},
				{Prompt: "NSS stands for?", Options: []string{"National Sports Scheme", "National Service Scheme", "National Skill Society"}, Correct: 1},
				{Prompt: "National Youth Day is celebrated on the birth anniversary of?", Options: []string{"Swami Vivekananda", "Bhagat Singh", "Subhas Chandra Bose", "Rabindranath Tagore"}, Correct: 0},
			},
		},
		{
			ID:           "2",
			Title:        "Telangana Heritage & Culture Quiz 2025",
			Organizer:    "Telangana State Tourism Department",
			Image:        "/static/quiz-banner-2.jpg",
			StartDate:    day(2025, time.September, 19),
			EndDate:      day(2025, time.September, 23),
			ExpiryDate:   day(2025, time.September, 23),
			Duration:     "00:15",
			AttemptCount: 1,
			PassingScore: 3,
			Status:       domain.QuizOngoing,
			Questions: []domain.Question{
				{Prompt: "Which festival of flowers is celebrated in Telangana?", Options: []string{"Onam", "Bathukamma", "Pongal", "Bihu"}, Correct: 1},
				{Prompt: "The Charminar was built by which dynasty?", Options: []string{"Qutb Shahi", "Kakatiya", "Mughal", "Asaf Jahi"}, Correct: 0},
				{Prompt: "The Ramappa Temple, a UNESCO World Heritage Site, was built during the reign of?", Options: []string{"Vijayanagara", "Chola", "Kakatiya"}, Correct: 2},
				{Prompt: "Which tribal fair in Telangana is among the largest in Asia?", Options: []string{"Sammakka Saralamma Jatara", "Pushkar Mela", "Hornbill Festival"}, Correct: 0},
				{Prompt: "Pochampally is famous for which craft?", Options: []string{"Bidriware", "Ikat weaving", "Filigree"}, Correct: 1},
			},
		},
	}
}
