package view

// heroSlides are the captions the hero carousel rotates through.
var heroSlides = []string{
	"Empowering the youth of Telangana",
	"Test your knowledge, win recognition",
	"Discover talent through Khelo India",
}

const heroSignals = `{"slide":0}`

// heroAdvance moves the carousel one slide forward, wrapping at the end.
func heroAdvance() string {
	return "$slide = ($slide + 1) % " + itoa(len(heroSlides))
}

func slideShown(i int) string {
	return "$slide === " + itoa(i)
}
