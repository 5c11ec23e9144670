package view

import "slices"

// Flash is a one-line outcome shown above a form.
type Flash struct {
	Message string
	IsError bool
}

func isSelected(opt option, selected string) bool {
	return selected != "" && opt.Value == selected
}

func hasLanguage(langs []string, lang option) bool {
	return slices.Contains(langs, lang.Value)
}
