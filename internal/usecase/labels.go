package usecase

import "cv-exporter/internal/domain"

// Static heading labels for the two supported locales. Unknown locales
// get the English set.

var labelsEn = domain.Labels{
	Contact:   "Contact",
	Skills:    "Skills",
	Languages: "Languages",
	Follow:    "Follow",
	Present:   "Present",
}

var labelsFr = domain.Labels{
	Contact:   "Contact",
	Skills:    "Compétences",
	Languages: "Langues",
	Follow:    "Suivre",
	Present:   "Aujourd'hui",
}

func LabelsFor(locale string) domain.Labels {
	if locale == "fr" {
		return labelsFr
	}
	return labelsEn
}
