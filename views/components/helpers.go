package components

import (
	"net/url"
	"strconv"

	"alumni/views/models"
)

const (
	NoResultsMessage = "No alumni found for this selection."
	LoadErrorMessage = "Error loading alumni data."
)

func showMoreURL(category string, offset int) string {
	q := url.Values{}
	q.Set("category", category)
	q.Set("offset", strconv.Itoa(offset))
	return "/fragments/alumni?" + q.Encode()
}

func categoryQuery(category string) string {
	q := url.Values{}
	q.Set("category", category)
	return q.Encode()
}

type formField struct {
	id, label, kind, placeholder string
	required                     bool
}

func (f formField) labelText() string {
	if f.required {
		return f.label + " *"
	}
	return f.label
}

var registrationFields = []formField{
	{id: "name", label: "Full Name", kind: "text", required: true},
	{id: "email", label: "Email Address", kind: "email", required: true},
	{id: "passingYear", label: "Passing Year", kind: "number", placeholder: "e.g. 2020", required: true},
	{id: "address", label: "Current Address", kind: "text", required: true},
	{id: "designation", label: "Designation", kind: "text", required: true},
	{id: "company", label: "Company / Business", kind: "text", required: true},
	{id: "package", label: "Current Package", kind: "text", placeholder: "e.g. 6 LPA"},
}

func fieldErrorsNotification(errs []models.FieldError) models.Notification {
	details := make([]string, len(errs))
	for i, e := range errs {
		details[i] = e.Message
	}
	return models.Notification{
		Kind:    "error",
		Message: "Please correct the highlighted fields.",
		Details: details,
	}
}
