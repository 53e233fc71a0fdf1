package registration

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
)

const (
	// MaxPhotoSize is the largest accepted profile photo.
	MaxPhotoSize = 1 << 20
	// MinPassingYear is the earliest accepted passing year.
	MinPassingYear = 1990
	// OtherDepartment asks the user to type a department name.
	OtherDepartment = "Other"

	PhotoUploaded    = "Uploaded"
	PhotoNotUploaded = "Not Uploaded"
)

// Registration is one accepted alumni registration.
type Registration struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Email       string    `bson:"email" json:"email"`
	Department  string    `bson:"department" json:"department"`
	PassingYear int       `bson:"passing_year" json:"passingYear"`
	Address     string    `bson:"address" json:"address"`
	Designation string    `bson:"designation" json:"designation"`
	Company     string    `bson:"company" json:"company"`
	Package     string    `bson:"package" json:"package"`
	Feedback    string    `bson:"feedback" json:"feedback"`
	PhotoStatus string    `bson:"photo_status" json:"photoStatus"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}

// Input is a submitted registration form.
type Input struct {
	Name             string
	Email            string
	Department       string
	CustomDepartment string
	PassingYear      string
	Address          string
	Designation      string
	Company          string
	Package          string
	Feedback         string
	PhotoSize        int64 // 0 when no photo was attached
}

// FieldError describes why one field was rejected.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists every rejected field of a submission.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Field + ": " + e.Message
	}
	return "invalid registration: " + strings.Join(msgs, "; ")
}
