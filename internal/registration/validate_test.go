package registration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)

func validInput() Input {
	return Input{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		Department:  "Law",
		PassingYear: "2020",
		Address:     "Pune",
		Designation: "Advocate",
		Company:     "Doe & Co",
	}
}

func fields(err error) []string {
	verrs, ok := err.(ValidationErrors)
	if !ok {
		return nil
	}
	out := make([]string, len(verrs))
	for i, e := range verrs {
		out[i] = e.Field
	}
	return out
}

func TestValidateAccepts(t *testing.T) {
	in := validInput()
	in.Name = "  Jane Doe  "
	in.Package = " 9 LPA "

	reg, err := Validate(in, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", reg.Name)
	assert.Equal(t, 2020, reg.PassingYear)
	assert.Equal(t, "9 LPA", reg.Package)
	assert.Equal(t, PhotoNotUploaded, reg.PhotoStatus)
}

func TestValidateRequiredFields(t *testing.T) {
	_, err := Validate(Input{}, fixedNow)
	require.Error(t, err)
	assert.Equal(t,
		[]string{"name", "email", "department", "passingYear", "address", "designation", "company"},
		fields(err))
	assert.Equal(t, "Please fill in the passing year field.", err.(ValidationErrors)[3].Message)
}

func TestValidateRules(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Input)
		field  string
	}{
		{"bad email", func(in *Input) { in.Email = "jane@example" }, "email"},
		{"email with space", func(in *Input) { in.Email = "ja ne@example.com" }, "email"},
		{"year before 1990", func(in *Input) { in.PassingYear = "1989" }, "passingYear"},
		{"year too far ahead", func(in *Input) { in.PassingYear = "2031" }, "passingYear"},
		{"year not a number", func(in *Input) { in.PassingYear = "twenty" }, "passingYear"},
		{"other without name", func(in *Input) { in.Department = OtherDepartment }, "customDepartment"},
		{"photo too large", func(in *Input) { in.PhotoSize = MaxPhotoSize + 1 }, "photo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.modify(&in)
			_, err := Validate(in, fixedNow)
			assert.Equal(t, []string{tt.field}, fields(err))
		})
	}
}

func TestValidateBoundaries(t *testing.T) {
	for _, year := range []string{"1990", "2030"} {
		in := validInput()
		in.PassingYear = year
		_, err := Validate(in, fixedNow)
		assert.NoError(t, err, year)
	}

	in := validInput()
	in.PhotoSize = MaxPhotoSize
	reg, err := Validate(in, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, PhotoUploaded, reg.PhotoStatus)
}

func TestValidateOtherDepartment(t *testing.T) {
	in := validInput()
	in.Department = OtherDepartment
	in.CustomDepartment = " Robotics "

	reg, err := Validate(in, fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "Robotics", reg.Department)
}
