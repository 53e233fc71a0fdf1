package registration

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni/internal/alumni"
)

func TestWriteCSVFeedsTheShowcase(t *testing.T) {
	regs := []*Registration{
		{
			Name: "Doe, Jane", Email: "jane@example.com", Department: "Law", PassingYear: 2020,
			Address: "12 \"Main\" St", Designation: "Advocate", Company: "Doe & Co",
			Feedback: "Great, really", PhotoStatus: PhotoUploaded, CreatedAt: fixedNow,
		},
		{
			Name: "Ravi", Email: "ravi@example.com", Department: "MBA", PassingYear: 2018,
			Address: "Delhi", Designation: "Manager", Company: "Globex",
			PhotoStatus: PhotoNotUploaded, CreatedAt: fixedNow,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, regs))

	recs := alumni.Parse(buf.String())
	require.Len(t, recs, 2)
	assert.Equal(t, "Doe, Jane", recs[0].Name)
	assert.Equal(t, `12 "Main" St`, recs[0].Address)
	assert.Equal(t, "Great, really", recs[0].Feedback)
	assert.Equal(t, "2020", recs[0].PassingYear)
	assert.Equal(t, "2025-03-14", recs[0].RegistrationDate)
	assert.Equal(t, "09:26:53", recs[0].RegistrationTime)
	assert.Equal(t, PhotoNotUploaded, recs[1].PhotoStatus)
	assert.Equal(t, "", recs[1].Feedback)
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Student_Name,Email,Department,Passing_Year,Current_Address,Designation,"+
		"Company_or_Business,Current_Package,Feedback,Photo_Status,Registration_Date,Registration_Time\n", buf.String())
}

func TestExportFilename(t *testing.T) {
	assert.Equal(t, "MVN_Alumni_Registration_2025-03-14.csv", ExportFilename("2025-03-14"))
}
