package job

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
)

const internshipType = "internship"

const internshipDescriptionTemplate = "This internship opportunity is perfect for students or recent graduates " +
	"looking to gain hands-on experience in %s. You'll work alongside experienced professionals, " +
	"contribute to real projects, and develop valuable skills for your future career."

// IsInternship reports whether employmentType names an internship,
// ignoring case
func IsInternship(employmentType string) bool {
	return strings.EqualFold(employmentType, internshipType)
}

// FormatPackageForDisplay converts an internship's annual package into a
// monthly stipend label. Other employment types pass through unchanged.
//
// With n the leading integer of the package ("4 LPA" -> 4) the stipend in
// hundreds is n*8 up to 5 and 40+(n-5)*6 above it, shown divided by ten:
// "4 LPA" -> "3.2 k/month", "8 LPA" -> "5.8 k/month". A leading token that
// is not an integer counts as 0.
func FormatPackageForDisplay(employmentType, packagePerAnnum string) string {
	if !IsInternship(employmentType) {
		return packagePerAnnum
	}

	n := leadingInt(packagePerAnnum)

	var stipend int
	if n <= 5 {
		stipend = n * 8
	} else {
		stipend = 40 + (n-5)*6
	}

	return strconv.FormatFloat(float64(stipend)/10, 'f', -1, 64) + " k/month"
}

// FormatDescriptionForDisplay replaces an internship's description with a
// fixed sentence built from its title
func FormatDescriptionForDisplay(employmentType, title, jobDescription string) string {
	if !IsInternship(employmentType) {
		return jobDescription
	}
	return fmt.Sprintf(internshipDescriptionTemplate, title)
}

// leadingInt reads an optionally signed integer prefix from the first
// space-separated token of s. It returns 0 when there is none.
func leadingInt(s string) int {
	token, _, _ := strings.Cut(s, " ")
	token = strings.TrimSpace(token)

	end := 0
	if end < len(token) && (token[end] == '+' || token[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(token) && token[end] >= '0' && token[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0
	}

	n, err := strconv.Atoi(token[:end])
	if err != nil {
		return 0
	}
	return n
}

// CardView is a job summary as it appears on a list card
type CardView struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	CompanyLogoURL string  `json:"companyLogoUrl"`
	Rating         float64 `json:"rating"`
	EmploymentType string  `json:"employmentType"`
	Location       string  `json:"location"`
	Package        string  `json:"package"`
	Description    string  `json:"description"`
}

func NewCardView(j domain.JobSummary) CardView {
	return CardView{
		ID:             j.ID,
		Title:          j.Title,
		CompanyLogoURL: j.CompanyLogoURL,
		Rating:         j.Rating,
		EmploymentType: j.EmploymentType,
		Location:       j.Location,
		Package:        FormatPackageForDisplay(j.EmploymentType, j.PackagePerAnnum),
		Description:    FormatDescriptionForDisplay(j.EmploymentType, j.Title, j.JobDescription),
	}
}

// NewCardViews maps a result set to cards, keeping order
func NewCardViews(jobs []domain.JobSummary) []CardView {
	out := make([]CardView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewCardView(j))
	}
	return out
}
