package tui

import (
	"fmt"
	"strings"

	"cbrarecords/internal/manager"
	"cbrarecords/internal/models"
	"cbrarecords/internal/promotion"
)

func field(label, value string) string {
	return labelStyle.Render(label) + value + "\n"
}

// RenderCard formats one student record.
func RenderCard(s *models.Student) string {
	var b strings.Builder

	b.WriteString(field("Roll Number", s.RollNo))
	b.WriteString(field("Name", s.Name))
	b.WriteString(field("Father's Name", s.FatherName))
	b.WriteString(field("Class", fmt.Sprint(s.ClassName)))
	if s.Category != models.CategoryNone {
		b.WriteString(field("Category", string(s.Category)))
	}
	b.WriteString(field("Admission Year", fmt.Sprint(s.AdmissionYear)))
	b.WriteString(field("Current Year", fmt.Sprint(s.CurrentYear)))
	b.WriteString(field("Date of Birth", s.DateOfBirth))
	b.WriteString(field("CNIC/B-Form", s.CNIC))
	b.WriteString(field("Address", s.Address))

	sum := manager.Summarize(s)
	b.WriteString("\n" + sectionStyle.Render("Attendance") + "\n")
	b.WriteString(field("Total Days Marked", fmt.Sprint(sum.Marked)))
	b.WriteString(field("Present Days", presentStyle.Render(fmt.Sprint(sum.Present))))
	b.WriteString(field("Absent Days", absentStyle.Render(fmt.Sprint(sum.Absent))))

	b.WriteString("\n" + sectionStyle.Render("Subjects") + "\n")
	for i, sub := range s.Subjects {
		mark := sub.Status.Label()
		if sub.Status.IsNumeric() {
			mark = fmt.Sprintf("%s / %g", mark, s.MaxMarksFor(sub.Name))
		}
		fmt.Fprintf(&b, "%2d. %-20s %s\n", i+1, sub.Name, mark)
	}

	b.WriteString("\n")
	b.WriteString(field("Total Subjects", fmt.Sprint(len(s.Subjects))))
	if s.MaxMarks > 0 {
		b.WriteString(field("Total Marks", fmt.Sprintf("%.2f / %.2f", s.TotalMarks, s.MaxMarks)))
		b.WriteString(field("Percentage", fmt.Sprintf("%.2f%%", s.Percentage)))
		b.WriteString(field("Grade", gradeStyle(s.Grade).Render(s.Grade.String())))
	} else {
		b.WriteString(field("Total Marks", "Not Calculated"))
	}
	b.WriteString(field("Terms Completed", fmt.Sprintf("%d/%d", s.TermsCompleted, models.MaxTerms)))
	if s.IsBoardClass() {
		b.WriteString(field("Board Marks Entered", yesNo(s.BoardMarksEntered)))
	}

	return cardStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func renderReport(r promotion.Report) string {
	var b strings.Builder
	for _, e := range r.Entries {
		line := fmt.Sprintf("%-10s %-24s class %-2d  %s", e.RollNo, e.Name, e.ClassName, e.Outcome)
		if e.Outcome == promotion.Promoted {
			line = promotedStyle.Render(line)
		}
		b.WriteString(line + "\n")
		if e.Outcome == promotion.Ineligible {
			b.WriteString(noteStyle.Render("           "+missingCriteria(e.Eligibility)) + "\n")
		}
	}
	fmt.Fprintf(&b, "\nPromoted: %d  •  Not eligible: %d  •  Not in season: %d  •  Final class: %d",
		r.Promoted, r.NotEligible, r.NotInSeason, r.Terminal)
	if r.Promoted > 0 {
		b.WriteString("\n" + noteStyle.Render("Promoted students start the new class with no subjects."))
	}
	return b.String()
}

func missingCriteria(e promotion.Eligibility) string {
	var missing []string
	if !e.TermsOK {
		missing = append(missing, fmt.Sprintf("terms %d/%d", e.TermsCompleted, models.MaxTerms))
	}
	if e.BoardRequired && !e.BoardMarksEntered {
		missing = append(missing, "board marks not entered")
	}
	if !e.MarksCalculated {
		missing = append(missing, "marks not calculated")
	}
	return strings.Join(missing, ", ")
}

func renderSubjects(name string, set manager.SubjectSet) string {
	var b strings.Builder
	header := fmt.Sprintf("Student: %s (Class: %d", name, set.ClassName)
	if set.Category != models.CategoryNone {
		header += ", " + string(set.Category)
	}
	b.WriteString(header + ")\n\n")

	if len(set.Subjects) == 0 {
		b.WriteString("No subjects.\n")
	}
	for i, sub := range set.Subjects {
		fmt.Fprintf(&b, "%2d. %s\n", i+1, sub)
	}
	b.WriteString("\n" + noteStyle.Render("Subjects follow from class and category. Delete and re-add the student to change them."))
	return b.String()
}
