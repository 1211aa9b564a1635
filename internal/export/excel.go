package export

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/hiredeck/ats-service/internal/ats"
	"github.com/hiredeck/ats-service/internal/model"
	"github.com/hiredeck/ats-service/internal/util"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Applicants"

// Headers is the export table column order. The spreadsheet is regenerated
// wholesale on every save; there is no append semantics.
var Headers = []string{
	"Job Token", "ID", "Applied On", "Name", "Email", "Education",
	"College", "Passout", "Status", "JD Match", "Missing Keywords",
	"Profile Summary",
}

type Row struct {
	JobToken        string
	ID              string
	AppliedOn       string
	Name            string
	Email           string
	Education       string
	College         string
	Passout         int
	Status          string
	JDMatch         string
	MissingKeywords string
	ProfileSummary  string
}

// Project flattens the applicant collection into export rows, one per
// applicant, tokens in sorted order and submissions in insertion order.
// Every ATS result is re-normalized here; the stored value is never
// trusted to be canonical.
func Project(applicants map[string][]*model.ApplicantRecord) []Row {
	tokens := make([]string, 0, len(applicants))
	for token := range applicants {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	var rows []Row
	for _, token := range tokens {
		for _, rec := range applicants[token] {
			result := ats.Normalize(rec.ATSResult)

			missing := "None"
			if len(result.MissingKeywords) > 0 {
				missing = strings.Join(result.MissingKeywords, ", ")
			}

			var parts []string
			if result.JDMatch != "" {
				parts = append(parts, fmt.Sprintf("Match %s.", result.JDMatch))
			}
			parts = append(parts, fmt.Sprintf("Missing: %s.", missing))
			if result.ProfileSummary != "" {
				parts = append(parts, fmt.Sprintf("Summary: %s", result.ProfileSummary))
			}

			jobToken := rec.JobToken
			if jobToken == "" {
				jobToken = token
			}

			rows = append(rows, Row{
				JobToken:        jobToken,
				ID:              rec.ID,
				AppliedOn:       rec.CreatedAt,
				Name:            rec.Name,
				Email:           rec.Email,
				Education:       rec.Education,
				College:         rec.College,
				Passout:         rec.Passout,
				Status:          rec.Status,
				JDMatch:         result.JDMatch,
				MissingKeywords: missing,
				ProfileSummary:  strings.TrimSpace(strings.Join(parts, " ")),
			})
		}
	}
	return rows
}

// ExcelWriter persists the projected table as a single-sheet xlsx file.
type ExcelWriter struct {
	Path string
}

func NewExcelWriter(path string) *ExcelWriter {
	return &ExcelWriter{Path: path}
}

func (w *ExcelWriter) Export(applicants map[string][]*model.ApplicantRecord) error {
	rows := Project(applicants)

	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return err
	}

	for col, header := range Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		values := []any{
			row.JobToken, row.ID, row.AppliedOn, row.Name, row.Email,
			row.Education, row.College, row.Passout, row.Status,
			row.JDMatch, row.MissingKeywords, row.ProfileSummary,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return fmt.Errorf("failed to build spreadsheet: %w", err)
	}
	return util.WriteFileAtomic(w.Path, buf.Bytes(), 0644)
}
