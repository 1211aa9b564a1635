package export

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/hiredeck/ats-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func record(token, id, email string, raw string) *model.ApplicantRecord {
	return &model.ApplicantRecord{
		ID:        id,
		JobToken:  token,
		CreatedAt: "2026-08-31 09:15",
		Name:      "Sam Doe",
		Email:     email,
		Education: "BTech",
		College:   "Tech Institute",
		Passout:   2025,
		ATSResult: json.RawMessage(raw),
		Status:    "Pending",
	}
}

func TestProject_ParagraphAndColumns(t *testing.T) {
	applicants := map[string][]*model.ApplicantRecord{
		"tok1": {
			record("tok1", "id1", "a@example.com",
				`{"JD Match":"72%","MissingKeywords":["Docker","Kubernetes"],"Profile Summary":"Solid backend skills."}`),
		},
	}

	rows := Project(applicants)
	require.Len(t, rows, 1)
	row := rows[0]
	assert.Equal(t, "72%", row.JDMatch)
	assert.Equal(t, "Docker, Kubernetes", row.MissingKeywords)
	assert.Equal(t, "Match 72%. Missing: Docker, Kubernetes. Summary: Solid backend skills.", row.ProfileSummary)
}

func TestProject_EmptyFieldsAreOmittedFromParagraph(t *testing.T) {
	applicants := map[string][]*model.ApplicantRecord{
		"tok1": {
			record("tok1", "id1", "a@example.com", `{}`),
		},
	}

	rows := Project(applicants)
	require.Len(t, rows, 1)
	assert.Equal(t, "None", rows[0].MissingKeywords)
	assert.Equal(t, "Missing: None.", rows[0].ProfileSummary)
}

func TestProject_RenormalizesRawScorerText(t *testing.T) {
	// Stored as the raw scorer string, the way an older write might have
	// left it. Projection must still produce canonical columns.
	raw, err := json.Marshal("```json\n{\"JD Match\":\"60%\",\"MissingKeywords\":[],\"Profile Summary\":\"ok\"}\n```")
	require.NoError(t, err)

	applicants := map[string][]*model.ApplicantRecord{
		"tok1": {record("tok1", "id1", "a@example.com", string(raw))},
	}

	rows := Project(applicants)
	require.Len(t, rows, 1)
	assert.Equal(t, "60%", rows[0].JDMatch)
	assert.Equal(t, "None", rows[0].MissingKeywords)
	assert.Equal(t, "Match 60%. Missing: None. Summary: ok", rows[0].ProfileSummary)
}

func TestProject_TokenOrderIsDeterministic(t *testing.T) {
	applicants := map[string][]*model.ApplicantRecord{
		"zz": {record("zz", "id3", "c@example.com", `{}`)},
		"aa": {
			record("aa", "id1", "a@example.com", `{}`),
			record("aa", "id2", "b@example.com", `{}`),
		},
	}

	rows := Project(applicants)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"id1", "id2", "id3"}, []string{rows[0].ID, rows[1].ID, rows[2].ID})
}

func TestExcelWriter_WritesOneRowPerApplicant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applicants.xlsx")
	writer := NewExcelWriter(path)

	applicants := map[string][]*model.ApplicantRecord{
		"tok1": {
			record("tok1", "id1", "a@example.com", `{"JD Match":"72%","MissingKeywords":"Docker","Profile Summary":"fine"}`),
			record("tok1", "id2", "b@example.com", `{}`),
		},
	}
	require.NoError(t, writer.Export(applicants))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows("Applicants")
	require.NoError(t, err)
	require.Len(t, sheetRows, 3) // header + 2 applicants
	assert.Equal(t, Headers, sheetRows[0])
	assert.Equal(t, "Docker", sheetRows[1][10])
	assert.Equal(t, "None", sheetRows[2][10])
}

func TestExcelWriter_OverwritesPreviousFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "applicants.xlsx")
	writer := NewExcelWriter(path)

	first := map[string][]*model.ApplicantRecord{
		"tok1": {
			record("tok1", "id1", "a@example.com", `{}`),
			record("tok1", "id2", "b@example.com", `{}`),
		},
	}
	require.NoError(t, writer.Export(first))

	second := map[string][]*model.ApplicantRecord{
		"tok1": {record("tok1", "id1", "a@example.com", `{}`)},
	}
	require.NoError(t, writer.Export(second))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheetRows, err := f.GetRows("Applicants")
	require.NoError(t, err)
	assert.Len(t, sheetRows, 2) // header + 1 applicant, not appended
}
