package ats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Result
	}{
		{
			name:  "prose only",
			input: "Looks like a strong candidate overall.",
			expected: Result{
				JDMatch:         "0%",
				MissingKeywords: []string{},
				ProfileSummary:  "Looks like a strong candidate overall.",
			},
		},
		{
			name:  "json embedded in prose",
			input: `Sure! Here you go: {"JD Match":"72%","MissingKeywords":"Docker, Kubernetes","Profile Summary":"Solid backend skills."}`,
			expected: Result{
				JDMatch:         "72%",
				MissingKeywords: []string{"Docker", "Kubernetes"},
				ProfileSummary:  "Solid backend skills.",
			},
		},
		{
			name:  "malformed json falls back to synthetic shape",
			input: `{"JD Match": "80%",}`,
			expected: Result{
				JDMatch:         "0%",
				MissingKeywords: []string{},
				ProfileSummary:  `{"JD Match": "80%",}`,
			},
		},
		{
			name:  "fenced and labelled",
			input: "```json\n{\"JD Match\":\"60%\",\"MissingKeywords\":[],\"Profile Summary\":\"ok\"}\n```",
			expected: Result{
				JDMatch:         "60%",
				MissingKeywords: []string{},
				ProfileSummary:  "ok",
			},
		},
		{
			name:  "keywords split on semicolons and newlines",
			input: `{"JD Match":"40%","MissingKeywords":"Go; Rust\nTerraform","Profile Summary":""}`,
			expected: Result{
				JDMatch:         "40%",
				MissingKeywords: []string{"Go", "Rust", "Terraform"},
				ProfileSummary:  "",
			},
		},
		{
			name:  "empty input",
			input: "",
			expected: Result{
				JDMatch:         "0%",
				MissingKeywords: []string{},
				ProfileSummary:  "",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeText(tt.input))
		})
	}
}

func TestNormalize_ObjectFields(t *testing.T) {
	raw := json.RawMessage(`{"JD Match": 85, "MissingKeywords": ["Docker", "", "  "], "Profile Summary": "` + "```" + `good fit"}`)
	got := Normalize(raw)
	assert.Equal(t, "85", got.JDMatch)
	assert.Equal(t, []string{"Docker"}, got.MissingKeywords)
	assert.Equal(t, "good fit", got.ProfileSummary)
}

func TestNormalize_NonObjectValues(t *testing.T) {
	for _, raw := range []string{"", "null", "42", `[1,2]`, "true"} {
		got := Normalize(json.RawMessage(raw))
		assert.Equal(t, Result{JDMatch: "", MissingKeywords: []string{}, ProfileSummary: ""}, got, "raw=%q", raw)
	}
}

func TestNormalize_StringValueTakesTextPath(t *testing.T) {
	raw, err := json.Marshal("Here: {\"JD Match\":\"55%\",\"MissingKeywords\":\"AWS\",\"Profile Summary\":\"fine\"} thanks")
	require.NoError(t, err)
	got := Normalize(raw)
	assert.Equal(t, "55%", got.JDMatch)
	assert.Equal(t, []string{"AWS"}, got.MissingKeywords)
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Looks like a strong candidate overall.",
		`Sure! Here you go: {"JD Match":"72%","MissingKeywords":"Docker, Kubernetes","Profile Summary":"Solid backend skills."}`,
		`{"JD Match": "80%",}`,
		"```json\n{\"JD Match\":\"60%\",\"MissingKeywords\":[],\"Profile Summary\":\"ok\"}\n```",
		"",
	}
	for _, in := range inputs {
		once := NormalizeText(in)
		encoded, err := json.Marshal(once)
		require.NoError(t, err)
		twice := Normalize(encoded)
		assert.Equal(t, once, twice, "input=%q", in)
	}
}

func TestNormalize_CanonicalKeywordsSurviveRoundTrip(t *testing.T) {
	res := Result{JDMatch: "90%", MissingKeywords: []string{}, ProfileSummary: "ok"}
	encoded, err := json.Marshal(res)
	require.NoError(t, err)
	// Empty keyword lists must persist as [] so the round trip stays canonical.
	assert.Contains(t, string(encoded), `"MissingKeywords":[]`)
	assert.Equal(t, res, Normalize(encoded))
}

func TestCleanText(t *testing.T) {
	assert.Equal(t, "hello", CleanText("```json\nhello"))
	assert.Equal(t, "hello", CleanText("  `hello`  "))
	assert.Equal(t, "", CleanText("```"))
	assert.Equal(t, "x", CleanText("JSON x"))
}
