package ats

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/tidwall/gjson"
)

// Result is the canonical scorer output. The JSON keys are exactly the
// keys the scorer is prompted to return, so a persisted Result re-enters
// Normalize on the object path and comes back unchanged.
type Result struct {
	JDMatch         string   `json:"JD Match"`
	MissingKeywords []string `json:"MissingKeywords"`
	ProfileSummary  string   `json:"Profile Summary"`
}

var (
	jsonLabelRe  = regexp.MustCompile(`(?i)^\s*json\s*`)
	keywordSepRe = regexp.MustCompile(`[;,\n]`)
)

// CleanText strips code-fence artifacts the scorer tends to wrap its
// answers in: backticks anywhere, plus a leading "json" language label.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "`", "")
	s = strings.TrimSpace(s)
	s = jsonLabelRe.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Normalize converts a stored ats_result value into the canonical Result.
// It never fails: absent, malformed and non-object values all degrade to a
// well-formed shape. Normalizing an already-canonical Result returns it
// unchanged, which is what lets the export path re-run it on every save.
func Normalize(raw json.RawMessage) Result {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return fromObject(gjson.Result{})
	}
	parsed := gjson.Parse(trimmed)
	if parsed.Type == gjson.String {
		return NormalizeText(parsed.String())
	}
	if parsed.IsObject() {
		return fromObject(parsed)
	}
	// Numbers, arrays, booleans: nothing to extract fields from.
	return fromObject(gjson.Result{})
}

// NormalizeText handles raw scorer text: well-formed JSON, JSON buried in
// prose, or plain prose. The brace scan is deliberately greedy (first "{"
// to last "}") to match typical "talk then JSON" output; it is not a
// balanced-bracket parse.
func NormalizeText(s string) Result {
	text := CleanText(s)
	if start := strings.Index(text, "{"); start >= 0 {
		if end := strings.LastIndex(text, "}"); end > start {
			candidate := text[start : end+1]
			if gjson.Valid(candidate) {
				return fromObject(gjson.Parse(candidate))
			}
		}
	}
	return Result{
		JDMatch:         "0%",
		MissingKeywords: []string{},
		ProfileSummary:  CleanText(text),
	}
}

func fromObject(obj gjson.Result) Result {
	return Result{
		JDMatch:         CleanText(stringify(obj.Get("JD Match"))),
		MissingKeywords: keywords(obj.Get("MissingKeywords")),
		ProfileSummary:  CleanText(stringify(obj.Get("Profile Summary"))),
	}
}

// stringify mirrors the field-extraction rule: strings pass through,
// anything else non-null is taken as its raw JSON text.
func stringify(v gjson.Result) string {
	switch {
	case !v.Exists(), v.Type == gjson.Null:
		return ""
	case v.Type == gjson.String:
		return v.String()
	default:
		return v.Raw
	}
}

func keywords(v gjson.Result) []string {
	out := []string{}
	switch {
	case !v.Exists(), v.Type == gjson.Null:
	case v.Type == gjson.String:
		for _, p := range keywordSepRe.Split(v.String(), -1) {
			if c := CleanText(p); c != "" {
				out = append(out, c)
			}
		}
	case v.IsArray():
		for _, e := range v.Array() {
			if c := CleanText(stringify(e)); c != "" {
				out = append(out, c)
			}
		}
	default:
		if c := CleanText(stringify(v)); c != "" {
			out = append(out, c)
		}
	}
	return out
}
