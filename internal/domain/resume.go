package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// ParseResumeRequest is the body of POST /parse-resume
type ParseResumeRequest struct {
	ResumeText string `json:"resume_text" example:"Jane Doe\njane@example.com\nSkills: Go, SQL"`
}

// ResumeExtraction is the structured record returned for every parse request.
// Every key is always present; absent values are "" or [].
type ResumeExtraction struct {
	Name           Text         `json:"Name"`
	PhoneNumber    Text         `json:"phoneNumber"`
	Email          Text         `json:"email"`
	Address        Text         `json:"address"`
	Github         Text         `json:"github"`
	Linkedin       Text         `json:"linkedin"`
	Skills         TextList     `json:"skills"`
	Education      []Education  `json:"education"`
	Experience     []Experience `json:"experience"`
	Certifications TextList     `json:"certifications"`
}

type Education struct {
	Degree      Text `json:"degree"`
	Institution Text `json:"institution"`
	Year        Text `json:"year"`
	Percentage  Text `json:"percentage"`
}

type Experience struct {
	Company     Text `json:"company"`
	Designation Text `json:"designation"`
	Duration    Text `json:"duration"`
	Location    Text `json:"location"`
}

// BlankExtraction is the fallback returned whenever extraction cannot be
// performed. Education and experience carry one empty placeholder entry.
func BlankExtraction() *ResumeExtraction {
	r := &ResumeExtraction{}
	r.Normalize()
	return r
}

// Normalize fills every list with a non-nil value and substitutes a single
// empty entry for an empty education or experience list.
func (r *ResumeExtraction) Normalize() {
	if r.Skills == nil {
		r.Skills = TextList{}
	}
	if r.Certifications == nil {
		r.Certifications = TextList{}
	}
	if len(r.Education) == 0 {
		r.Education = []Education{{}}
	}
	if len(r.Experience) == 0 {
		r.Experience = []Experience{{}}
	}
}

// ResumeUsecase never fails: failures are logged and turned into the blank
// extraction.
type ResumeUsecase interface {
	ParseResume(ctx context.Context, resumeText string) *ResumeExtraction
}

// ResumeExtractor turns resume text into a normalized extraction.
type ResumeExtractor interface {
	Extract(ctx context.Context, resumeText string) (*ResumeExtraction, error)
}

// Completer is the remote completion API. Complete returns the raw text of the
// first completion choice.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Text is a string that also accepts JSON numbers and booleans (kept as their
// literal text) and null (decoded as "").
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case '{', '[':
		return fmt.Errorf("expected a scalar value, got %s", data[:1])
	default:
		*t = Text(data)
	}
	return nil
}

// TextList is a list of Text that drops null entries and encodes nil as [].
type TextList []Text

func (l *TextList) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*l = TextList{}
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(TextList, 0, len(raw))
	for _, item := range raw {
		if bytes.Equal(bytes.TrimSpace(item), []byte("null")) {
			continue
		}
		var t Text
		if err := t.UnmarshalJSON(item); err != nil {
			return err
		}
		out = append(out, t)
	}
	*l = out
	return nil
}

func (l TextList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Text(l))
}
