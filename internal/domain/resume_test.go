package domain_test

import (
	"encoding/json"
	"testing"

	"resume-parser-api/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blankJSON = `{
	"Name": "", "phoneNumber": "", "email": "", "address": "", "github": "", "linkedin": "",
	"skills": [],
	"education": [{"degree": "", "institution": "", "year": "", "percentage": ""}],
	"experience": [{"company": "", "designation": "", "duration": "", "location": ""}],
	"certifications": []
}`

func TestBlankExtractionShape(t *testing.T) {
	out, err := json.Marshal(domain.BlankExtraction())
	require.NoError(t, err)
	assert.JSONEq(t, blankJSON, string(out))
}

func TestNormalize(t *testing.T) {
	t.Run("Should substitute placeholder entries for empty lists", func(t *testing.T) {
		r := &domain.ResumeExtraction{Education: []domain.Education{}, Experience: []domain.Experience{}}
		r.Normalize()

		require.Len(t, r.Education, 1)
		require.Len(t, r.Experience, 1)
		assert.Equal(t, domain.Education{}, r.Education[0])
		assert.Equal(t, domain.Experience{}, r.Experience[0])
		assert.NotNil(t, r.Skills)
		assert.NotNil(t, r.Certifications)
	})

	t.Run("Should keep populated lists untouched", func(t *testing.T) {
		r := &domain.ResumeExtraction{
			Education:  []domain.Education{{Degree: "BSc"}, {Degree: "MSc"}},
			Experience: []domain.Experience{{Company: "Acme"}},
			Skills:     domain.TextList{"Go"},
		}
		r.Normalize()

		assert.Len(t, r.Education, 2)
		assert.Equal(t, domain.Text("Acme"), r.Experience[0].Company)
		assert.Equal(t, domain.TextList{"Go"}, r.Skills)
	})
}

func TestTextUnmarshal(t *testing.T) {
	var r domain.ResumeExtraction
	err := json.Unmarshal([]byte(`{
		"name": "Jane Doe",
		"phoneNumber": 5551234,
		"email": null,
		"github": true,
		"education": [{"degree": "BSc", "year": 2020, "percentage": 87.5}, null]
	}`), &r)
	require.NoError(t, err)

	assert.Equal(t, domain.Text("Jane Doe"), r.Name)
	assert.Equal(t, domain.Text("5551234"), r.PhoneNumber)
	assert.Equal(t, domain.Text(""), r.Email)
	assert.Equal(t, domain.Text("true"), r.Github)
	require.Len(t, r.Education, 2)
	assert.Equal(t, domain.Text("2020"), r.Education[0].Year)
	assert.Equal(t, domain.Text("87.5"), r.Education[0].Percentage)
	assert.Equal(t, domain.Education{}, r.Education[1])
}

func TestTextRejectsObjects(t *testing.T) {
	var r domain.ResumeExtraction
	err := json.Unmarshal([]byte(`{"Name": {"first": "Jane"}}`), &r)
	assert.Error(t, err)
}

func TestTextList(t *testing.T) {
	t.Run("Should drop null entries", func(t *testing.T) {
		var l domain.TextList
		require.NoError(t, json.Unmarshal([]byte(`["Go", null, 3]`), &l))
		assert.Equal(t, domain.TextList{"Go", "3"}, l)
	})

	t.Run("Should decode null as empty list", func(t *testing.T) {
		var r domain.ResumeExtraction
		require.NoError(t, json.Unmarshal([]byte(`{"skills": null}`), &r))
		assert.NotNil(t, r.Skills)
		assert.Empty(t, r.Skills)
	})

	t.Run("Should encode nil as empty array", func(t *testing.T) {
		out, err := json.Marshal(struct {
			Skills domain.TextList `json:"skills"`
		}{})
		require.NoError(t, err)
		assert.JSONEq(t, `{"skills": []}`, string(out))
	})
}
