package extraction

import "strings"

// resumeMarker separates the instructions from the resume text.
const resumeMarker = "--- RESUME TEXT ---"

const instructions = `You are an expert resume parser. Extract the information listed below from the resume text at the end of this message and return it as structured JSON.

Fields to extract:
- Name
- phoneNumber
- email
- address
- github
- linkedin
- skills (a list of strings)
- education (a list of objects, each with degree, institution, year and percentage)
- experience (a list of objects, each with company, designation, duration and location)
- certifications (a list of strings)

Return ONLY a valid JSON object with exactly the structure below. When a field is not present in the resume use an empty string "" for single values and an empty list [] for lists. Do not invent any information.

{
  "Name": "",
  "phoneNumber": "",
  "email": "",
  "address": "",
  "github": "",
  "linkedin": "",
  "skills": [],
  "education": [
    {
      "degree": "",
      "institution": "",
      "year": "",
      "percentage": ""
    }
  ],
  "experience": [
    {
      "company": "",
      "designation": "",
      "duration": "",
      "location": ""
    }
  ],
  "certifications": []
}
`

// BuildPrompt embeds resumeText verbatim after the fixed instructions.
func BuildPrompt(resumeText string) string {
	var sb strings.Builder
	sb.Grow(len(instructions) + len(resumeMarker) + len(resumeText) + 2)
	sb.WriteString(instructions)
	sb.WriteString("\n")
	sb.WriteString(resumeMarker)
	sb.WriteString("\n")
	sb.WriteString(resumeText)
	return sb.String()
}
