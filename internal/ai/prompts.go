package ai

import (
	"fmt"
	"strings"
)

// FieldKind selects the prompt used to rewrite a piece of CV text.
type FieldKind string

const (
	FieldWorkExperience FieldKind = "work_experience"
	FieldEducation      FieldKind = "education"
	FieldProject        FieldKind = "project"
	FieldSummary        FieldKind = "summary"
	FieldGeneric        FieldKind = "generic"
)

// ParseFieldKind maps a client supplied field type to a FieldKind. Unknown values fall back to FieldGeneric.
func ParseFieldKind(s string) FieldKind {
	switch k := FieldKind(strings.ToLower(strings.TrimSpace(s))); k {
	case FieldWorkExperience, FieldEducation, FieldProject, FieldSummary:
		return k
	default:
		return FieldGeneric
	}
}

// PromptContext is optional background passed along with the text.
type PromptContext struct {
	Position string
	Company  string
	Duration string
}

// ContextFromMap reads the known keys of a loosely typed context object.
func ContextFromMap(m map[string]string) PromptContext {
	return PromptContext{
		Position: strings.TrimSpace(m["position"]),
		Company:  strings.TrimSpace(m["company"]),
		Duration: strings.TrimSpace(m["duration"]),
	}
}

func (c PromptContext) String() string {
	var parts []string
	if c.Position != "" {
		parts = append(parts, "Position: "+c.Position)
	}
	if c.Company != "" {
		parts = append(parts, "Company/Institution: "+c.Company)
	}
	if c.Duration != "" {
		parts = append(parts, "Duration: "+c.Duration)
	}
	if len(parts) == 0 {
		return "No additional context"
	}
	return strings.Join(parts, "\n")
}

type template struct {
	intro        string
	withContext  bool
	requirements []string
	closing      string
}

var templates = map[FieldKind]template{
	FieldWorkExperience: {
		intro:       "Optimize this work experience description to make it more impactful and achievement-oriented.",
		withContext: true,
		requirements: []string{
			"Use strong action verbs (led, architected, implemented, drove)",
			"Quantify achievements with metrics where possible (%, numbers, scale)",
			"Focus on impact and results, not just responsibilities",
			"Format as 3-5 concise bullet points",
			"Use a professional tone",
			"Keep it truthful: do not invent facts, enhance what is there",
		},
		closing: "Return ONLY the optimized bullet points, one per line, starting with •",
	},
	FieldEducation: {
		intro:       "Optimize this education description to highlight academic achievements and relevant activities.",
		withContext: true,
		requirements: []string{
			"Highlight academic achievements, honors and awards",
			"Mention relevant coursework, projects or research",
			"Include leadership roles, clubs or activities if mentioned",
			"Format as 2-4 concise bullet points",
			"Use a professional tone",
			"Keep it truthful",
		},
		closing: "Return ONLY the optimized bullet points, one per line, starting with •",
	},
	FieldProject: {
		intro:       "Optimize this project description to showcase technical skills and impact.",
		withContext: true,
		requirements: []string{
			"Highlight technical skills and technologies used",
			"Emphasize the problem solved and its impact",
			"Mention scale, users or metrics if applicable",
			"Format as 2-4 concise bullet points",
			"Use a professional tone",
			"Keep it truthful",
		},
		closing: "Return ONLY the optimized bullet points, one per line, starting with •",
	},
	FieldSummary: {
		intro: "Create a compelling professional summary based on this text.",
		requirements: []string{
			"3-4 sentences maximum",
			"Highlight key strengths, experience and value proposition",
			"Use a professional, confident tone",
			"Keep it truthful and based on the provided information",
		},
		closing: "Return ONLY the optimized professional summary as a single paragraph.",
	},
	FieldGeneric: {
		intro:   "Improve this CV text to be more professional and impactful.",
		closing: "Return the improved version, keeping the same general format.",
	},
}

// Render builds the prompt for text.
func (k FieldKind) Render(text string, pc PromptContext) string {
	tpl, ok := templates[k]
	if !ok {
		tpl = templates[FieldGeneric]
	}

	var b strings.Builder
	b.WriteString("You are a professional CV writer. ")
	b.WriteString(tpl.intro)
	b.WriteString("\n\n")
	if tpl.withContext {
		b.WriteString(pc.String())
		b.WriteString("\n\n")
	}
	b.WriteString("Original text:\n")
	b.WriteString(text)
	b.WriteString("\n\n")
	if len(tpl.requirements) > 0 {
		b.WriteString("Requirements:\n")
		for _, r := range tpl.requirements {
			b.WriteString("- ")
			b.WriteString(r)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(tpl.closing)
	return b.String()
}

// SummaryInput is the slice of a CV used to draft a summary.
type SummaryInput struct {
	Experiences []string // "Position at Company"
	Educations  []string // "Degree from Institution"
	Skills      []string
}

// SummaryPrompt asks for a third person summary in the given tone.
func SummaryPrompt(in SummaryInput, tone string) string {
	if tone == "" {
		tone = "professional"
	}
	return fmt.Sprintf(`You are a professional CV writer. Generate a compelling professional summary for this candidate.

Work Experience:
%s

Education:
%s

Key Skills:
%s

Requirements:
- Create a %s professional summary
- 3-4 sentences maximum
- Highlight years of experience, key expertise and value proposition
- Make it achievement-oriented
- Use third-person perspective ("Experienced software engineer..." not "I am...")

Return ONLY the professional summary as a single paragraph.`,
		bulletsOrNone(in.Experiences), bulletsOrNone(in.Educations), joinOrNone(in.Skills), tone)
}

// ScorePrompt asks for a JSON assessment of the serialized CV.
func ScorePrompt(cvJSON string) string {
	return `You are an experienced recruiter. Assess the CV below and answer with a single JSON object and nothing else:
{"overall": 0-100, "impact_achievement_density": 0-100, "clarity_readability": 0-100, "action_verb_strength": 0-100, "professionalism": 0-100, "feedback": ["short actionable suggestion", ...]}

CV:
` + cvJSON
}

func bulletsOrNone(items []string) string {
	if len(items) == 0 {
		return "Not provided"
	}
	return "- " + strings.Join(items, "\n- ")
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "Not provided"
	}
	return strings.Join(items, ", ")
}
