package models

import (
	"fmt"
	"strings"
)

// GenerateRequest holds the role parameters collected by the form
type GenerateRequest struct {
	RoleTitle        string   `json:"role_title"`
	Level            string   `json:"level"`
	Department       string   `json:"department"`
	InterviewType    string   `json:"interview_type"`
	DurationMins     int      `json:"duration_mins"`
	Competencies     []string `json:"competencies"`
	NumCore          int      `json:"num_core"`
	NumTechnical     int      `json:"num_technical"`
	NumCompetency    int      `json:"num_competency"`
	IncludeFollowups bool     `json:"include_followups"`
	IncludeGood      bool     `json:"include_good_looks_like"`
	IncludeScoring   bool     `json:"include_scoring"`
	HouseGuidance    string   `json:"house_guidance"`
	Language         string   `json:"language"`
	Jurisdiction     string   `json:"jurisdiction"`
	JDContext        string   `json:"jd_context,omitempty"`
	TenantName       string   `json:"tenant_name,omitempty"`
	ClientLogoURL    string   `json:"client_logo_url,omitempty"`
}

// Question is a single interview question with optional coaching fields
type Question struct {
	Question  string   `json:"question"`
	Intent    string   `json:"intent,omitempty"`
	Followups []string `json:"followups,omitempty"`
	Good      string   `json:"good,omitempty"` // "what good looks like"
}

// Section is a named grouping of questions and/or bullets within a pack
type Section struct {
	Name      string     `json:"name"`
	Notes     string     `json:"notes,omitempty"`
	Bullets   []string   `json:"bullets,omitempty"`
	Questions []Question `json:"questions,omitempty"`
}

// Pack is a generated interview question set plus metadata, independent
// of output format. It lives in memory for the duration of one
// generate/export interaction and is never persisted.
type Pack struct {
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Inputs       GenerateRequest `json:"inputs"`
	Housekeeping []string        `json:"housekeeping,omitempty"`
	Sections     []Section       `json:"sections"`
}

// GenerateResponse is the payload returned after a generation request
type GenerateResponse struct {
	PackID      string   `json:"pack_id"`
	Pack        Pack     `json:"pack"`
	HTMLPreview string   `json:"html_preview"`
	Warnings    []string `json:"warnings,omitempty"`
}

// MaxRenderedFollowups caps how many follow-up prompts any renderer emits
// for a single question
const MaxRenderedFollowups = 6

// RenderedFollowups returns the follow-ups capped for rendering
func (q Question) RenderedFollowups() []string {
	if len(q.Followups) <= MaxRenderedFollowups {
		return q.Followups
	}
	return q.Followups[:MaxRenderedFollowups]
}

// FollowupLine joins the capped follow-ups into one renderable value
func (q Question) FollowupLine() string {
	return strings.Join(q.RenderedFollowups(), ", ")
}

// DisplayName returns the section name, defaulting when the upstream
// response left it blank
func (s Section) DisplayName() string {
	if strings.TrimSpace(s.Name) == "" {
		return "Section"
	}
	return s.Name
}

// MetaLine is the subtitle rendered under the pack title
func (p Pack) MetaLine() string {
	return fmt.Sprintf("Interview type: %s · Duration: %d mins", p.Inputs.InterviewType, p.Inputs.DurationMins)
}

// QuestionCount returns the total number of questions across all sections
func (p Pack) QuestionCount() int {
	n := 0
	for _, sec := range p.Sections {
		n += len(sec.Questions)
	}
	return n
}
