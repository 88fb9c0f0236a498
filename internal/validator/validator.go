package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/aretw0/helpcenter/internal/runtime"
	"github.com/aretw0/helpcenter/pkg/corpus"
	"github.com/aretw0/helpcenter/pkg/domain"
)

// Chat clients reject messages beyond these limits.
const (
	MaxSelectOptions  = 25
	MaxActionRows     = 5
	MaxButtonLabel    = 80
	MaxOptionLabel    = 100
	MaxEmbedBodyRunes = 4096
)

// Severity ranks a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one issue detected in a loaded corpus.
type Finding struct {
	TopicID  string   `json:"topic_id,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	if f.TopicID == "" {
		return fmt.Sprintf("[%s] %s", f.Severity, f.Message)
	}
	return fmt.Sprintf("[%s] topic %s: %s", f.Severity, f.TopicID, f.Message)
}

// Report collects the findings of a validation run.
type Report struct {
	Findings []Finding `json:"findings"`
}

// HasErrors reports whether any finding would break rendering.
func (r Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Err summarizes error findings, or returns nil when there are none.
func (r Report) Err() error {
	var lines []string
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			lines = append(lines, f.String())
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return fmt.Errorf("found %d errors:\n- %s", len(lines), strings.Join(lines, "\n- "))
}

func (r *Report) add(id string, sev Severity, format string, args ...any) {
	r.Findings = append(r.Findings, Finding{TopicID: id, Severity: sev, Message: fmt.Sprintf(format, args...)})
}

// ValidateCorpus checks that every view of c can be delivered by a chat client.
// Structural integrity is already guaranteed by corpus.New; this pass looks
// at rendered sizes and authoring mistakes.
func ValidateCorpus(c *corpus.Corpus) Report {
	var r Report

	if c.Len() == 0 {
		r.add("", SeverityWarning, "corpus has no topics")
		return r
	}
	if n := len(c.Roots()); n > MaxSelectOptions {
		r.add("", SeverityError, "root listing has %d topics, a select menu holds at most %d", n, MaxSelectOptions)
	}
	checkSiblings(&r, "", c.Roots())

	for _, t := range c.Topics() {
		children := c.Children(t.ID)
		if n := len(children); n > MaxSelectOptions {
			r.add(t.ID, SeverityError, "%d children, a select menu holds at most %d", n, MaxSelectOptions)
		}
		checkSiblings(&r, t.ID, children)

		if t.Body == "" && len(children) == 0 {
			r.add(t.ID, SeverityWarning, "category %q has no topics", t.Title)
		}
		if n := utf8.RuneCountInString(t.Body); n > MaxEmbedBodyRunes {
			r.add(t.ID, SeverityError, "body is %d characters, at most %d are shown", n, MaxEmbedBodyRunes)
		}
		for _, l := range t.Links {
			if utf8.RuneCountInString(l.Name) > MaxButtonLabel {
				r.add(t.ID, SeverityError, "link %q exceeds %d characters", l.Name, MaxButtonLabel)
			}
		}

		rows := len(runtime.Compose(c, runtime.TopicView(t), runtime.InPlace, false, runtime.DefaultTheme()).Components)
		if rows > MaxActionRows {
			r.add(t.ID, SeverityError, "view needs %d component rows, at most %d are allowed", rows, MaxActionRows)
		}
	}
	return r
}

func checkSiblings(r *Report, parentID string, siblings []domain.Topic) {
	seen := make(map[string]string, len(siblings))
	for _, t := range siblings {
		if utf8.RuneCountInString(t.Title) > MaxOptionLabel {
			r.add(t.ID, SeverityError, "title exceeds %d characters", MaxOptionLabel)
		}
		key := strings.ToLower(strings.TrimSpace(t.Title))
		if prev, dup := seen[key]; dup {
			where := "root listing"
			if parentID != "" {
				where = "category " + parentID
			}
			r.add(t.ID, SeverityWarning, "title %q duplicates topic %s in the %s", t.Title, prev, where)
			continue
		}
		seen[key] = t.ID
	}
}
