package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// ErrInvalidCorpus is wrapped by every integrity failure.
var ErrInvalidCorpus = errors.New("invalid corpus")

// ProblemKind classifies an integrity violation.
type ProblemKind string

const (
	ProblemEmptyID        ProblemKind = "empty_id"
	ProblemDuplicateID    ProblemKind = "duplicate_id"
	ProblemDanglingParent ProblemKind = "dangling_parent"
	ProblemCycle          ProblemKind = "cycle"
	ProblemMissingTitle   ProblemKind = "missing_title"
)

// Problem is a single integrity violation.
type Problem struct {
	TopicID string      `json:"topic_id"`
	Kind    ProblemKind `json:"kind"`
	Detail  string      `json:"detail"`
}

func (p Problem) String() string {
	return fmt.Sprintf("topic %q: %s (%s)", p.TopicID, p.Detail, p.Kind)
}

// IntegrityError lists every violation found while building a corpus.
type IntegrityError struct {
	Problems []Problem
}

func (e *IntegrityError) Error() string {
	lines := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		lines[i] = p.String()
	}
	return fmt.Sprintf("%v: %d problem(s):\n- %s", ErrInvalidCorpus, len(e.Problems), strings.Join(lines, "\n- "))
}

func (e *IntegrityError) Unwrap() error {
	return ErrInvalidCorpus
}

// Check reports every integrity violation in topics, in input order.
// An empty result means New will accept the slice.
func Check(topics []domain.Topic) []Problem {
	var problems []Problem
	byID := make(map[string]domain.Topic, len(topics))

	for _, t := range topics {
		if t.ID == "" {
			problems = append(problems, Problem{Kind: ProblemEmptyID, Detail: fmt.Sprintf("topic %q has no id", t.Title)})
			continue
		}
		if _, dup := byID[t.ID]; dup {
			problems = append(problems, Problem{TopicID: t.ID, Kind: ProblemDuplicateID, Detail: "id assigned twice"})
			continue
		}
		byID[t.ID] = t
	}

	for _, t := range topics {
		if t.ID == "" {
			continue
		}
		if strings.TrimSpace(t.Title) == "" {
			problems = append(problems, Problem{TopicID: t.ID, Kind: ProblemMissingTitle, Detail: "title is empty"})
		}
		if t.CategoryID == "" {
			continue
		}
		if _, ok := byID[t.CategoryID]; !ok {
			problems = append(problems, Problem{
				TopicID: t.ID,
				Kind:    ProblemDanglingParent,
				Detail:  fmt.Sprintf("category %q does not exist", t.CategoryID),
			})
		}
	}

	// Parent pointers form a functional graph: walking up from every node and
	// meeting a node of the current walk again means a cycle.
	const (
		unvisited = iota
		walking
		done
	)
	state := make(map[string]int, len(byID))
	for _, t := range topics {
		var walk []string
		cur := t.ID
		for cur != "" && state[cur] == unvisited {
			state[cur] = walking
			walk = append(walk, cur)
			node, ok := byID[cur]
			if !ok {
				cur = ""
				break
			}
			cur = node.CategoryID
		}
		if cur != "" && state[cur] == walking {
			problems = append(problems, Problem{
				TopicID: cur,
				Kind:    ProblemCycle,
				Detail:  "topic is its own ancestor",
			})
		}
		for _, id := range walk {
			state[id] = done
		}
	}

	return problems
}
