package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/helpcenter/pkg/domain"
)

// Forest is the read-only view of the corpus the exporter needs.
type Forest interface {
	Topics() []domain.Topic
	Children(id string) []domain.Topic
	Path(id string) []domain.Topic
}

// GraphOverlay marks a topic and its breadcrumb on the chart.
type GraphOverlay struct {
	CurrentTopic string
}

// GenerateMermaid produces a Mermaid flowchart of the topic forest.
// It applies semantic styling:
// - Home: ((Circle)), the entry listing every root
// - Category (has children): [/Parallelogram/]
// - Leaf: [Rectangle]
// Edges follow sibling order, so the chart reads like the select menus.
func GenerateMermaid(f Forest, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString("    home((\"Home\"))\n")

	for _, t := range f.Topics() {
		opener, closer := "[", "]"
		if len(f.Children(t.ID)) > 0 {
			opener, closer = "[/", "/]"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", nodeID(t.ID), opener, escapeLabel(t.Title), closer)
	}

	for _, t := range f.Children("") {
		fmt.Fprintf(&sb, "    home --> %s\n", nodeID(t.ID))
	}
	for _, t := range f.Topics() {
		for _, c := range f.Children(t.ID) {
			fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(t.ID), nodeID(c.ID))
		}
	}

	if overlay != nil && overlay.CurrentTopic != "" {
		path := f.Path(overlay.CurrentTopic)
		if len(path) > 0 {
			sb.WriteString("\n    %% Overlay Styles\n")
			// Force black text (color:#000) for high-contrast regardless of theme (Light/Dark)
			sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
			sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
			sb.WriteString("    class home visited;\n")
			for _, p := range path[:len(path)-1] {
				fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(p.ID))
			}
			fmt.Fprintf(&sb, "    class %s current;\n", nodeID(overlay.CurrentTopic))
		}
	}

	return sb.String()
}

// nodeID prefixes ids so numeric ids and "home" never collide.
func nodeID(id string) string {
	s := strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_", " ", "_").Replace(id)
	return "t_" + s
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
