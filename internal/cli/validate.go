package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/aretw0/helpcenter/internal/validator"
	"github.com/aretw0/helpcenter/pkg/adapters/dir"
)

// Validate loads the descriptor tree and prints every finding.
// It fails when the tree cannot be compiled or a finding is an error.
func Validate(ctx context.Context, topics string, w io.Writer, asJSON bool) error {
	c, err := dir.NewFromDir(topics).Load(ctx)
	if err != nil {
		return err
	}
	report := validator.ValidateCorpus(c)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	} else {
		for _, f := range report.Findings {
			fmt.Fprintln(w, f.String())
		}
		fmt.Fprintf(w, "%d topics, %d findings\n", c.Len(), len(report.Findings))
	}
	return report.Err()
}
