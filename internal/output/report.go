package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/cmdchess-go/internal/worker"
)

// WriteReports writes one line per verified log, then a count of the
// logs rejected. It returns the number rejected.
func WriteReports(w io.Writer, reports []worker.Report) (int, error) {
	rejected := 0
	for _, r := range reports {
		var err error
		if r.Err != nil {
			rejected++
			_, err = fmt.Fprintf(w, "%s: rejected after %d plies: %v\n", r.Path, r.Plies, r.Err)
		} else if r.DuplicateOf != "" {
			_, err = fmt.Fprintf(w, "%s: %d plies, %s %s, duplicate of %s\n", r.Path, r.Plies, r.Status, r.Result, r.DuplicateOf)
		} else {
			_, err = fmt.Fprintf(w, "%s: %d plies, %s %s\n", r.Path, r.Plies, r.Status, r.Result)
		}
		if err != nil {
			return rejected, err
		}
	}
	_, err := fmt.Fprintf(w, "%d of %d logs verified\n", len(reports)-rejected, len(reports))
	return rejected, err
}
