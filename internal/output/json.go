// Package output writes task lists for non-interactive consumers.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/tasklist/internal/model"
)

// WriteJSON writes tasks as indented JSON followed by a newline.
func WriteJSON(w io.Writer, tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
