package commands

import (
	"fmt"

	"github.com/allisson/gatekeeper/internal/gatekeeper/domain"
	"github.com/allisson/gatekeeper/internal/gatekeeper/usecase"
)

type operationList struct {
	Catalog string   `json:"catalog"`
	Read    []string `json:"read,omitempty"`
	Write   []string `json:"write,omitempty"`
}

// RunListOperations prints the catalog's read and/or write sets. kind is "read",
// "write" or empty for both.
func RunListOperations(guard usecase.GatekeeperUseCase, kind string, format string, io IOTuple) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	list := operationList{Catalog: guard.CatalogName()}
	switch domain.Kind(kind) {
	case "":
		list.Read = guard.ReadOperations()
		list.Write = guard.WriteOperations()
	case domain.KindRead:
		list.Read = guard.ReadOperations()
	case domain.KindWrite:
		list.Write = guard.WriteOperations()
	default:
		return fmt.Errorf("invalid kind: %s (valid options: read, write)", kind)
	}

	if format == formatJSON {
		return writeJSON(io.Writer, list)
	}

	_, _ = fmt.Fprintf(io.Writer, "Catalog: %s\n", list.Catalog)
	if list.Read != nil {
		_, _ = fmt.Fprintf(io.Writer, "\nRead operations (%d, allowed):\n", len(list.Read))
		for _, op := range list.Read {
			_, _ = fmt.Fprintf(io.Writer, "  %s\n", op)
		}
	}
	if list.Write != nil {
		_, _ = fmt.Fprintf(io.Writer, "\nWrite operations (%d, blocked):\n", len(list.Write))
		for _, op := range list.Write {
			_, _ = fmt.Fprintf(io.Writer, "  %s\n", op)
		}
	}
	return nil
}
