package codec

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"omegraph/internal/domain"
)

// ErrUnknownFormat is returned for an export format with no codec
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter interface for exporting graph data to various formats
type Exporter interface {
	Export(graph *domain.Graph, w io.Writer) error
	Format() string
}

var exporters = map[string]func() Exporter{
	"json":    func() Exporter { return NewJSONCodec() },
	"yaml":    func() Exporter { return NewYAMLCodec() },
	"msgpack": func() Exporter { return NewMsgpackCodec() },
}

// ForFormat returns the exporter registered for format. "yml" is accepted
// as an alias of "yaml".
func ForFormat(format string) (Exporter, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "yml" {
		f = "yaml"
	}
	newExporter, ok := exporters[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownFormat, format, strings.Join(Formats(), ", "))
	}
	return newExporter(), nil
}

// Formats lists the registered format names
func Formats() []string {
	out := make([]string, 0, len(exporters))
	for f := range exporters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
