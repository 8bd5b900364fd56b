package migration

import (
	"strings"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

// HandlerPair names the metadata and binarydata handlers on one side of a
// migration.
type HandlerPair struct {
	Metadata   string `json:"metadata"`
	Binarydata string `json:"binarydata"`
}

func (p HandlerPair) String() string {
	return p.Metadata + "," + p.Binarydata
}

// ParseHandlerPair reads the "metadata,binarydata" form used on the command
// line. A single identifier names both handlers.
func ParseHandlerPair(value string) (HandlerPair, error) {
	parts := strings.Split(value, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	switch {
	case len(parts) == 1 && parts[0] != "":
		return HandlerPair{Metadata: parts[0], Binarydata: parts[0]}, nil
	case len(parts) == 2 && parts[0] != "" && parts[1] != "":
		return HandlerPair{Metadata: parts[0], Binarydata: parts[1]}, nil
	default:
		return HandlerPair{}, domain.InvalidArgumentError{
			Argument: value,
			Reason:   "expected <metadata handler>,<binarydata handler>",
		}
	}
}
