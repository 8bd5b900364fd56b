package migration

import (
	"reflect"

	"github.com/asecurityteam/iomigrate/pkg/domain"
)

// sameBinarydata reports whether both handlers read and write the same
// stored content, either because they are the same instance or because
// they share their storage.
func sameBinarydata(a domain.BinarydataHandler, b domain.BinarydataHandler) bool {
	if a == nil || b == nil {
		return false
	}
	ta := reflect.TypeOf(a)
	if ta == reflect.TypeOf(b) && ta.Comparable() && a == b {
		return true
	}
	if s, ok := a.(domain.SharedStorage); ok && s.SharesStorageWith(b) {
		return true
	}
	return false
}

func validatePairs(from HandlerPair, to HandlerPair) error {
	if from.Metadata == "" || from.Binarydata == "" || to.Metadata == "" || to.Binarydata == "" {
		return domain.InvalidArgumentError{Argument: "from/to", Reason: "both handler pairs must name a metadata and a binarydata handler"}
	}
	if from == to {
		return domain.InvalidArgumentError{Argument: "from/to", Reason: "from and to handlers are the same"}
	}
	return nil
}

// checkPairing rejects a destination whose metadata handler cannot describe
// the content written by its binarydata handler.
func checkPairing(to HandlerPair, meta domain.MetadataHandler, bin domain.BinarydataHandler) error {
	if bound, ok := meta.(domain.BinarydataBound); ok && !bound.ReadsFrom(bin) {
		return domain.InvalidArgumentError{
			Argument: "to",
			Reason:   "metadata handler " + to.Metadata + " only reads files stored by its own binarydata handler, not " + to.Binarydata,
		}
	}
	return nil
}
