package codec

import (
	"github.com/krotik/vertexdb/errs"
	"github.com/krotik/vertexdb/model"
)

func codecKindMismatch(want, got model.Kind) error {
	return errs.Codecf("unknown or unexpected kind byte: want %#x, got %#x", byte(want), byte(got))
}
