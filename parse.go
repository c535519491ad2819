package modinv

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseOperand parses a base 10 unsigned integer that fits in a uint64.
// Signs and surrounding whitespace are not permitted.
func ParseOperand(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing operand %q", s)
	}
	return v, nil
}

// ParseExpr parses an expression of the form "A mod B" or "A % B", where A
// and B are accepted by ParseOperand. The keyword is case-insensitive and the
// three parts must be separated by whitespace.
func ParseExpr(s string) (a, b uint64, err error) {
	parts := strings.Fields(s)
	if len(parts) != 3 {
		return 0, 0, ErrFmtInvalid
	}
	if op := parts[1]; op != "%" && !strings.EqualFold(op, "mod") {
		return 0, 0, ErrFmtInvalid
	}
	if a, err = ParseOperand(parts[0]); err != nil {
		return 0, 0, err
	}
	if b, err = ParseOperand(parts[2]); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
