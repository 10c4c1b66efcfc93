package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If all errors are nil, nil is returned. A single non nil error is returned
// as it is.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		// Flatten so that Unpack always returns a flat list.
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type multiErr []error

func (errs multiErr) Error() string {
	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n", len(errs), strings.Join(points, "\n\t"))
}

// Code returns the code of the first error, consistent with a fail fast
// approach.
func (errs multiErr) Code() uint32 {
	return Code(errs[0])
}

// Unpack implements unpacker interface.
func (errs multiErr) Unpack() []error {
	return errs
}

// unpacker is implemented by errors that are a collection of errors.
type unpacker interface {
	Unpack() []error
}
