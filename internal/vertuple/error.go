package vertuple

import "github.com/ImSingee/go-ex/ee"

type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return "invalid version " + e.Input + ": " + e.Reason
}

func IsParseError(err error) bool {
	var pe *ParseError
	return ee.As(err, &pe)
}
