package installer

import "github.com/ImSingee/go-ex/ee"

type ParseError struct {
	Filename string
	Reason   string
}

func (e *ParseError) Error() string {
	return "cannot parse installer filename " + e.Filename + ": " + e.Reason
}

func IsParseError(err error) bool {
	var pe *ParseError
	return ee.As(err, &pe)
}
