package window

import (
	"github.com/skratchdot/open-golang/open"
)

// Opener shows a URL or file to the user.
type Opener interface {
	Open(target string) error
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(target string) error

// Open calls f(target).
func (f OpenerFunc) Open(target string) error {
	return f(target)
}

// SystemOpener opens targets with the OS default application.
var SystemOpener Opener = OpenerFunc(open.Run)
