// SPDX-License-Identifier: Unlicense OR MIT

//go:build ((linux && !android) || freebsd || openbsd) && !nox11

package glx

import "fmt"

// Error is an X protocol error trapped while a GLX request ran.
type Error struct {
	Code    uint8
	Request uint8
	Minor   uint8
}

var xErrorNames = [...]string{
	1:  "BadRequest",
	2:  "BadValue",
	3:  "BadWindow",
	4:  "BadPixmap",
	5:  "BadAtom",
	6:  "BadCursor",
	7:  "BadFont",
	8:  "BadMatch",
	9:  "BadDrawable",
	10: "BadAccess",
	11: "BadAlloc",
	12: "BadColor",
	13: "BadGC",
	14: "BadIDChoice",
	15: "BadName",
	16: "BadLength",
	17: "BadImplementation",
}

func (e *Error) Error() string {
	name := ""
	if int(e.Code) < len(xErrorNames) {
		name = xErrorNames[e.Code]
	}
	if name == "" {
		name = fmt.Sprintf("error %d", e.Code)
	}
	return fmt.Sprintf("X %s (request %d.%d)", name, e.Request, e.Minor)
}
