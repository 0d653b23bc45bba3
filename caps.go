package line

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// Capabilities describes what the attached terminal can display.
type Capabilities struct {
	// Profile is the detected color depth. Styles are degraded through
	// it at render time, so richer colors are safe everywhere.
	Profile termenv.Profile
	// Unicode reports whether the locale advertises UTF-8 output.
	Unicode bool
}

// DetectCapabilities determines terminal capabilities from environment
// variables. Color depth detection is delegated to termenv, which
// understands COLORTERM, TERM and the common emulator-specific
// variables; NO_COLOR and dumb terminals come back as Ascii.
func DetectCapabilities() Capabilities {
	caps := Capabilities{
		Profile: termenv.EnvColorProfile(),
		Unicode: localeIsUTF8(),
	}
	if strings.ToLower(os.Getenv("TERM")) == "dumb" {
		caps.Unicode = false
	}
	return caps
}

// localeIsUTF8 checks LC_ALL, LC_CTYPE and LANG in precedence order.
func localeIsUTF8() bool {
	for _, name := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(name); v != "" {
			v = strings.ToUpper(v)
			return strings.Contains(v, "UTF-8") || strings.Contains(v, "UTF8")
		}
	}
	// No locale set at all; assume a modern terminal.
	return true
}

// String returns a human-readable description of the capabilities.
func (c Capabilities) String() string {
	var parts []string

	switch c.Profile {
	case termenv.Ascii:
		parts = append(parts, "no-color")
	case termenv.ANSI:
		parts = append(parts, "16-color")
	case termenv.ANSI256:
		parts = append(parts, "256-color")
	case termenv.TrueColor:
		parts = append(parts, "true-color")
	}

	if c.Unicode {
		parts = append(parts, "unicode")
	} else {
		parts = append(parts, "ascii")
	}

	return strings.Join(parts, ", ")
}
