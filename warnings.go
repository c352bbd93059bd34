package metaprobe

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal problem encountered while decoding a
// file. Warnings are returned alongside the extracted record rather than
// aborting extraction: a truncated IFD or a malformed chunk still yields
// whatever fields were readable before the damage.
type Warning struct {
	// Decoder names the component that produced the warning, such as
	// "exif", "png" or "ocr".
	Decoder string

	// Message describes the problem.
	Message string
}

// String returns the warning as "decoder: message".
func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Decoder, w.Message)
}

// FormatWarnings joins a list of warnings into a single semicolon-separated
// string, suitable for logging. It returns "" for an empty list.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// wrapWarnings converts the plain messages produced by a decoder package
// into Warnings attributed to that decoder.
func wrapWarnings(decoder string, messages []string) []Warning {
	if len(messages) == 0 {
		return nil
	}
	out := make([]Warning, len(messages))
	for i, m := range messages {
		out[i] = Warning{Decoder: decoder, Message: m}
	}
	return out
}
