package testhelpers

import (
	"strings"
)

// ScriptedInput joins answers into newline-terminated console input.
func ScriptedInput(answers ...string) *strings.Reader {
	if len(answers) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(answers, "\n") + "\n")
}

// Lines splits captured output into lines, dropping the final newline.
func Lines(output string) []string {
	output = strings.TrimSuffix(output, "\n")
	if output == "" {
		return nil
	}
	return strings.Split(output, "\n")
}
