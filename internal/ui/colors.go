package ui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize applies color only if output is a TTY
func colorize(color, msg string) string {
	if !isTTY() {
		return msg
	}
	return color + msg + Reset
}

// OK formats a success message with [OK] prefix in green
func OK(msg string) string {
	prefix := colorize(Green, "[OK]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Error formats an error message with [ERROR] prefix in red
func Error(msg string) string {
	prefix := colorize(Red, "[ERROR]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Warn formats a warning message with [WARN] prefix in yellow
func Warn(msg string) string {
	prefix := colorize(Yellow, "[WARN]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Info formats an info message with [INFO] prefix in blue
func Info(msg string) string {
	prefix := colorize(Blue, "[INFO]")
	return fmt.Sprintf("%s %s", prefix, msg)
}

// Summary colorizes a SUCCESS/FAILED lint summary line
func Summary(line string) string {
	switch {
	case strings.HasPrefix(line, "SUCCESS"):
		return colorize(Green, line)
	case strings.HasPrefix(line, "FAILED"):
		return colorize(Red, line)
	}
	return line
}

// PrintOK prints a success message
func PrintOK(msg string) {
	fmt.Println(OK(msg))
}

// PrintError prints an error message
func PrintError(msg string) {
	fmt.Println(Error(msg))
}

// PrintWarn prints a warning message
func PrintWarn(msg string) {
	fmt.Println(Warn(msg))
}

// PrintInfo prints an info message
func PrintInfo(msg string) {
	fmt.Println(Info(msg))
}

// Indent returns the message with indentation
func Indent(msg string) string {
	return "     " + msg
}
