// Package debug provides the developer-facing debug log enabled by --debug.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer = os.Stderr
)

// SetDebug enables or disables debug mode
func SetDebug(enable bool) {
	mu.Lock()
	defer mu.Unlock()
	enabled = enable
}

// IsEnabled returns whether debug mode is enabled
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// SetNoColor enables or disables colored output
func SetNoColor(disable bool) {
	mu.Lock()
	defer mu.Unlock()
	noColor = disable
}

// SetOutput redirects debug output. It returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return prev
}

// Debug prints a debug message with timestamp
func Debug(format string, args ...interface{}) {
	write(fmt.Sprintf(format, args...), nil)
}

// DebugSection prints a section header for debug output
func DebugSection(section string) {
	write("=== "+section+" ===", color.New(color.FgCyan))
}

// DebugValue prints key=value style debug info
func DebugValue(key string, value interface{}) {
	write(fmt.Sprintf("%s = %v", key, value), nil)
}

// DebugYAML prints structured data as YAML for debugging
func DebugYAML(key string, v interface{}) {
	if !IsEnabled() {
		return
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		Debug("Failed to marshal %s to YAML: %v", key, err)
		return
	}
	write(fmt.Sprintf("%s:\n%s", key, data), nil)
}

func write(msg string, highlight *color.Color) {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return
	}

	tag := color.New(color.FgCyan)
	stamp := color.New(color.FgHiBlack)
	for _, c := range []*color.Color{tag, stamp, highlight} {
		if c == nil {
			continue
		}
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}
	}
	if highlight != nil {
		msg = highlight.Sprint(msg)
	}

	timestamp := time.Now().Format("15:04:05.000")
	fmt.Fprintf(out, "%s %s %s\n", tag.Sprint("[DEBUG]"), stamp.Sprint(timestamp), msg)
}
