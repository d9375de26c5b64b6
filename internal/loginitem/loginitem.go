// Package loginitem manages registration of the app as a login item.
package loginitem

import (
	"fmt"
	"os"
	"path/filepath"
)

// Registrar defines operations for host login-item registration.
// SetEnabled is the one external call in the system whose failure is
// surfaced to the caller.
type Registrar interface {
	IsEnabled() bool
	SetEnabled(enabled bool) error
}

// LaunchAgent registers the app by managing a launchd property list in
// the user's agents directory.
type LaunchAgent struct {
	dir     string
	label   string
	program string
}

// NewLaunchAgent creates a registrar writing to dir under the given
// launchd label. program is the executable the agent should start.
func NewLaunchAgent(dir, label, program string) *LaunchAgent {
	return &LaunchAgent{dir: dir, label: label, program: program}
}

func (a *LaunchAgent) plistPath() string {
	return filepath.Join(a.dir, a.label+".plist")
}

// IsEnabled reports whether the agent plist is installed.
func (a *LaunchAgent) IsEnabled() bool {
	_, err := os.Stat(a.plistPath())
	return err == nil
}

// SetEnabled installs or removes the agent plist.
func (a *LaunchAgent) SetEnabled(enabled bool) error {
	if !enabled {
		if err := os.Remove(a.plistPath()); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove launch agent: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create agents directory: %w", err)
	}
	plist := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
</dict>
</plist>
`, a.label, a.program)
	if err := os.WriteFile(a.plistPath(), []byte(plist), 0o644); err != nil {
		return fmt.Errorf("failed to write launch agent: %w", err)
	}
	return nil
}

// Memory is an in-memory registrar for tests.
type Memory struct {
	Enabled bool
	Err     error
}

func (m *Memory) IsEnabled() bool { return m.Enabled }

func (m *Memory) SetEnabled(enabled bool) error {
	if m.Err != nil {
		return m.Err
	}
	m.Enabled = enabled
	return nil
}
