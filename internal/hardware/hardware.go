// Package hardware scans the host's PnP devices through the command runner
// and turns the shell's table output into sortable, exportable records.
package hardware

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/stagetools/staging-console/internal/runner"
)

// ScanScript is the PowerShell script used to enumerate PnP devices.
const ScanScript = `function Get-HardwareDevices {
    Get-WmiObject -Class Win32_PnPEntity |
        Select-Object Name, Manufacturer, DeviceID |
        Format-Table -AutoSize
}
Get-HardwareDevices`

// Device is one scanned hardware entry.
type Device struct {
	Name         string `json:"Name"`
	Manufacturer string `json:"Manufacturer"`
	DeviceID     string `json:"DeviceID"`
}

// Column selects a sort key for the device table.
type Column int

const (
	ColumnName Column = iota
	ColumnManufacturer
	ColumnDeviceID
)

func (c Column) String() string {
	switch c {
	case ColumnManufacturer:
		return "Manufacturer"
	case ColumnDeviceID:
		return "DeviceID"
	default:
		return "Name"
	}
}

// Next cycles to the following sort column.
func (c Column) Next() Column {
	return (c + 1) % 3
}

// Scan runs the scan script and parses its output. A non-empty stderr is a
// scan failure.
func Scan(r runner.Runner) ([]Device, error) {
	out, err := r.Run(ScanScript)
	if err != nil {
		return nil, fmt.Errorf("hardware scan: %w", err)
	}
	if out.Failed() {
		return nil, fmt.Errorf("hardware scan: %s", strings.TrimSpace(out.Stderr))
	}
	return Parse(out.Stdout), nil
}

// Parse extracts devices from Format-Table output. Header and ruler lines are
// skipped; a data line is "name… manufacturer deviceID" where the name may
// contain spaces.
func Parse(output string) []Device {
	devices := []Device{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Name") || strings.HasPrefix(line, "-") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 3 {
			continue
		}
		devices = append(devices, Device{
			Name:         strings.Join(parts[:len(parts)-2], " "),
			Manufacturer: parts[len(parts)-2],
			DeviceID:     parts[len(parts)-1],
		})
	}
	return devices
}

// Sort orders devices in place by the given column.
func Sort(devices []Device, col Column, reverse bool) {
	sort.SliceStable(devices, func(i, j int) bool {
		a, b := key(devices[i], col), key(devices[j], col)
		if reverse {
			return a > b
		}
		return a < b
	})
}

func key(d Device, col Column) string {
	switch col {
	case ColumnManufacturer:
		return d.Manufacturer
	case ColumnDeviceID:
		return d.DeviceID
	default:
		return d.Name
	}
}

// ExportJSON writes the device list as indented JSON.
func ExportJSON(w io.Writer, devices []Device) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	return enc.Encode(devices)
}

// ExportFilename names an export file after the scan time.
func ExportFilename(now time.Time) string {
	return "hardware_scan_" + now.Format("20060102_150405") + ".json"
}
