// Package sysconfig builds and runs the network and system setup commands of
// the console: DHCP, static IP, computer rename, time zone, and Windows
// activation. Every function delegates execution to the command runner.
package sysconfig

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/stagetools/staging-console/internal/runner"
)

// StaticIP describes a static address assignment for the primary interface.
type StaticIP struct {
	Address      string
	PrefixLength string
	Gateway      string
	DNS1         string
	DNS2         string
}

// Validate checks the required fields.
func (c StaticIP) Validate() error {
	if c.Address == "" || c.PrefixLength == "" || c.Gateway == "" {
		return errors.New("IP address, subnet prefix, and gateway are required")
	}
	return nil
}

// Commands returns the shell commands to apply the configuration, in order.
// DNS configuration is emitted only when at least one server is given.
func (c StaticIP) Commands() []string {
	cmds := []string{fmt.Sprintf(
		"New-NetIPAddress -IPAddress %s -PrefixLength %s -DefaultGateway %s -InterfaceAlias 'Ethernet'",
		c.Address, c.PrefixLength, c.Gateway)}
	servers := []string{}
	for _, dns := range []string{c.DNS1, c.DNS2} {
		if trimmed := strings.TrimSpace(dns); trimmed != "" {
			servers = append(servers, trimmed)
		}
	}
	if len(servers) > 0 {
		cmds = append(cmds, fmt.Sprintf(
			"Set-DnsClientServerAddress -InterfaceAlias 'Ethernet' -ServerAddresses '%s'",
			strings.Join(servers, "','")))
	}
	return cmds
}

// EnableDHCPCommand enables DHCP on the primary interface.
func EnableDHCPCommand() string {
	return "Set-NetIPInterface -InterfaceAlias 'Ethernet' -Dhcp Enabled"
}

// RenameComputerCommand renames the host. A restart is required afterwards.
func RenameComputerCommand(name string) string {
	return fmt.Sprintf("Rename-Computer -NewName '%s' -Force", name)
}

// RestartCommand restarts the host immediately.
func RestartCommand() string {
	return "Restart-Computer -Force"
}

// SetTimeZoneCommand applies a time zone by ID.
func SetTimeZoneCommand(id string) string {
	return fmt.Sprintf("Set-TimeZone -Id '%s'", id)
}

// ListTimeZonesCommand prints every available time zone ID.
func ListTimeZonesCommand() string {
	return "Get-TimeZone -ListAvailable | Select-Object -ExpandProperty Id"
}

// ActivationQueryCommand reports the license status of the installed product.
func ActivationQueryCommand() string {
	return `Get-WmiObject -Query "SELECT LicenseStatus FROM SoftwareLicensingProduct WHERE PartialProductKey IS NOT NULL"`
}

// ActivateCommand attempts product activation.
func ActivateCommand() string {
	return "slmgr.vbs /ato"
}

// Apply runs commands in sequence, stopping at the first failure.
func Apply(r runner.Runner, commands ...string) error {
	for _, cmd := range commands {
		out, err := r.Run(cmd)
		if err != nil {
			return fmt.Errorf("run %q: %w", cmd, err)
		}
		if out.Failed() {
			return errors.New(strings.TrimSpace(out.Stderr))
		}
	}
	return nil
}

// ListTimeZones fetches and sorts the available time zone IDs.
func ListTimeZones(r runner.Runner) ([]string, error) {
	out, err := r.Run(ListTimeZonesCommand())
	if err != nil {
		return nil, fmt.Errorf("list time zones: %w", err)
	}
	if out.Failed() {
		return nil, errors.New(strings.TrimSpace(out.Stderr))
	}
	zones := []string{}
	for _, line := range strings.Split(out.Stdout, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			zones = append(zones, trimmed)
		}
	}
	sort.Strings(zones)
	return zones, nil
}

// CheckActivation reports whether the product is licensed. LicenseStatus 1
// means activated.
func CheckActivation(r runner.Runner) (bool, error) {
	out, err := r.Run(ActivationQueryCommand())
	if err != nil {
		return false, fmt.Errorf("check activation: %w", err)
	}
	if out.Failed() {
		return false, errors.New(strings.TrimSpace(out.Stderr))
	}
	return strings.Contains(out.Stdout, "1"), nil
}
