package settings

import (
	"encoding/json"
	"fmt"
)

// Partial is a sparse update to Settings. A nil field means "leave as is".
type Partial struct {
	MemoryLimit             *int    `json:"memoryLimit,omitempty"`
	Swap                    *int    `json:"swap,omitempty"`
	SwapFile                *string `json:"swapFile,omitempty"`
	ProcessorCount          *int    `json:"processorCount,omitempty"`
	NetworkMode             *string `json:"networkMode,omitempty"`
	LocalhostForwarding     *bool   `json:"localhostForwarding,omitempty"`
	AutoMemoryReclaim       *string `json:"autoMemoryReclaim,omitempty"`
	SparseVhd               *bool   `json:"sparseVhd,omitempty"`
	DNSTunneling            *bool   `json:"dnsTunneling,omitempty"`
	Firewall                *bool   `json:"firewall,omitempty"`
	AutoProxy               *bool   `json:"autoProxy,omitempty"`
	HostAddressLoopback     *bool   `json:"hostAddressLoopback,omitempty"`
	GUIApplications         *bool   `json:"guiApplications,omitempty"`
	DebugConsole            *bool   `json:"debugConsole,omitempty"`
	Kernel                  *string `json:"kernel,omitempty"`
	KernelModules           *string `json:"kernelModules,omitempty"`
	KernelCommandLine       *string `json:"kernelCommandLine,omitempty"`
	SafeMode                *bool   `json:"safeMode,omitempty"`
	MaxCrashDumpCount       *int    `json:"maxCrashDumpCount,omitempty"`
	NestedVirtualization    *bool   `json:"nestedVirtualization,omitempty"`
	VMIdleTimeout           *int    `json:"vmIdleTimeout,omitempty"`
	DNSProxy                *bool   `json:"dnsProxy,omitempty"`
	DefaultVhdSize          *int    `json:"defaultVhdSize,omitempty"`
	PageReporting           *bool   `json:"pageReporting,omitempty"`
	BestEffortDNSParsing    *bool   `json:"bestEffortDnsParsing,omitempty"`
	DNSTunnelingIPAddress   *string `json:"dnsTunnelingIpAddress,omitempty"`
	InitialAutoProxyTimeout *int    `json:"initialAutoProxyTimeout,omitempty"`
	IgnoredPorts            *string `json:"ignoredPorts,omitempty"`
}

// DecodePartial parses a JSON object of camelCase field names into a Partial.
// Keys outside the settings set are ignored.
func DecodePartial(data []byte) (Partial, error) {
	var p Partial
	if err := json.Unmarshal(data, &p); err != nil {
		return Partial{}, fmt.Errorf("decode settings payload: %w", err)
	}
	return p, nil
}

// Apply returns base with every non-nil field of p written over it.
func (p Partial) Apply(base Settings) Settings {
	out := base
	setInt(&out.MemoryLimit, p.MemoryLimit)
	setInt(&out.Swap, p.Swap)
	setString(&out.SwapFile, p.SwapFile)
	setInt(&out.ProcessorCount, p.ProcessorCount)
	setString(&out.NetworkMode, p.NetworkMode)
	setBool(&out.LocalhostForwarding, p.LocalhostForwarding)
	setString(&out.AutoMemoryReclaim, p.AutoMemoryReclaim)
	setBool(&out.SparseVhd, p.SparseVhd)
	setBool(&out.DNSTunneling, p.DNSTunneling)
	setBool(&out.Firewall, p.Firewall)
	setBool(&out.AutoProxy, p.AutoProxy)
	setBool(&out.HostAddressLoopback, p.HostAddressLoopback)
	setBool(&out.GUIApplications, p.GUIApplications)
	setBool(&out.DebugConsole, p.DebugConsole)
	setString(&out.Kernel, p.Kernel)
	setString(&out.KernelModules, p.KernelModules)
	setString(&out.KernelCommandLine, p.KernelCommandLine)
	setBool(&out.SafeMode, p.SafeMode)
	setInt(&out.MaxCrashDumpCount, p.MaxCrashDumpCount)
	setBool(&out.NestedVirtualization, p.NestedVirtualization)
	setInt(&out.VMIdleTimeout, p.VMIdleTimeout)
	setBool(&out.DNSProxy, p.DNSProxy)
	setInt(&out.DefaultVhdSize, p.DefaultVhdSize)
	setBool(&out.PageReporting, p.PageReporting)
	setBool(&out.BestEffortDNSParsing, p.BestEffortDNSParsing)
	setString(&out.DNSTunnelingIPAddress, p.DNSTunnelingIPAddress)
	setInt(&out.InitialAutoProxyTimeout, p.InitialAutoProxyTimeout)
	setString(&out.IgnoredPorts, p.IgnoredPorts)
	return out
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
