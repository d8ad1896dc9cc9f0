package wslconfig

import "github.com/five82/wsltune/internal/settings"

// Entry maps a .wslconfig key to the settings field it carries.
type Entry struct {
	Key   string
	Field string
}

// Section is a bracketed group of entries in file order.
type Section struct {
	Name    string
	Entries []Entry
}

// Key order and section membership are what the WSL host expects; do not
// reorder.
var layout = []Section{
	{
		Name: "wsl2",
		Entries: []Entry{
			{"memory", "memoryLimit"},
			{"swap", "swap"},
			{"swapFile", "swapFile"},
			{"processors", "processorCount"},
			{"networkingMode", "networkMode"},
			{"localhostForwarding", "localhostForwarding"},
			{"guiApplications", "guiApplications"},
			{"debugConsole", "debugConsole"},
			{"kernel", "kernel"},
			{"kernelModules", "kernelModules"},
			{"kernelCommandLine", "kernelCommandLine"},
			{"safeMode", "safeMode"},
			{"maxCrashDumpCount", "maxCrashDumpCount"},
			{"nestedVirtualization", "nestedVirtualization"},
			{"vmIdleTimeout", "vmIdleTimeout"},
			{"dnsProxy", "dnsProxy"},
			{"defaultVhdSize", "defaultVhdSize"},
			{"pageReporting", "pageReporting"},
			{"firewall", "firewall"},
			{"dnsTunneling", "dnsTunneling"},
			{"autoProxy", "autoProxy"},
		},
	},
	{
		Name: "experimental",
		Entries: []Entry{
			{"autoMemoryReclaim", "autoMemoryReclaim"},
			{"sparseVhd", "sparseVhd"},
			{"bestEffortDnsParsing", "bestEffortDnsParsing"},
			{"dnsTunnelingIpAddress", "dnsTunnelingIpAddress"},
			{"initialAutoProxyTimeout", "initialAutoProxyTimeout"},
			{"hostAddressLoopback", "hostAddressLoopback"},
		},
	},
}

// ignoredPorts trails the experimental section and is written only when set.
var ignoredPorts = Entry{"ignoredPorts", "ignoredPorts"}

// Sections returns the file layout, including the optional ignoredPorts
// entry at the end of the experimental section.
func Sections() []Section {
	out := make([]Section, len(layout))
	for i, sec := range layout {
		entries := append([]Entry(nil), sec.Entries...)
		if sec.Name == "experimental" {
			entries = append(entries, ignoredPorts)
		}
		out[i] = Section{Name: sec.Name, Entries: entries}
	}
	return out
}

func mustField(name string) settings.Field {
	f, ok := settings.Lookup(name)
	if !ok {
		panic("wslconfig: layout references unknown field " + name)
	}
	return f
}
