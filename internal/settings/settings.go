package settings

// Settings is the full set of WSL2 virtualization tunables. Every field is
// always populated; sizes are whole gigabytes and timeouts are milliseconds.
type Settings struct {
	MemoryLimit             int    `json:"memoryLimit"`
	Swap                    int    `json:"swap"`
	SwapFile                string `json:"swapFile"`
	ProcessorCount          int    `json:"processorCount"`
	NetworkMode             string `json:"networkMode"`
	LocalhostForwarding     bool   `json:"localhostForwarding"`
	AutoMemoryReclaim       string `json:"autoMemoryReclaim"`
	SparseVhd               bool   `json:"sparseVhd"`
	DNSTunneling            bool   `json:"dnsTunneling"`
	Firewall                bool   `json:"firewall"`
	AutoProxy               bool   `json:"autoProxy"`
	HostAddressLoopback     bool   `json:"hostAddressLoopback"`
	GUIApplications         bool   `json:"guiApplications"`
	DebugConsole            bool   `json:"debugConsole"`
	Kernel                  string `json:"kernel"`
	KernelModules           string `json:"kernelModules"`
	KernelCommandLine       string `json:"kernelCommandLine"`
	SafeMode                bool   `json:"safeMode"`
	MaxCrashDumpCount       int    `json:"maxCrashDumpCount"`
	NestedVirtualization    bool   `json:"nestedVirtualization"`
	VMIdleTimeout           int    `json:"vmIdleTimeout"`
	DNSProxy                bool   `json:"dnsProxy"`
	DefaultVhdSize          int    `json:"defaultVhdSize"`
	PageReporting           bool   `json:"pageReporting"`
	BestEffortDNSParsing    bool   `json:"bestEffortDnsParsing"`
	DNSTunnelingIPAddress   string `json:"dnsTunnelingIpAddress"`
	InitialAutoProxyTimeout int    `json:"initialAutoProxyTimeout"`
	IgnoredPorts            string `json:"ignoredPorts"`
}

// DefaultSwapFile is the swap file location WSL uses when none is configured.
const DefaultSwapFile = `C:\wsl.swap`

// defaults is consulted both at construction and on reset.
var defaults = Settings{
	MemoryLimit:             8,
	Swap:                    0,
	SwapFile:                DefaultSwapFile,
	ProcessorCount:          4,
	NetworkMode:             "mirrored",
	LocalhostForwarding:     true,
	AutoMemoryReclaim:       "dropCache",
	SparseVhd:               true,
	DNSTunneling:            true,
	Firewall:                true,
	AutoProxy:               true,
	HostAddressLoopback:     true,
	GUIApplications:         true,
	DebugConsole:            false,
	Kernel:                  "",
	KernelModules:           "",
	KernelCommandLine:       "",
	SafeMode:                false,
	MaxCrashDumpCount:       10,
	NestedVirtualization:    true,
	VMIdleTimeout:           60000,
	DNSProxy:                true,
	DefaultVhdSize:          1024,
	PageReporting:           true,
	BestEffortDNSParsing:    false,
	DNSTunnelingIPAddress:   "10.255.255.254",
	InitialAutoProxyTimeout: 1000,
	IgnoredPorts:            "",
}

// Defaults returns the factory settings.
func Defaults() Settings {
	return defaults
}

// Model holds the current settings. It is not safe for concurrent use;
// callers that share a Model across goroutines must serialize access.
type Model struct {
	state Settings
}

// NewModel returns a Model populated with Defaults.
func NewModel() *Model {
	return &Model{state: Defaults()}
}

// State returns a copy of the current settings.
func (m *Model) State() Settings {
	return m.state
}

// Merge overwrites every field set in p. Fields left nil are untouched and
// values are stored as given.
func (m *Model) Merge(p Partial) {
	m.state = p.Apply(m.state)
}

// Reset replaces every field with its default, discarding all overrides.
func (m *Model) Reset() {
	m.state = Defaults()
}

// Replace swaps in a complete record, as when reading a saved file.
func (m *Model) Replace(s Settings) {
	m.state = s
}

// Set assigns a single field from its string form. See Field.Set for the
// accepted formats.
func (m *Model) Set(name, raw string) error {
	f, ok := Lookup(name)
	if !ok {
		return &FieldError{Field: name, Err: ErrUnknownField}
	}
	return f.Set(&m.state, raw)
}
