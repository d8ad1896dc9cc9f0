package settings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownField is returned for names outside the settings set.
	ErrUnknownField = errors.New("unknown setting")
	// ErrInvalidValue is returned when a raw value does not fit the field's kind.
	ErrInvalidValue = errors.New("invalid value")
)

// FieldError ties a failure to the field it occurred on.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s: %v %q", e.Field, e.Err, e.Value)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Kind is the value type of a field.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindSize // whole gigabytes
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindSize:
		return "size"
	case KindBool:
		return "bool"
	default:
		return "string"
	}
}

// Field describes one member of Settings by its camelCase name.
type Field struct {
	Name string
	Kind Kind

	intRef    func(*Settings) *int
	boolRef   func(*Settings) *bool
	stringRef func(*Settings) *string
}

// Value renders the field's current value in s. Sizes carry no unit.
func (f Field) Value(s Settings) string {
	switch f.Kind {
	case KindInt, KindSize:
		return strconv.Itoa(*f.intRef(&s))
	case KindBool:
		return strconv.FormatBool(*f.boolRef(&s))
	default:
		return *f.stringRef(&s)
	}
}

// Set parses raw and stores it in s. Strings are stored verbatim, integers
// are base 10, booleans follow strconv.ParseBool and sizes accept "8", "8GB"
// or "2048MB". On error s is unchanged.
func (f Field) Set(s *Settings, raw string) error {
	switch f.Kind {
	case KindInt:
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return &FieldError{Field: f.Name, Value: raw, Err: ErrInvalidValue}
		}
		*f.intRef(s) = v
	case KindSize:
		v, err := ParseSizeGB(raw)
		if err != nil {
			return &FieldError{Field: f.Name, Value: raw, Err: ErrInvalidValue}
		}
		*f.intRef(s) = v
	case KindBool:
		v, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return &FieldError{Field: f.Name, Value: raw, Err: ErrInvalidValue}
		}
		*f.boolRef(s) = v
	default:
		*f.stringRef(s) = raw
	}
	return nil
}

// SetLenient is Set with the rules of a hand-edited .wslconfig: a boolean is
// true only for "true" in any case and false for anything else.
func (f Field) SetLenient(s *Settings, raw string) error {
	if f.Kind == KindBool {
		*f.boolRef(s) = strings.EqualFold(strings.TrimSpace(raw), "true")
		return nil
	}
	return f.Set(s, raw)
}

// Toggle flips a boolean field and reports whether it did anything.
func (f Field) Toggle(s *Settings) bool {
	if f.Kind != KindBool {
		return false
	}
	ref := f.boolRef(s)
	*ref = !*ref
	return true
}

// ParseSizeGB converts "8", "8GB" or "2048MB" to whole gigabytes.
// Megabyte values are truncated.
func ParseSizeGB(raw string) (int, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	div := 1
	switch {
	case strings.HasSuffix(v, "GB"):
		v = strings.TrimSuffix(v, "GB")
	case strings.HasSuffix(v, "MB"):
		v = strings.TrimSuffix(v, "MB")
		div = 1024
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("parse size %q: %w", raw, err)
	}
	return n / div, nil
}

func intField(name string, kind Kind, ref func(*Settings) *int) Field {
	return Field{Name: name, Kind: kind, intRef: ref}
}

func boolField(name string, ref func(*Settings) *bool) Field {
	return Field{Name: name, Kind: KindBool, boolRef: ref}
}

func stringField(name string, ref func(*Settings) *string) Field {
	return Field{Name: name, Kind: KindString, stringRef: ref}
}

var fields = []Field{
	intField("memoryLimit", KindSize, func(s *Settings) *int { return &s.MemoryLimit }),
	intField("swap", KindSize, func(s *Settings) *int { return &s.Swap }),
	stringField("swapFile", func(s *Settings) *string { return &s.SwapFile }),
	intField("processorCount", KindInt, func(s *Settings) *int { return &s.ProcessorCount }),
	stringField("networkMode", func(s *Settings) *string { return &s.NetworkMode }),
	boolField("localhostForwarding", func(s *Settings) *bool { return &s.LocalhostForwarding }),
	stringField("autoMemoryReclaim", func(s *Settings) *string { return &s.AutoMemoryReclaim }),
	boolField("sparseVhd", func(s *Settings) *bool { return &s.SparseVhd }),
	boolField("dnsTunneling", func(s *Settings) *bool { return &s.DNSTunneling }),
	boolField("firewall", func(s *Settings) *bool { return &s.Firewall }),
	boolField("autoProxy", func(s *Settings) *bool { return &s.AutoProxy }),
	boolField("hostAddressLoopback", func(s *Settings) *bool { return &s.HostAddressLoopback }),
	boolField("guiApplications", func(s *Settings) *bool { return &s.GUIApplications }),
	boolField("debugConsole", func(s *Settings) *bool { return &s.DebugConsole }),
	stringField("kernel", func(s *Settings) *string { return &s.Kernel }),
	stringField("kernelModules", func(s *Settings) *string { return &s.KernelModules }),
	stringField("kernelCommandLine", func(s *Settings) *string { return &s.KernelCommandLine }),
	boolField("safeMode", func(s *Settings) *bool { return &s.SafeMode }),
	intField("maxCrashDumpCount", KindInt, func(s *Settings) *int { return &s.MaxCrashDumpCount }),
	boolField("nestedVirtualization", func(s *Settings) *bool { return &s.NestedVirtualization }),
	intField("vmIdleTimeout", KindInt, func(s *Settings) *int { return &s.VMIdleTimeout }),
	boolField("dnsProxy", func(s *Settings) *bool { return &s.DNSProxy }),
	intField("defaultVhdSize", KindSize, func(s *Settings) *int { return &s.DefaultVhdSize }),
	boolField("pageReporting", func(s *Settings) *bool { return &s.PageReporting }),
	boolField("bestEffortDnsParsing", func(s *Settings) *bool { return &s.BestEffortDNSParsing }),
	stringField("dnsTunnelingIpAddress", func(s *Settings) *string { return &s.DNSTunnelingIPAddress }),
	intField("initialAutoProxyTimeout", KindInt, func(s *Settings) *int { return &s.InitialAutoProxyTimeout }),
	stringField("ignoredPorts", func(s *Settings) *string { return &s.IgnoredPorts }),
}

var fieldIndex = func() map[string]Field {
	idx := make(map[string]Field, len(fields))
	for _, f := range fields {
		idx[f.Name] = f
	}
	return idx
}()

// Fields returns every field in declaration order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Lookup finds a field by its camelCase name.
func Lookup(name string) (Field, bool) {
	f, ok := fieldIndex[name]
	return f, ok
}
