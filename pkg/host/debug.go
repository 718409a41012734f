package host

// DebugMode controls whether diagnostics assertions are active.
// When true, contract violations such as unbalanced Enter/Leave pairs or
// corrupted render data panic immediately. When false, the checks are
// skipped for performance.
var DebugMode = true

// SetDebugMode enables or disables diagnostics assertions for the runtime.
func SetDebugMode(debug bool) {
	DebugMode = debug
}
