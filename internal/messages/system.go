package messages

// System messages for internal operations.
const (
	// DispatchErrDispatched indicates execution was handed to the target tool.
	DispatchErrDispatched = "dispatch executed"
	// DispatchSystemRequired indicates a nil system was supplied.
	DispatchSystemRequired      = "dispatch system is required"
	DispatchExitHandlerRequired = "exit handler is required"
	DispatchUnknownModeFmt      = "unknown operating mode %d"
	DispatchNoInstallationFmt   = "could not find a Qt installation of '%s'"
	DispatchExecFailedFmt       = "could not exec '%s': %v"

	// ToolchainNotFound indicates no descriptor matched the selector.
	ToolchainNotFound      = "toolchain not found"
	ToolchainMalformed     = "malformed toolchain config"
	ToolchainMalformedFmt  = "%s: %w"
	ToolchainOpenConfigFmt = "could not open config file '%s': %v"
	ToolchainReadConfigFmt = "could not read config file '%s': %v"
	ToolchainExpandHomeFmt = "expand home directory in %s: %w"

	// ConfigResolveHomeFmt formats home directory lookup failures.
	ConfigResolveHomeFmt = "resolve home dir: %w"

	// EnvfileLineErrorFmt formats envfile line errors.
	EnvfileLineErrorFmt            = "line %d: %w"
	EnvfileReadFailedFmt           = "failed to read env content: %w"
	EnvfileExpectedKeyValue        = "expected KEY=VALUE"
	EnvfileUnterminatedQuotedValue = "unterminated quoted value"
	EnvfileInvalidQuotedSuffix     = "invalid trailing characters after quoted value"
)
