package messages

// CLI messages for user-facing commands and diagnostics.
const (
	// RootUse is the dispatcher's canonical command name.
	RootUse   = "qtchooser"
	RootShort = "Qt tool chooser"

	// Usage is printed for -help and for a bare self-invocation.
	Usage = "Usage:\n" +
		"  qtchooser { -list-versions | -print-env }\n" +
		"  qtchooser -run-tool=<tool name> [-qt=<Qt version>] [program arguments]\n" +
		"  <executable name> [-qt=<Qt version>] [program arguments]\n" +
		"\n" +
		"Environment variables accepted:\n" +
		" QTCHOOSER_RUNTOOL  name of the tool to be run (same as the -run-tool argument)\n" +
		" QT_SELECT          version of Qt to be run (same as the -qt argument)\n"

	// DiagnosticFmt prefixes every diagnostic with the invocation name.
	DiagnosticFmt = "%s: %v\n"

	// InvocationMissingArgv0 indicates argv[0] is missing.
	InvocationMissingArgv0       = "missing argv[0]"
	InvocationNoToolSelected     = "no tool selected. Stop."
	InvocationUnknownOptionFmt   = "unknown option: %s"
	InvocationUnknownArgumentFmt = "unknown argument: %s"
)
