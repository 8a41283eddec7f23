package config

import (
	"path/filepath"
	"strings"
)

// EnvSelect, EnvRunTool, EnvConfigHome, EnvConfigDirs, and EnvNoGlobalDirs define the environment keys read by qtchooser.
const (
	EnvSelect       = "QT_SELECT"
	EnvRunTool      = "QTCHOOSER_RUNTOOL"
	EnvConfigHome   = "XDG_CONFIG_HOME"
	EnvConfigDirs   = "XDG_CONFIG_DIRS"
	EnvNoGlobalDirs = "QTCHOOSER_NO_GLOBAL_DIRS"
)

const (
	// DefaultConfigDirs is used when XDG_CONFIG_DIRS is unset or empty.
	DefaultConfigDirs = "/etc/xdg"
	// SubDir is appended to every XDG config root.
	SubDir = "qtchooser"
	// localConfigDir is appended to the home directory when XDG_CONFIG_HOME is unset.
	localConfigDir = ".config"
)

// Env is the environment state needed to build a search path.
type Env interface {
	Getenv(key string) string
	HomeDir() (string, error)
}

// SearchPath returns the ordered list of descriptor directories.
// The local config root comes first, then each system config root, then globalDirs
// (a list-separated string fixed at build time) unless QTCHOOSER_NO_GLOBAL_DIRS is set.
// Earlier entries shadow later ones.
func SearchPath(env Env, norm Normalizer, globalDirs string) []string {
	paths := []string{filepath.Join(localRoot(env), SubDir)}

	systemDirs := env.Getenv(EnvConfigDirs)
	if systemDirs == "" {
		systemDirs = DefaultConfigDirs
	}
	for _, dir := range norm.SplitList(systemDirs) {
		if dir == "" {
			continue
		}
		paths = append(paths, filepath.Join(dir, SubDir))
	}

	if strings.TrimSpace(env.Getenv(EnvNoGlobalDirs)) != "" {
		return paths
	}
	for _, dir := range norm.SplitList(globalDirs) {
		if dir == "" {
			continue
		}
		paths = append(paths, dir)
	}
	return paths
}

// localRoot returns XDG_CONFIG_HOME, falling back to <home>/.config.
// An unresolvable home directory is treated as empty.
func localRoot(env Env) string {
	if dir := env.Getenv(EnvConfigHome); dir != "" {
		return dir
	}
	home, err := env.HomeDir()
	if err != nil {
		home = ""
	}
	return home + string(filepath.Separator) + localConfigDir
}
