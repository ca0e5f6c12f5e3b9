package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/etnz/tradecal/config"
)

const (
	EnvConfig   = "TRADECAL_CONFIG"
	EnvData     = "TRADECAL_DATA"
	EnvBackend  = "TRADECAL_BACKEND"
	EnvLogLevel = "TRADECAL_LOG_LEVEL"
)

// RunExtension attempts to find and execute an external tcal-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
//
// The extension receives the resolved configuration in its environment,
// so that it works on the same calendar.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "tcal-" + subcommand

	// Look for the external command in PATH
	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		return false, 0
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return true, 1
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	cmd.Env = append(os.Environ(), extensionEnv(cfg)...)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}

	return true, 0
}

// extensionEnv returns the environment variables describing the configuration.
func extensionEnv(cfg *config.Config) []string {
	env := []string{
		EnvData + "=" + cfg.StoragePath(),
		EnvBackend + "=" + cfg.Storage.Backend,
		EnvLogLevel + "=" + cfg.Logging.Level,
	}
	if *configFile != "" {
		env = append(env, EnvConfig+"="+*configFile)
	}
	return env
}
