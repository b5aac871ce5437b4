package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	environmentVariablePort              = "PORT"
	environmentVariableDatabaseURL       = "DATABASE_URL"
	environmentVariableAdminPasswordHash = "ADMIN_PASSWORD_HASH"
	environmentVariableLayoutsDir        = "LAYOUTS_DIR"
	environmentVariableMaxSteps          = "MAX_STEPS"
	environmentVariableDealRetries       = "DEAL_RETRIES"
	environmentVariableTokenValidDur     = "TOKEN_VALID_DURATION"
	environmentVariableDebugMessages     = "DEBUG_MESSAGES"
)

// mainFlags are the configuration options which can be easily configured at run startup for different environments.
type mainFlags struct {
	port              int
	databaseURL       string
	adminPasswordHash string
	layoutsDir        string
	maxSteps          int
	dealRetries       int
	tokenValidDur     time.Duration
	debugMessages     bool
	hashPassword      bool
}

const (
	defaultPort          = 8000
	defaultMaxSteps      = 200000
	defaultDealRetries   = 8
	defaultTokenValidDur = 24 * time.Hour
)

// usage prints how to run the server to the flagset's output.
func usage(fs *flag.FlagSet) {
	envVars := []string{
		environmentVariablePort,
		environmentVariableDatabaseURL,
		environmentVariableAdminPasswordHash,
		environmentVariableLayoutsDir,
		environmentVariableMaxSteps,
		environmentVariableDealRetries,
		environmentVariableTokenValidDur,
		environmentVariableDebugMessages,
	}
	fmt.Fprintf(fs.Output(), "Runs the mahjongg server\n")
	fmt.Fprintf(fs.Output(), "Reads environment variables when possible: [%s]\n", strings.Join(envVars, ","))
	fmt.Fprintf(fs.Output(), "Reads environment variables from a .env file in the working directory if it exists\n")
	fmt.Fprintf(fs.Output(), "Usage of %s:\n", fs.Name())
	fs.PrintDefaults()
}

// newFlagSet creates a flagSet that populates the specified mainFlags.
func (m *mainFlags) newFlagSet(osLookupEnvFunc func(string) (string, bool)) *flag.FlagSet {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.Usage = func() {
		usage(fs) // [lazy evaluation]
	}
	envValue := func(key string) string {
		if envValue, ok := osLookupEnvFunc(key); ok {
			return envValue
		}
		return ""
	}
	envValueInt := func(key string, defaultValue int) int {
		v1 := envValue(key)
		v2, err := strconv.Atoi(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	envValueDuration := func(key string, defaultValue time.Duration) time.Duration {
		v1 := envValue(key)
		v2, err := time.ParseDuration(v1)
		if err != nil {
			return defaultValue
		}
		return v2
	}
	envPresent := func(key string) bool {
		_, ok := osLookupEnvFunc(key)
		return ok
	}
	fs.IntVar(&m.port, "port", envValueInt(environmentVariablePort, defaultPort), "The TCP port for server http requests.")
	fs.StringVar(&m.databaseURL, "data-source", envValue(environmentVariableDatabaseURL), "The url of the database that stores layouts.  Supports postgres://, mongodb://, mongodb+srv://, and firestore://PROJECT_ID urls.  Layouts added by administrators are only kept in memory if no data source is specified.")
	fs.StringVar(&m.adminPasswordHash, "admin-password-hash", envValue(environmentVariableAdminPasswordHash), "The bcrypt hash of the password needed to add and remove layouts.  Layouts cannot be changed if not specified.")
	fs.StringVar(&m.layoutsDir, "layouts-dir", envValue(environmentVariableLayoutsDir), "A directory of GNOME Mahjongg and KMahjongg layout files that are served alongside the builtin layouts.")
	fs.IntVar(&m.maxSteps, "max-steps", envValueInt(environmentVariableMaxSteps, defaultMaxSteps), "The maximum number of placements tried when dealing a board from a seed.  Zero does not limit the search.")
	fs.IntVar(&m.dealRetries, "deal-retries", envValueInt(environmentVariableDealRetries, defaultDealRetries), "The number of following seeds tried if a board cannot be dealt from a seed.")
	fs.DurationVar(&m.tokenValidDur, "token-valid-duration", envValueDuration(environmentVariableTokenValidDur, defaultTokenValidDur), "The amount of time dealt boards can be played after they are dealt.")
	fs.BoolVar(&m.debugMessages, "debug-messages", envPresent(environmentVariableDebugMessages), "Logs message types in the console when messages are passed between the server and players.")
	fs.BoolVar(&m.hashPassword, "hash-password", false, "Reads a password from standard input and prints its bcrypt hash, for use as the admin password hash.  Does not run the server.")
	return fs
}

// newMainFlags creates a new, populated mainFlags structure.
// Fields are populated from command line arguments.
// If fields are not specified on the command line, environment variable values are used before defaulting to other defaults.
func newMainFlags(osArgs []string, osLookupEnvFunc func(string) (string, bool)) (*mainFlags, error) {
	if len(osArgs) == 0 {
		osArgs = []string{""}
	}
	programArgs := osArgs[1:]
	var m mainFlags
	fs := m.newFlagSet(osLookupEnvFunc)
	if err := fs.Parse(programArgs); err != nil {
		return nil, err
	}
	return &m, nil
}
