package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
)

// envSource reads an environment variable. A blank value counts as unset
// because the Actions runner exports INPUT_<NAME> for every declared input,
// even when the workflow leaves it empty.
type envSource struct {
	key string
}

func (e *envSource) Lookup() (string, bool) {
	v, ok := os.LookupEnv(e.key)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return v, true
}

func (e *envSource) String() string {
	return fmt.Sprintf("environment variable %q", e.key)
}

func (e *envSource) GoString() string {
	return fmt.Sprintf("&envSource{key:%q}", e.key)
}

// envVars returns a source chain that falls through to the next key when a
// variable is unset or blank
func envVars(keys ...string) cli.ValueSourceChain {
	sources := make([]cli.ValueSource, 0, len(keys))
	for _, key := range keys {
		sources = append(sources, &envSource{key: key})
	}
	return cli.NewValueSourceChain(sources...)
}
