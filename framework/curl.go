package framework

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

const redactedToken = "<redacted>"

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders an equivalent curl command line for debug output. Bearer tokens are
// redacted.
func curlCommand(req *http.Request, body []byte) string {
	var b commandBuilder
	b.add("curl", "-X", req.Method)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			if name == "Authorization" {
				value = "Bearer " + redactedToken
			}
			b.add("-H", name+": "+value)
		}
	}
	if body != nil {
		b.add("-d", string(body))
	}
	b.add(req.URL.String())
	return b.String()
}
