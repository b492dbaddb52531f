package framework

import (
	"net/http"
	"sort"
	"strings"

	"github.com/alessio/shellescape"
)

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// curlCommand renders a request as a shell command line that reproduces it, for debug output.
func curlCommand(req *http.Request, body []byte) string {
	var b commandBuilder
	b.add("curl", "-i", "-X", req.Method)

	names := make([]string, 0, len(req.Header))
	for name := range req.Header {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		for _, value := range req.Header[name] {
			b.add("-H", name+": "+value)
		}
	}
	if body != nil {
		b.add("--data", string(body))
	}
	b.add(req.URL.String())
	return b.String()
}
