// builtin_net.go
//
// Network macros.
package whale

import (
	"fmt"
	"io"
	"net/http"
	"time"
)

var downloadClient = &http.Client{Timeout: 30 * time.Second}

func networkMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "download",
			description: "Fetch a URL and return the response body.",
			run: func(argument Value) (Value, error) {
				url, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				response, err := downloadClient.Get(url)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				defer response.Body.Close()
				if response.StatusCode >= 400 {
					return Empty, errCustom(fmt.Sprintf("request failed with status %s", response.Status))
				}
				body, err := io.ReadAll(response.Body)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(string(body)), nil
			},
		},
	}
}
