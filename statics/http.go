package statics

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed www
var www embed.FS

// ServeStatics serves the embedded site, or staticsDir when set.
func ServeStatics(staticsDir string) http.HandlerFunc {
	if staticsDir != "" {
		return http.FileServer(http.Dir(staticsDir)).ServeHTTP
	}

	sub, err := fs.Sub(www, "www")
	if err != nil {
		panic(err) // embed layout is fixed at build time
	}
	return http.FileServer(http.FS(sub)).ServeHTTP
}
