package server

import (
	"html"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// dirEntry is one row of a directory listing, derived from a single ReadDir
// and discarded after the response is rendered.
type dirEntry struct {
	name  string
	isDir bool
}

const listingStyle = `body { font-family: sans-serif; margin: 2em; }
h1 { font-size: 1.2em; }
ul { list-style: none; padding-left: 0; }
li { padding: 0.15em 0; }
a { text-decoration: none; }
a:hover { text-decoration: underline; }`

// listDirectory renders the HTML listing for a directory without an
// index.html. An unreadable directory answers 404 like everything else.
func (s *Server) listDirectory(w http.ResponseWriter, urlPath, fsPath string) {
	entries, err := os.ReadDir(fsPath)
	if err != nil {
		notFound(w)
		return
	}

	list := make([]dirEntry, 0, len(entries))
	for _, e := range entries {
		list = append(list, dirEntry{name: e.Name(), isDir: e.IsDir()})
	}
	sortEntries(list)

	if urlPath == "" {
		urlPath = "/"
	}
	atRoot := urlPath == "/"
	base := urlPath
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	escapedBase := html.EscapeString((&url.URL{Path: base}).EscapedPath())
	title := html.EscapeString(urlPath)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"UTF-8\">\n")
	b.WriteString("<title>Index of " + title + "</title>\n")
	b.WriteString("<style>\n" + listingStyle + "\n</style>\n")
	b.WriteString("</head>\n<body>\n")
	b.WriteString("<h1>Index of " + title + "</h1>\n<ul>\n")
	if !atRoot {
		b.WriteString("<li><a href=\"../\">../</a></li>\n")
	}
	for _, e := range list {
		href := escapedBase + html.EscapeString(url.PathEscape(e.name))
		name := html.EscapeString(e.name)
		if e.isDir {
			href += "/"
			name += "/"
		}
		b.WriteString("<li><a href=\"" + href + "\">" + name + "</a></li>\n")
	}
	b.WriteString("</ul>\n</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.Header().Set("Cache-Control", "no-cache")
	_, _ = w.Write([]byte(b.String()))
}

// sortEntries orders a listing: directories first, then case-insensitive
// collation order within each group. The collator is per call because
// collate.Collator keeps internal buffers and listings run concurrently.
func sortEntries(list []dirEntry) {
	c := collate.New(language.Und, collate.IgnoreCase)
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].isDir != list[j].isDir {
			return list[i].isDir
		}
		return c.CompareString(list[i].name, list[j].name) < 0
	})
}
