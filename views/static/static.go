// Package static holds the stylesheet and page script served under /static/.
package static

import "embed"

//go:embed style.css app.js
var FS embed.FS
