// Package data provides the embedded default word lists.
package data

import "embed"

// dataFS embeds the default category files at build time.
//
//go:embed categories/*.txt
var dataFS embed.FS

// FS returns the embedded filesystem containing the default word lists.
func FS() embed.FS {
	return dataFS
}
