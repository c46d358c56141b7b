// Package migrations は端末ローカルの SQLite スキーマです。
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
