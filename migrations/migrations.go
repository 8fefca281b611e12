// Package migrations содержит SQL схему хранилища, встроенную в бинарник
package migrations

import "embed"

// FS содержит файлы миграций вида NNNNNN_name.up.sql / NNNNNN_name.down.sql
//
//go:embed *.sql
var FS embed.FS
