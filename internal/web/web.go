// File: internal/web/web.go
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var staticFS embed.FS

// FS 回傳前端靜態資源檔案系統，根目錄即 index.html 所在位置
func FS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
