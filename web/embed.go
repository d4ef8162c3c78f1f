// Package web embarque les templates HTML et les fichiers statiques:
// l'application se déploie en un seul exécutable.
package web

import "embed"

//go:embed templates static
var Files embed.FS
