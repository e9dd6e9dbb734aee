//go:build !tagged_nopermissive

package declare_test

import (
	"github.com/shinji-kodama/tagged"
	"github.com/shinji-kodama/tagged/declare"
)

var _ tagged.Permissive = struct{ declare.Permissive }{}
