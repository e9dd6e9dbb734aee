//go:build !tagged_noserde

package declare_test

import (
	"github.com/shinji-kodama/tagged"
	"github.com/shinji-kodama/tagged/declare"
)

var (
	_ tagged.TransparentSerialize   = struct{ declare.Serialize }{}
	_ tagged.TransparentDeserialize = struct{ declare.Deserialize }{}
)
