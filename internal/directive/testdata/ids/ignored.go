//go:build ignore

package ids

//tagged:bogus
type ignoredTag struct{}
