package ids

//go:generate taggedgen generate

// userIDTag marks user identifiers.
//
//tagged:implement Equal, Hash, Clone
//tagged:transparent Display, FromStr
//tagged:capability inner_access
type userIDTag struct{}

//tagged:permissive
type anyTag struct{}

type (
	//tagged:implement PartialEq
	//tagged:implement Ord
	orderTag struct{}

	plain struct{ n int }
)

// untagged is an ordinary type without directives.
type untagged struct{}
