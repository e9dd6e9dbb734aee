package ids

//tagged:bogus
type testOnlyTag struct{}
